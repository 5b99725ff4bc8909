package repository

import "github.com/mvidalcampos/coleccion-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
// Delete elimina en cascada los artículos del pedido (FK ON DELETE CASCADE).
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	Update(pedido *entity.Pedido) error
	List(limit, offset int) ([]*entity.Pedido, error)
	Delete(id string) error
}
