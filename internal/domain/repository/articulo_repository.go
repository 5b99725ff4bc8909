package repository

import (
	"github.com/shopspring/decimal"

	"github.com/mvidalcampos/coleccion-api/internal/domain/costes"
	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
)

// ArticuloFilter filtros de listado de artículos. Campos vacíos no filtran.
type ArticuloFilter struct {
	PedidoID string
	MarcaID  string
	Tipo     string
	Estado   string
	Busqueda string // sobre nombre e id_buyee
}

// ArticuloRepository define el puerto de persistencia para Articulo (DIP).
type ArticuloRepository interface {
	Create(articulo *entity.Articulo) error
	GetByID(id string) (*entity.Articulo, error)
	Update(articulo *entity.Articulo) error
	List(filter ArticuloFilter, limit, offset int) ([]*entity.Articulo, error)
	ListByPedido(pedidoID string) ([]*entity.Articulo, error)
	// UpdateReparto escribe la parte repartida en el campo que indica el
	// destino (aduana_imputada o coste_envio_individual, vía switch).
	UpdateReparto(articuloID string, destino costes.DestinoReparto, parte decimal.Decimal) error
	Delete(id string) error
}
