package repository

import "github.com/mvidalcampos/coleccion-api/internal/domain/entity"

// MarcaRepository define el puerto de persistencia para Marca (DIP).
// Delete deja a NULL la referencia de los artículos de esa marca
// (FK ON DELETE SET NULL); los artículos siguen existiendo.
type MarcaRepository interface {
	Create(marca *entity.Marca) error
	GetByID(id string) (*entity.Marca, error)
	GetByNombre(nombre string) (*entity.Marca, error)
	List(busqueda string) ([]*entity.Marca, error)
	Delete(id string) error
}
