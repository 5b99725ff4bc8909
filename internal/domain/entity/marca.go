package entity

import "time"

// Marca etiqueta de fabricante de un artículo. Nombre es único.
// Borrar una marca no borra sus artículos: la referencia queda a NULL.
type Marca struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
}

func (m *Marca) String() string {
	return m.Nombre
}
