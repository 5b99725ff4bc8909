package dto

import "time"

// CreateMarcaRequest entrada para crear una marca.
type CreateMarcaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

// MarcaResponse salida de una marca.
type MarcaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

// MarcaListResponse listado de marcas ordenadas por nombre.
type MarcaListResponse struct {
	Items []MarcaResponse `json:"items"`
}
