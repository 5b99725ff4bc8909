package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateArticuloRequest entrada para crear un artículo. IVA y coste_yen no
// se aceptan: son derivados y se calculan al guardar.
type CreateArticuloRequest struct {
	PedidoID           string           `json:"pedido_id" validate:"required,uuid"`
	MarcaID            *string          `json:"marca_id" validate:"omitempty,uuid"`
	Nombre             string           `json:"nombre" validate:"required,min=1,max=200"`
	Tipo               string           `json:"tipo" validate:"omitempty,oneof=BODY LENTE COMPLETA OTROS"`
	IDBuyee            *string          `json:"id_buyee" validate:"omitempty,max=100"`
	CosteEuro          decimal.Decimal  `json:"coste_euro" validate:"required"`
	PrecioVenta        *decimal.Decimal `json:"precio_venta"`
	VentaObjetiva      *decimal.Decimal `json:"venta_objetiva"`
	CosteEnvioNacional *decimal.Decimal `json:"coste_envio_nacional"`
	Estado             string           `json:"estado" validate:"omitempty,oneof=VENDIDO COLECCION DESCARTADO"`
}

// UpdateArticuloRequest entrada para actualizar un artículo. Tampoco admite
// derivados ni los campos que escribe el reparto.
type UpdateArticuloRequest struct {
	MarcaID            *string          `json:"marca_id"`
	Nombre             *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tipo               *string          `json:"tipo" validate:"omitempty,oneof=BODY LENTE COMPLETA OTROS"`
	IDBuyee            *string          `json:"id_buyee"`
	CosteEuro          *decimal.Decimal `json:"coste_euro"`
	PrecioVenta        *decimal.Decimal `json:"precio_venta"`
	VentaObjetiva      *decimal.Decimal `json:"venta_objetiva"`
	CosteEnvioNacional *decimal.Decimal `json:"coste_envio_nacional"`
	Estado             *string          `json:"estado" validate:"omitempty,oneof=VENDIDO COLECCION DESCARTADO"`
}

// ArticuloResponse salida de un artículo con sus derivados calculados.
type ArticuloResponse struct {
	ID                    string           `json:"id"`
	PedidoID              string           `json:"pedido_id"`
	MarcaID               *string          `json:"marca_id,omitempty"`
	Nombre                string           `json:"nombre"`
	Tipo                  string           `json:"tipo"`
	IDBuyee               *string          `json:"id_buyee,omitempty"`
	CosteEuro             decimal.Decimal  `json:"coste_euro"`
	CosteEnvioIndividual  *decimal.Decimal `json:"coste_envio_individual,omitempty"`
	CosteYen              *int64           `json:"coste_yen,omitempty"`
	IVA                   *decimal.Decimal `json:"iva,omitempty"`
	AduanaImputada        decimal.Decimal  `json:"aduana_imputada"`
	PrecioVenta           decimal.Decimal  `json:"precio_venta"`
	VentaObjetiva         decimal.Decimal  `json:"venta_objetiva"`
	CosteEnvioNacional    decimal.Decimal  `json:"coste_envio_nacional"`
	Estado                string           `json:"estado"`
	CosteAdquisicionTotal decimal.Decimal  `json:"coste_adquisicion_total"`
	Beneficio             decimal.Decimal  `json:"beneficio"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// ArticuloListResponse lista paginada de artículos.
type ArticuloListResponse struct {
	Items []ArticuloResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
