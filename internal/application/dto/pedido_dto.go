package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePedidoRequest entrada para crear un pedido. TasaCambioEURJPY y
// TasaIVA se fijan aquí y no se pueden cambiar después.
type CreatePedidoRequest struct {
	FechaPedido        string           `json:"fecha_pedido" validate:"required"` // YYYY-MM-DD
	Descripcion        string           `json:"descripcion" validate:"required,min=1,max=255"`
	TasaCambioEURJPY   decimal.Decimal  `json:"tasa_cambio_eur_jpy" validate:"required"`
	TasaIVA            *decimal.Decimal `json:"tasa_iva"` // por defecto 0.21
	CosteEnvioAgrupado *decimal.Decimal `json:"coste_envio_agrupado"`
	GastosAduana       *decimal.Decimal `json:"gastos_aduana"`
}

// UpdatePedidoRequest entrada para actualizar un pedido. Las tasas quedan
// fuera a propósito: son inmutables tras la creación.
type UpdatePedidoRequest struct {
	FechaPedido        *string          `json:"fecha_pedido"`
	Descripcion        *string          `json:"descripcion" validate:"omitempty,min=1,max=255"`
	CosteEnvioAgrupado *decimal.Decimal `json:"coste_envio_agrupado"`
	GastosAduana       *decimal.Decimal `json:"gastos_aduana"`
}

// PedidoResponse salida de un pedido.
type PedidoResponse struct {
	ID                 string          `json:"id"`
	FechaPedido        string          `json:"fecha_pedido"`
	Descripcion        string          `json:"descripcion"`
	CosteEnvioAgrupado decimal.Decimal `json:"coste_envio_agrupado"`
	GastosAduana       decimal.Decimal `json:"gastos_aduana"`
	TasaCambioEURJPY   decimal.Decimal `json:"tasa_cambio_eur_jpy"`
	TasaIVA            decimal.Decimal `json:"tasa_iva"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PedidoListResponse lista paginada de pedidos (más recientes primero).
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// DistribuirLoteRequest acción por lotes: reparte un destino sobre varios
// pedidos seleccionados.
type DistribuirLoteRequest struct {
	PedidoIDs []string `json:"pedido_ids" validate:"required,min=1"`
	Destino   string   `json:"destino" validate:"required,oneof=ADUANA ENVIO"`
}
