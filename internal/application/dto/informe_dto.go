package dto

import "github.com/shopspring/decimal"

// InformeFilterRequest filtros del informe de artículos (query params).
type InformeFilterRequest struct {
	PedidoID string `query:"pedido_id"`
	MarcaID  string `query:"marca_id"`
	Tipo     string `query:"tipo"`
	Estado   string `query:"estado"`
	Busqueda string `query:"q"`
}

// InformeArticulosResponse agregados del conjunto filtrado. Los campos NULL
// de los artículos cuentan como cero.
type InformeArticulosResponse struct {
	NumArticulos   int64           `json:"num_articulos"`
	TotalCoste     decimal.Decimal `json:"total_coste"`
	TotalVenta     decimal.Decimal `json:"total_venta"`
	TotalObjetiva  decimal.Decimal `json:"total_objetiva"`
	TotalBeneficio decimal.Decimal `json:"total_beneficio"`
}
