package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido representa un pedido de importación: un lote de artículos comprados
// con una misma tasa de cambio EUR→JPY, una tasa de IVA y unos costes
// agrupados (envío y aduana) pendientes de repartir entre sus artículos.
// TasaCambioEURJPY y TasaIVA se fijan al crear el pedido y no se modifican
// después; todos los cálculos derivados de sus artículos las leen de aquí.
type Pedido struct {
	ID                 string
	FechaPedido        time.Time
	Descripcion        string
	CosteEnvioAgrupado decimal.Decimal // total de envío del lote, a repartir
	GastosAduana       decimal.Decimal // total de aduana del lote, a repartir
	TasaCambioEURJPY   decimal.Decimal // 1 EUR = X JPY, 4 decimales
	TasaIVA            decimal.Decimal // ej. 0.21 para un 21%
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (p *Pedido) String() string {
	return p.Descripcion
}
