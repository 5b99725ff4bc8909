package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ResumenArticulos agregados de un conjunto filtrado de artículos.
// Los campos NULL de los artículos cuentan como cero (COALESCE en SQL).
// TotalBeneficio = TotalVenta − TotalCoste.
type ResumenArticulos struct {
	NumArticulos   int64
	TotalCoste     decimal.Decimal // Σ(coste + iva + envío ind. + aduana + envío nac.)
	TotalVenta     decimal.Decimal
	TotalObjetiva  decimal.Decimal
	TotalBeneficio decimal.Decimal
}

// FilaInformeArticulo una fila del informe de artículos con sus columnas
// calculadas, lista para exportar.
type FilaInformeArticulo struct {
	Marca         string
	Nombre        string
	Pedido        string
	Tipo          string
	Estado        string
	CosteTotal    decimal.Decimal
	VentaObjetiva decimal.Decimal
	PrecioVenta   decimal.Decimal
	Beneficio     decimal.Decimal
}

// InformeRepository consultas de solo lectura para los informes de artículos.
type InformeRepository interface {
	Resumen(ctx context.Context, filter ArticuloFilter) (*ResumenArticulos, error)
	Filas(ctx context.Context, filter ArticuloFilter) ([]FilaInformeArticulo, error)
}
