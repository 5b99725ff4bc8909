package costes

import (
	"github.com/shopspring/decimal"

	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
)

// CalcularIVA devuelve costeEuro × tasaIVA redondeado a 2 decimales
// (redondeo mitad hacia arriba, la regla única de todo el sistema).
func CalcularIVA(costeEuro, tasaIVA decimal.Decimal) decimal.Decimal {
	return costeEuro.Mul(tasaIVA).Round(2)
}

// CalcularCosteYen devuelve round(costeEuro × tasaCambio) al entero más
// cercano, mitad hacia arriba (100.5 → 101).
func CalcularCosteYen(costeEuro, tasaCambio decimal.Decimal) int64 {
	return costeEuro.Mul(tasaCambio).Round(0).IntPart()
}

// ActualizarDerivados recalcula los campos derivados del artículo con las
// tasas ACTUALES de su pedido. Se invoca en cada guardado; sobrescribe en
// silencio cualquier valor previo. Con coste base cero o tasa sin definir
// el cálculo se omite y el campo conserva su valor anterior (no es error).
func ActualizarDerivados(art *entity.Articulo, ped *entity.Pedido) {
	if !ped.TasaIVA.IsZero() && !art.CosteEuro.IsZero() {
		iva := CalcularIVA(art.CosteEuro, ped.TasaIVA)
		art.IVA = &iva
	}
	if !ped.TasaCambioEURJPY.IsZero() && !art.CosteEuro.IsZero() {
		yen := CalcularCosteYen(art.CosteEuro, ped.TasaCambioEURJPY)
		art.CosteYen = &yen
	}
}
