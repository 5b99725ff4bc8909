package costes_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidalcampos/coleccion-api/internal/domain/costes"
	"github.com/mvidalcampos/coleccion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// IVA
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularIVA_Exacto(t *testing.T) {
	casos := []struct {
		coste, tasa, esperado string
	}{
		{"100.00", "0.21", "21.00"},
		{"10.00", "0.21", "2.10"},
		{"33.33", "0.21", "7.00"},    // 6.9993 → 7.00
		{"0.01", "0.21", "0.00"},     // 0.0021 → 0.00
		{"150.00", "0.10", "15.00"},
	}
	for _, c := range casos {
		got := costes.CalcularIVA(d(c.coste), d(c.tasa))
		assert.True(t, d(c.esperado).Equal(got), "%s × %s = %s, esperado %s", c.coste, c.tasa, got, c.esperado)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Coste en yenes: redondeo mitad hacia arriba al entero más cercano
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularCosteYen_Redondeo(t *testing.T) {
	casos := []struct {
		coste, tasa string
		esperado    int64
	}{
		{"10.00", "165.0000", 1650},
		{"0.67", "150.0000", 101},  // 100.5 → 101, frontera del redondeo
		{"0.50", "165.0000", 83},   // 82.5 → 83
		{"1.00", "165.4321", 165},  // 165.4321 → 165
		{"2.00", "165.4321", 331},  // 330.8642 → 331
	}
	for _, c := range casos {
		got := costes.CalcularCosteYen(d(c.coste), d(c.tasa))
		assert.Equal(t, c.esperado, got, "%s × %s", c.coste, c.tasa)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ActualizarDerivados: recalculo en cada guardado
// ──────────────────────────────────────────────────────────────────────────────

func pedidoDeReferencia() *entity.Pedido {
	return &entity.Pedido{
		ID:               "ped-1",
		TasaCambioEURJPY: d("165.0000"),
		TasaIVA:          d("0.21"),
	}
}

func TestActualizarDerivados_CalculaIVAyYen(t *testing.T) {
	art := &entity.Articulo{CosteEuro: d("10.00")}
	costes.ActualizarDerivados(art, pedidoDeReferencia())

	require.NotNil(t, art.IVA)
	require.NotNil(t, art.CosteYen)
	assert.True(t, d("2.10").Equal(*art.IVA))
	assert.Equal(t, int64(1650), *art.CosteYen)
}

// Los derivados se sobrescriben con las tasas ACTUALES del pedido, no con
// las vigentes cuando se creó el artículo.
func TestActualizarDerivados_SobrescribeConTasasActuales(t *testing.T) {
	iva := d("99.99")
	yen := int64(12345)
	art := &entity.Articulo{CosteEuro: d("10.00"), IVA: &iva, CosteYen: &yen}

	costes.ActualizarDerivados(art, pedidoDeReferencia())

	assert.True(t, d("2.10").Equal(*art.IVA), "el IVA previo debe sobrescribirse")
	assert.Equal(t, int64(1650), *art.CosteYen, "el coste en yenes previo debe sobrescribirse")
}

// Coste base cero: el cálculo se omite y los valores previos se conservan.
// No es un error, solo un salto.
func TestActualizarDerivados_CosteCeroConservaValores(t *testing.T) {
	iva := d("2.10")
	yen := int64(1650)
	art := &entity.Articulo{CosteEuro: decimal.Zero, IVA: &iva, CosteYen: &yen}

	costes.ActualizarDerivados(art, pedidoDeReferencia())

	require.NotNil(t, art.IVA)
	require.NotNil(t, art.CosteYen)
	assert.True(t, d("2.10").Equal(*art.IVA))
	assert.Equal(t, int64(1650), *art.CosteYen)
}

// Tasa sin definir: se omite solo el derivado correspondiente.
func TestActualizarDerivados_SinTasaIVASoloCalculaYen(t *testing.T) {
	ped := &entity.Pedido{TasaCambioEURJPY: d("165.0000"), TasaIVA: decimal.Zero}
	art := &entity.Articulo{CosteEuro: d("10.00")}

	costes.ActualizarDerivados(art, ped)

	assert.Nil(t, art.IVA, "sin tasa de IVA no debe calcularse IVA")
	require.NotNil(t, art.CosteYen)
	assert.Equal(t, int64(1650), *art.CosteYen)
}
