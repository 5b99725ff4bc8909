package costes_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidalcampos/coleccion-api/internal/domain/costes"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func bases(ss ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = d(s)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Reparto proporcional: casos del pedido de referencia
// ──────────────────────────────────────────────────────────────────────────────

// Pedido con dos artículos de 10.00 y 20.00 € (base 30.00) y 30.00 € de
// aduana: el total coincide con la base, cada artículo recibe su coste.
func TestRepartirProporcional_TotalIgualABase(t *testing.T) {
	partes := costes.RepartirProporcional(d("30.00"), bases("10.00", "20.00"))
	require.Len(t, partes, 2)
	assert.True(t, d("10.00").Equal(partes[0]), "parte del primero: %s", partes[0])
	assert.True(t, d("20.00").Equal(partes[1]), "parte del segundo: %s", partes[1])
}

// Mismo pedido con 15.00 € de aduana: ratio 1:2 → 5.00 y 10.00.
func TestRepartirProporcional_RatioNoTrivial(t *testing.T) {
	partes := costes.RepartirProporcional(d("15.00"), bases("10.00", "20.00"))
	require.Len(t, partes, 2)
	assert.True(t, d("5.00").Equal(partes[0]))
	assert.True(t, d("10.00").Equal(partes[1]))
}

// La suma de las partes debe ser exactamente el total repartido, también
// cuando las proporciones generan decimales periódicos (1/3).
func TestRepartirProporcional_SumaExacta(t *testing.T) {
	total := d("10.00")
	partes := costes.RepartirProporcional(total, bases("1.00", "1.00", "1.00"))
	require.Len(t, partes, 3)

	suma := decimal.Zero
	for _, p := range partes {
		suma = suma.Add(p)
	}
	assert.True(t, total.Equal(suma), "Σpartes=%s debe igualar el total=%s", suma, total)

	// 10/3 = 3.3333… → 3.33, 3.33 y el último absorbe el resto: 3.34
	assert.True(t, d("3.33").Equal(partes[0]))
	assert.True(t, d("3.33").Equal(partes[1]))
	assert.True(t, d("3.34").Equal(partes[2]))
}

// Propiedad de suma exacta con bases desiguales y totales con céntimos.
func TestRepartirProporcional_SumaExactaBasesDesiguales(t *testing.T) {
	casos := []struct {
		total string
		bs    []string
	}{
		{"99.99", []string{"12.34", "56.78", "0.01"}},
		{"0.01", []string{"5.00", "5.00"}},
		{"123.45", []string{"33.33", "66.67", "100.00", "0.50"}},
		{"7.77", []string{"1.11", "2.22", "3.33"}},
	}
	for _, c := range casos {
		total := d(c.total)
		partes := costes.RepartirProporcional(total, bases(c.bs...))
		require.Len(t, partes, len(c.bs), "total=%s", c.total)
		suma := decimal.Zero
		for _, p := range partes {
			suma = suma.Add(p)
		}
		assert.True(t, total.Equal(suma), "total=%s Σ=%s", total, suma)
	}
}

// Las partes son proporcionales a la base: un artículo con el doble de
// coste recibe el doble de parte (salvo el céntimo de resto del último).
func TestRepartirProporcional_Proporcionalidad(t *testing.T) {
	partes := costes.RepartirProporcional(d("90.00"), bases("10.00", "20.00", "60.00"))
	require.Len(t, partes, 3)
	assert.True(t, d("10.00").Equal(partes[0]))
	assert.True(t, d("20.00").Equal(partes[1]))
	assert.True(t, d("60.00").Equal(partes[2]))
}

// ──────────────────────────────────────────────────────────────────────────────
// Condiciones de no-op (nil, "no se hizo nada")
// ──────────────────────────────────────────────────────────────────────────────

func TestRepartirProporcional_TotalCeroNoHaceNada(t *testing.T) {
	assert.Nil(t, costes.RepartirProporcional(decimal.Zero, bases("10.00")))
}

func TestRepartirProporcional_TotalNegativoNoHaceNada(t *testing.T) {
	assert.Nil(t, costes.RepartirProporcional(d("-5.00"), bases("10.00")))
}

func TestRepartirProporcional_SinArticulosNoHaceNada(t *testing.T) {
	assert.Nil(t, costes.RepartirProporcional(d("30.00"), nil))
}

// Base total cero: protege la división por cero.
func TestRepartirProporcional_BaseCeroNoHaceNada(t *testing.T) {
	assert.Nil(t, costes.RepartirProporcional(d("30.00"), bases("0.00", "0.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia y destino
// ──────────────────────────────────────────────────────────────────────────────

// Con las mismas entradas el reparto produce siempre las mismas partes:
// repetir la operación converge al mismo punto fijo.
func TestRepartirProporcional_Determinista(t *testing.T) {
	bs := bases("10.50", "33.10", "7.89")
	p1 := costes.RepartirProporcional(d("25.00"), bs)
	p2 := costes.RepartirProporcional(d("25.00"), bs)
	require.Len(t, p1, 3)
	for i := range p1 {
		assert.True(t, p1[i].Equal(p2[i]))
	}
}

func TestDestinoReparto_Valido(t *testing.T) {
	assert.True(t, costes.DestinoAduana.Valido())
	assert.True(t, costes.DestinoEnvio.Valido())
	assert.False(t, costes.DestinoReparto("IVA").Valido())
	assert.False(t, costes.DestinoReparto("").Valido())
}
