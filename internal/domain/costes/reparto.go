package costes

import "github.com/shopspring/decimal"

// DestinoReparto identifica el campo del artículo que recibe la parte
// repartida. Selector explícito: el despacho al campo concreto se hace
// siempre con un switch sobre estas constantes, nunca por nombre dinámico.
type DestinoReparto string

const (
	// DestinoAduana reparte pedido.GastosAduana sobre aduana_imputada.
	DestinoAduana DestinoReparto = "ADUANA"
	// DestinoEnvio reparte pedido.CosteEnvioAgrupado sobre coste_envio_individual.
	DestinoEnvio DestinoReparto = "ENVIO"
)

// Valido indica si el destino es uno de los dos repartos soportados.
func (d DestinoReparto) Valido() bool {
	return d == DestinoAduana || d == DestinoEnvio
}

// RepartirProporcional reparte un coste total entre artículos de forma
// proporcional a su coste base en euros: parte_i = total × base_i / Σbases,
// redondeada a 2 decimales. El último elemento absorbe el resto de redondeo,
// de modo que la suma de las partes es exactamente el total.
//
// Devuelve nil ("no se hizo nada", no es un error) si el total es ≤ 0, si no
// hay bases o si la suma de bases es ≤ 0 (evita la división por cero).
func RepartirProporcional(total decimal.Decimal, bases []decimal.Decimal) []decimal.Decimal {
	if total.LessThanOrEqual(decimal.Zero) || len(bases) == 0 {
		return nil
	}
	baseTotal := decimal.Zero
	for _, b := range bases {
		baseTotal = baseTotal.Add(b)
	}
	if baseTotal.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	partes := make([]decimal.Decimal, len(bases))
	acumulado := decimal.Zero
	for i, b := range bases {
		if i == len(bases)-1 {
			// resto de redondeo al último artículo: Σpartes == total exacto
			partes[i] = total.Sub(acumulado)
			break
		}
		parte := total.Mul(b).Div(baseTotal).Round(2)
		partes[i] = parte
		acumulado = acumulado.Add(parte)
	}
	return partes
}
