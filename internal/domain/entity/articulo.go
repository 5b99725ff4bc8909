package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de artículo (material fotográfico).
const (
	TipoBODY     = "BODY"
	TipoLENTE    = "LENTE"
	TipoCOMPLETA = "COMPLETA"
	TipoOTROS    = "OTROS"
)

// Estados de un artículo dentro de la colección.
const (
	EstadoVENDIDO    = "VENDIDO"
	EstadoCOLECCION  = "COLECCION"
	EstadoDESCARTADO = "DESCARTADO"
)

// TipoArticuloValido indica si el tipo es uno de los cuatro permitidos.
func TipoArticuloValido(t string) bool {
	switch t {
	case TipoBODY, TipoLENTE, TipoCOMPLETA, TipoOTROS:
		return true
	}
	return false
}

// EstadoArticuloValido indica si el estado es uno de los tres permitidos.
func EstadoArticuloValido(e string) bool {
	switch e {
	case EstadoVENDIDO, EstadoCOLECCION, EstadoDESCARTADO:
		return true
	}
	return false
}

// Articulo es un artículo individual comprado dentro de un Pedido.
// IVA y CosteYen son campos derivados: se recalculan en cada guardado a
// partir del coste en euros y las tasas actuales del pedido, nunca los
// edita el usuario. AduanaImputada y CosteEnvioIndividual los escribe el
// reparto proporcional del pedido.
type Articulo struct {
	ID                   string
	PedidoID             string
	MarcaID              *string
	Nombre               string
	Tipo                 string  // BODY, LENTE, COMPLETA, OTROS
	IDBuyee              *string // identificador externo opcional, único
	CosteEuro            decimal.Decimal
	CosteEnvioIndividual *decimal.Decimal // parte del envío agrupado que le toca
	CosteYen             *int64           // derivado: round(coste_euro × tasa_cambio)
	IVA                  *decimal.Decimal // derivado: coste_euro × tasa_iva
	AduanaImputada       decimal.Decimal  // parte de los gastos de aduana que le toca
	PrecioVenta          decimal.Decimal
	VentaObjetiva        decimal.Decimal
	CosteEnvioNacional   decimal.Decimal
	Estado               string // VENDIDO, COLECCION, DESCARTADO
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CosteAdquisicionTotal suma todo lo pagado por el artículo:
// coste base + IVA + envío individual + aduana imputada + envío nacional.
// Los campos sin valor cuentan como cero.
func (a *Articulo) CosteAdquisicionTotal() decimal.Decimal {
	iva := decimal.Zero
	if a.IVA != nil {
		iva = *a.IVA
	}
	envio := decimal.Zero
	if a.CosteEnvioIndividual != nil {
		envio = *a.CosteEnvioIndividual
	}
	return a.CosteEuro.Add(iva).Add(envio).Add(a.AduanaImputada).Add(a.CosteEnvioNacional)
}

// Beneficio devuelve precio de venta menos coste de adquisición total menos
// el envío nacional. Ojo: el envío nacional ya está dentro del coste de
// adquisición, así que se resta dos veces. Así lo calcula la hoja original
// del propietario; no corregir sin confirmarlo con él.
func (a *Articulo) Beneficio() decimal.Decimal {
	return a.PrecioVenta.Sub(a.CosteAdquisicionTotal()).Sub(a.CosteEnvioNacional)
}

func (a *Articulo) String() string {
	return a.Nombre
}
