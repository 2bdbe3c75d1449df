// Package unidad define los tipos de unidad de venta y su conversión a
// unidades base de stock. El stock siempre se expresa y descuenta en
// unidades base, sin importar la unidad elegida al vender.
package unidad

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TipoUnidad granularidad de empaque elegida para una línea de venta.
type TipoUnidad string

// Tipos de unidad soportados (deben coincidir con el CHECK de venta_items).
const (
	Unidad      TipoUnidad = "unidad"
	MediaDocena TipoUnidad = "media_docena"
	Docena      TipoUnidad = "docena"
	Kilo        TipoUnidad = "kilo"
	MedioKilo   TipoUnidad = "medio_kilo"
)

// ErrUnidadInvalida tipo de unidad no reconocido. Es fatal para la operación:
// un default silencioso a factor 1 descontaría mal el stock.
type ErrUnidadInvalida struct {
	Tipo TipoUnidad
}

func (e *ErrUnidadInvalida) Error() string {
	return fmt.Sprintf("tipo de unidad inválido: %q", string(e.Tipo))
}

// Tabla fija de factores de conversión a unidades base.
var factores = map[TipoUnidad]decimal.Decimal{
	Unidad:      decimal.NewFromInt(1),
	MediaDocena: decimal.NewFromInt(6),
	Docena:      decimal.NewFromInt(12),
	Kilo:        decimal.NewFromInt(1),
	MedioKilo:   decimal.NewFromFloat(0.5),
}

var nombres = map[TipoUnidad]string{
	Unidad:      "Unidad",
	MediaDocena: "Media docena",
	Docena:      "Docena",
	Kilo:        "Kilo",
	MedioKilo:   "Medio kilo",
}

// Factor devuelve el factor de conversión a unidades base.
// unidad=1, media_docena=6, docena=12, kilo=1, medio_kilo=0.5.
func Factor(t TipoUnidad) (decimal.Decimal, error) {
	f, ok := factores[t]
	if !ok {
		return decimal.Zero, &ErrUnidadInvalida{Tipo: t}
	}
	return f, nil
}

// Nombre devuelve el nombre legible del tipo de unidad.
func Nombre(t TipoUnidad) (string, error) {
	n, ok := nombres[t]
	if !ok {
		return "", &ErrUnidadInvalida{Tipo: t}
	}
	return n, nil
}

// EnUnidadesBase convierte una cantidad expresada en la unidad elegida a
// unidades base: cantidad × factor(tipo).
func EnUnidadesBase(cantidad decimal.Decimal, t TipoUnidad) (decimal.Decimal, error) {
	f, err := Factor(t)
	if err != nil {
		return decimal.Zero, err
	}
	return cantidad.Mul(f), nil
}

// Tipos devuelve todos los tipos de unidad definidos, en orden estable.
func Tipos() []TipoUnidad {
	return []TipoUnidad{Unidad, MediaDocena, Docena, Kilo, MedioKilo}
}
