// Package moneda normaliza códigos ISO 4217 y formatea montos para recibos y
// reportes. La moneda por defecto es el peso uruguayo.
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PorDefecto código de moneda cuando el usuario no guardó preferencia.
const PorDefecto = "UYU"

var printer = message.NewPrinter(language.MustParse("es-UY"))

// Normalizar devuelve el código ISO 4217 canónico, o el default si el código
// no es válido.
func Normalizar(codigo string) string {
	if codigo == "" {
		return PorDefecto
	}
	unit, err := currency.ParseISO(codigo)
	if err != nil {
		return PorDefecto
	}
	return unit.String()
}

// Formatear arma el monto con el símbolo de la moneda, ej: "$ 1.234,50".
func Formatear(codigo string, monto decimal.Decimal) string {
	unit, err := currency.ParseISO(codigo)
	if err != nil {
		unit = currency.MustParseISO(PorDefecto)
	}
	valor, _ := monto.Round(2).Float64()
	return printer.Sprint(currency.Symbol(unit.Amount(valor)))
}
