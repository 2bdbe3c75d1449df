package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de gasto. Un gasto anulado queda excluido de toda agregación
// financiera.
const (
	GastoActivo  = "activo"
	GastoAnulado = "anulado"
)

// Categorías fijas de gasto.
const (
	GastoAlquiler      = "alquiler"
	GastoServicios     = "servicios"
	GastoSalarios      = "salarios"
	GastoInsumos       = "insumos"
	GastoMarketing     = "marketing"
	GastoImpuestos     = "impuestos"
	GastoMantenimiento = "mantenimiento"
	GastoTransporte    = "transporte"
	GastoOtros         = "otros"
)

// Frecuencias de un gasto recurrente.
const (
	FrecuenciaMensual    = "mensual"
	FrecuenciaTrimestral = "trimestral"
	FrecuenciaAnual      = "anual"
	FrecuenciaUnico      = "unico"
)

// CategoriaGastoValida indica si la categoría pertenece al conjunto fijo.
func CategoriaGastoValida(c string) bool {
	switch c {
	case GastoAlquiler, GastoServicios, GastoSalarios, GastoInsumos, GastoMarketing,
		GastoImpuestos, GastoMantenimiento, GastoTransporte, GastoOtros:
		return true
	}
	return false
}

// Gasto representa un egreso de la empresa.
type Gasto struct {
	ID          string
	CompanyID   string
	Concepto    string
	Monto       decimal.Decimal
	Fecha       time.Time
	Categoria   string
	Notas       string
	Comprobante string
	Recurrente  bool
	Frecuencia  string // mensual, trimestral, anual, unico; vacío si no es recurrente
	Estado      string // activo, anulado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
