// Package analytics agrega ventas, gastos y clientes en las métricas del
// dashboard, el gráfico anual y los rankings de productos. Los cálculos son
// funciones puras sobre filas ya traídas; los casos de uso solo orquestan las
// consultas.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

var cien = decimal.NewFromInt(100)

// VentanaDatos filas crudas de un mes calendario, ya filtradas por empresa.
type VentanaDatos struct {
	// Ventas con estado activo (completada, pendiente, preparacion, listo).
	Ventas []repository.VentaResumen
	// PendientesPago ventas con estado_pago pendiente, sin filtro de estado.
	PendientesPago []repository.VentaResumen
	ClientesNuevos int
	// Gastos activos del mes (los anulados no entran).
	Gastos []repository.GastoResumen
}

// Crecimiento variación porcentual mes contra mes, redondeada a 2 decimales.
// Con mes anterior en cero: 100 si el actual es positivo, 0 si no. Una sola
// regla para todas las métricas.
func Crecimiento(actual, anterior decimal.Decimal) decimal.Decimal {
	if anterior.GreaterThan(decimal.Zero) {
		return actual.Sub(anterior).Div(anterior).Mul(cien).Round(2)
	}
	if actual.GreaterThan(decimal.Zero) {
		return cien
	}
	return decimal.Zero
}

// CrecimientoBeneficios variación de beneficios: los beneficios pueden ser
// negativos, así que el denominador es |anterior|.
func CrecimientoBeneficios(actual, anterior decimal.Decimal) decimal.Decimal {
	if !anterior.IsZero() {
		return actual.Sub(anterior).Div(anterior.Abs()).Mul(cien).Round(2)
	}
	if actual.GreaterThan(decimal.Zero) {
		return cien
	}
	return decimal.Zero
}

// CalcularStats deriva todos los KPIs del dashboard a partir de las ventanas
// del mes actual y el anterior. Montos redondeados a entero, porcentajes a
// dos decimales.
func CalcularStats(actual, anterior VentanaDatos) dto.DashboardStatsDTO {
	ingresosActual := sumarTotales(actual.Ventas)
	ingresosAnterior := sumarTotales(anterior.Ventas)
	pedidosActual := len(actual.Ventas)
	pedidosAnterior := len(anterior.Ventas)

	valorPromedio := decimal.Zero
	if pedidosActual > 0 {
		valorPromedio = ingresosActual.Div(decimal.NewFromInt(int64(pedidosActual)))
	}
	valorPromedioAnterior := decimal.Zero
	if pedidosAnterior > 0 {
		valorPromedioAnterior = ingresosAnterior.Div(decimal.NewFromInt(int64(pedidosAnterior)))
	}

	totalPendientes := sumarTotales(actual.PendientesPago)
	cantPendientes := len(actual.PendientesPago)
	cantPendientesAnterior := len(anterior.PendientesPago)

	porcentajePendientes := decimal.Zero
	if pedidosActual > 0 {
		porcentajePendientes = decimal.NewFromInt(int64(cantPendientes)).
			Div(decimal.NewFromInt(int64(pedidosActual))).Mul(cien).Round(2)
	}

	gastosActual := sumarGastos(actual.Gastos)
	gastosAnterior := sumarGastos(anterior.Gastos)
	beneficiosActual := ingresosActual.Sub(gastosActual)
	beneficiosAnterior := ingresosAnterior.Sub(gastosAnterior)

	crecimientoVentas := Crecimiento(
		decimal.NewFromInt(int64(pedidosActual)),
		decimal.NewFromInt(int64(pedidosAnterior)),
	)

	return dto.DashboardStatsDTO{
		IngresosTotales: ingresosActual.Round(0),
		VentasUltimoMes: pedidosActual,
		VentasMesAnt:    pedidosAnterior,
		ValorPromedio:   valorPromedio.Round(0),

		PedidosPendientePago:     totalPendientes.Round(0),
		CantidadVentasPendientes: cantPendientes,
		TotalPedidosPendientes:   totalPendientes.Round(0),

		CrecimientoIngresos:          Crecimiento(ingresosActual, ingresosAnterior),
		CrecimientoVentas:            crecimientoVentas,
		CrecimientoValor:             Crecimiento(valorPromedio, valorPromedioAnterior),
		CrecimientoPedidosPendientes: crecimientoVentas,
		PorcentajePedidosPendientes:  porcentajePendientes,
		PorcentajeCantVentasPendCambio: Crecimiento(
			decimal.NewFromInt(int64(cantPendientes)),
			decimal.NewFromInt(int64(cantPendientesAnterior)),
		),

		ClientesNuevosMes: actual.ClientesNuevos,
		CrecimientoClientes: Crecimiento(
			decimal.NewFromInt(int64(actual.ClientesNuevos)),
			decimal.NewFromInt(int64(anterior.ClientesNuevos)),
		),

		GastosMesActual:       gastosActual.Round(0),
		GastosMesAnterior:     gastosAnterior.Round(0),
		CrecimientoGastos:     Crecimiento(gastosActual, gastosAnterior),
		BeneficiosMesActual:   beneficiosActual.Round(0),
		BeneficiosMesAnterior: beneficiosAnterior.Round(0),
		CrecimientoBeneficios: CrecimientoBeneficios(beneficiosActual, beneficiosAnterior),
	}
}

func sumarTotales(ventas []repository.VentaResumen) decimal.Decimal {
	suma := decimal.Zero
	for _, v := range ventas {
		suma = suma.Add(v.Total)
	}
	return suma
}

func sumarGastos(gastos []repository.GastoResumen) decimal.Decimal {
	suma := decimal.Zero
	for _, g := range gastos {
		suma = suma.Add(g.Monto)
	}
	return suma
}
