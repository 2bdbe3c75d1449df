package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wcoders/ventas-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ventasPorTotales(totales ...string) []repository.VentaResumen {
	out := make([]repository.VentaResumen, 0, len(totales))
	for _, t := range totales {
		out = append(out, repository.VentaResumen{Total: dec(t), Fecha: time.Now()})
	}
	return out
}

func TestCrecimiento_ReglaDeCeros(t *testing.T) {
	casos := []struct {
		nombre   string
		actual   string
		anterior string
		esperado string
	}{
		{"crecimiento normal", "150", "100", "50"},
		{"ambos en cero", "0", "0", "0"},
		{"anterior en cero con actual positivo", "50", "0", "100"},
		{"caida", "80", "100", "-20"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := Crecimiento(dec(c.actual), dec(c.anterior))
			assert.True(t, dec(c.esperado).Equal(got),
				"esperaba %s, obtuve %s", c.esperado, got)
		})
	}
}

func TestCrecimientoBeneficios_DenominadorAbsoluto(t *testing.T) {
	// Beneficios negativos: de -50 a -10 es una mejora del 80%.
	got := CrecimientoBeneficios(dec("-10"), dec("-50"))
	assert.True(t, dec("80").Equal(got), "esperaba 80, obtuve %s", got)

	// Anterior cero con actual positivo.
	assert.True(t, dec("100").Equal(CrecimientoBeneficios(dec("30"), dec("0"))))
	assert.True(t, decimal.Zero.Equal(CrecimientoBeneficios(dec("-5"), dec("0"))))
}

func TestCalcularStats_EscenarioCompleto(t *testing.T) {
	// Mes actual: 1200 en 4 pedidos; anterior: 800 en 2.
	actual := VentanaDatos{
		Ventas:         ventasPorTotales("300", "300", "300", "300"),
		PendientesPago: ventasPorTotales("300", "300"),
		ClientesNuevos: 3,
		Gastos: []repository.GastoResumen{
			{Monto: dec("200"), Fecha: time.Now()},
		},
	}
	anterior := VentanaDatos{
		Ventas:         ventasPorTotales("400", "400"),
		ClientesNuevos: 1,
		Gastos: []repository.GastoResumen{
			{Monto: dec("500"), Fecha: time.Now()},
		},
	}

	stats := CalcularStats(actual, anterior)

	assert.True(t, dec("1200").Equal(stats.IngresosTotales))
	assert.Equal(t, 4, stats.VentasUltimoMes)
	assert.Equal(t, 2, stats.VentasMesAnt)
	assert.True(t, dec("300").Equal(stats.ValorPromedio), "valor promedio: %s", stats.ValorPromedio)
	assert.True(t, dec("50").Equal(stats.CrecimientoIngresos), "crecimiento ingresos: %s", stats.CrecimientoIngresos)
	assert.True(t, dec("100").Equal(stats.CrecimientoVentas))
	assert.True(t, dec("-25").Equal(stats.CrecimientoValor), "crecimiento valor: %s", stats.CrecimientoValor)

	// 2 pendientes sobre 4 pedidos del mes.
	assert.Equal(t, 2, stats.CantidadVentasPendientes)
	assert.True(t, dec("600").Equal(stats.TotalPedidosPendientes))
	assert.True(t, dec("40").Equal(stats.PorcentajePedidosPendientes), "porcentaje pendientes: %s", stats.PorcentajePedidosPendientes)

	assert.Equal(t, 3, stats.ClientesNuevosMes)
	assert.True(t, dec("200").Equal(stats.CrecimientoClientes))

	// Gastos 200 vs 500, beneficios 1000 vs 300.
	assert.True(t, dec("200").Equal(stats.GastosMesActual))
	assert.True(t, dec("-60").Equal(stats.CrecimientoGastos))
	assert.True(t, dec("1000").Equal(stats.BeneficiosMesActual))
	assert.True(t, dec("300").Equal(stats.BeneficiosMesAnterior))
	assert.True(t, dec("233.33").Equal(stats.CrecimientoBeneficios), "crecimiento beneficios: %s", stats.CrecimientoBeneficios)
}

func TestCalcularStats_MesesVacios(t *testing.T) {
	stats := CalcularStats(VentanaDatos{}, VentanaDatos{})

	assert.True(t, stats.IngresosTotales.IsZero())
	assert.Equal(t, 0, stats.VentasUltimoMes)
	assert.True(t, stats.ValorPromedio.IsZero())
	assert.True(t, stats.CrecimientoIngresos.IsZero())
	assert.True(t, stats.PorcentajePedidosPendientes.IsZero())
	assert.True(t, stats.CrecimientoBeneficios.IsZero())
}

func TestCalcularStats_MontosRedondeadosAEntero(t *testing.T) {
	actual := VentanaDatos{Ventas: ventasPorTotales("100.60", "99.90")}
	stats := CalcularStats(actual, VentanaDatos{})

	assert.True(t, dec("201").Equal(stats.IngresosTotales), "ingresos: %s", stats.IngresosTotales)
	// Promedio 100.25 redondeado a 100.
	assert.True(t, dec("100").Equal(stats.ValorPromedio), "promedio: %s", stats.ValorPromedio)
}
