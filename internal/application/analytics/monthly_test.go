package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcoders/ventas-api/internal/domain/repository"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

func fecha(mes time.Month, dia int) time.Time {
	return time.Date(2026, mes, dia, 12, 0, 0, 0, time.UTC)
}

func TestAgruparVentasMensuales_DoceMesesFijos(t *testing.T) {
	ventasList := []repository.VentaResumen{
		{Total: dec("100.40"), Fecha: fecha(time.January, 5)},
		{Total: dec("200.30"), Fecha: fecha(time.January, 20)},
		{Total: dec("500"), Fecha: fecha(time.March, 1)},
		{Total: dec("80"), Fecha: fecha(time.December, 31)},
	}

	meses := AgruparVentasMensuales(ventasList)
	require.Len(t, meses, 12)

	assert.Equal(t, "Ene", meses[0].Mes)
	assert.Equal(t, "Dic", meses[11].Mes)

	// Enero: 100.40 + 200.30 = 300.70 redondeado a 301.
	assert.True(t, dec("301").Equal(meses[0].Ventas), "enero: %s", meses[0].Ventas)
	assert.Equal(t, 2, meses[0].Pedidos)

	assert.True(t, dec("500").Equal(meses[2].Ventas))
	assert.Equal(t, 1, meses[2].Pedidos)

	assert.True(t, dec("80").Equal(meses[11].Ventas))
	assert.Equal(t, 1, meses[11].Pedidos)

	// Los meses sin ventas quedan en cero.
	assert.True(t, meses[1].Ventas.IsZero())
	assert.Equal(t, 0, meses[1].Pedidos)
}

func TestAgruparVentasMensuales_CuentaTodoEstado(t *testing.T) {
	// El gráfico anual no filtra por estado ni estado de pago.
	ventasList := []repository.VentaResumen{
		{Total: dec("100"), Fecha: fecha(time.June, 1), Estado: venta.EstadoCancelada},
		{Total: dec("100"), Fecha: fecha(time.June, 2), Estado: venta.EstadoCompletada, EstadoPago: venta.PagoPendiente},
	}

	meses := AgruparVentasMensuales(ventasList)
	assert.Equal(t, 2, meses[5].Pedidos)
	assert.True(t, dec("200").Equal(meses[5].Ventas))
}

func TestAgruparVentasMensuales_SumasCierran(t *testing.T) {
	var ventasList []repository.VentaResumen
	for mes := time.January; mes <= time.December; mes++ {
		ventasList = append(ventasList,
			repository.VentaResumen{Total: dec("10"), Fecha: fecha(mes, 3)},
			repository.VentaResumen{Total: dec("15"), Fecha: fecha(mes, 17)},
		)
	}

	meses := AgruparVentasMensuales(ventasList)

	totalPedidos := 0
	totalVentas := dec("0")
	for _, m := range meses {
		totalPedidos += m.Pedidos
		totalVentas = totalVentas.Add(m.Ventas)
	}
	assert.Equal(t, len(ventasList), totalPedidos)
	assert.True(t, dec("300").Equal(totalVentas))
}
