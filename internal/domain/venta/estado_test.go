package venta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wcoders/ventas-api/internal/domain/venta"
)

func TestPuedeTransicionar_FlujoNormal(t *testing.T) {
	assert.True(t, venta.PuedeTransicionar(venta.EstadoPendiente, venta.EstadoPreparacion))
	assert.True(t, venta.PuedeTransicionar(venta.EstadoPreparacion, venta.EstadoListo))
	assert.True(t, venta.PuedeTransicionar(venta.EstadoListo, venta.EstadoEntregado))
	assert.True(t, venta.PuedeTransicionar(venta.EstadoEntregado, venta.EstadoCompletada))
}

func TestPuedeTransicionar_CancelacionDesdeNoTerminales(t *testing.T) {
	for _, desde := range []venta.Estado{
		venta.EstadoPendiente, venta.EstadoPreparacion, venta.EstadoListo, venta.EstadoEntregado,
	} {
		assert.True(t, venta.PuedeTransicionar(desde, venta.EstadoCancelada),
			"debe poder cancelarse desde %s", desde)
	}
}

func TestEstadosTerminalesNoAdmitenSalida(t *testing.T) {
	for _, terminal := range []venta.Estado{venta.EstadoCompletada, venta.EstadoCancelada} {
		assert.True(t, terminal.EsTerminal())
		assert.False(t, venta.PuedeTransicionar(terminal, venta.EstadoPendiente))
		assert.False(t, venta.PuedeTransicionar(terminal, venta.EstadoEntregado))
	}
}

func TestEstadoDesconocidoNoEsValido(t *testing.T) {
	assert.False(t, venta.Estado("enviado").EsValido())
	assert.False(t, venta.PuedeTransicionar("enviado", venta.EstadoCompletada))
}

func TestEstadosActivos_ExcluyeCanceladaYEntregado(t *testing.T) {
	activos := venta.EstadosActivos()
	assert.Len(t, activos, 4)
	assert.NotContains(t, activos, venta.EstadoCancelada)
	assert.NotContains(t, activos, venta.EstadoEntregado)
}
