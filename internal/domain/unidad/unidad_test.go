package unidad_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcoders/ventas-api/internal/domain/unidad"
)

func TestFactor_TablaFija(t *testing.T) {
	casos := map[unidad.TipoUnidad]string{
		unidad.Unidad:      "1",
		unidad.MediaDocena: "6",
		unidad.Docena:      "12",
		unidad.Kilo:        "1",
		unidad.MedioKilo:   "0.5",
	}
	for tipo, esperado := range casos {
		f, err := unidad.Factor(tipo)
		require.NoError(t, err, "factor de %s", tipo)
		assert.True(t, f.Equal(decimal.RequireFromString(esperado)),
			"factor de %s: esperado %s, obtenido %s", tipo, esperado, f)
		assert.True(t, f.GreaterThan(decimal.Zero), "todo factor debe ser positivo")
	}
}

func TestFactor_TipoDesconocidoFalla(t *testing.T) {
	_, err := unidad.Factor("gruesa")
	require.Error(t, err, "un tipo desconocido no debe defaultear a 1")

	var errUnidad *unidad.ErrUnidadInvalida
	require.ErrorAs(t, err, &errUnidad)
	assert.Equal(t, unidad.TipoUnidad("gruesa"), errUnidad.Tipo)
}

func TestEnUnidadesBase_ConversionExacta(t *testing.T) {
	// 2 docenas = 24 unidades base
	qty, err := unidad.EnUnidadesBase(decimal.NewFromInt(2), unidad.Docena)
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromInt(24)))

	// 3 medio kilo = 1.5 en unidades base (kilos)
	qty, err = unidad.EnUnidadesBase(decimal.NewFromInt(3), unidad.MedioKilo)
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.RequireFromString("1.5")))
}

func TestEnUnidadesBase_TipoDesconocidoFalla(t *testing.T) {
	_, err := unidad.EnUnidadesBase(decimal.NewFromInt(1), "caja")
	require.Error(t, err)
}

func TestNombre(t *testing.T) {
	n, err := unidad.Nombre(unidad.MediaDocena)
	require.NoError(t, err)
	assert.Equal(t, "Media docena", n)

	_, err = unidad.Nombre("bolsa")
	require.Error(t, err)
}

func TestTipos_CubreTodaLaTabla(t *testing.T) {
	tipos := unidad.Tipos()
	require.Len(t, tipos, 5)
	for _, tipo := range tipos {
		_, err := unidad.Factor(tipo)
		assert.NoError(t, err)
		_, err = unidad.Nombre(tipo)
		assert.NoError(t, err)
	}
}
