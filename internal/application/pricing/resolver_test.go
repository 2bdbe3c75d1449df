package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/unidad"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestResolverPrecio_TramoMandaSobreDerivado(t *testing.T) {
	// El tramo se carga a mano y no tiene por qué ser precio base x factor.
	producto := &entity.Producto{
		Precio:            dec("50"),
		PrecioMediaDocena: decPtr("250"),
	}

	precio, err := ResolverPrecio(producto, unidad.MediaDocena)
	require.NoError(t, err)
	assert.True(t, dec("250").Equal(precio), "esperaba 250, obtuve %s", precio)
}

func TestResolverPrecio_SinTramoDerivaDelBase(t *testing.T) {
	producto := &entity.Producto{Precio: dec("100")}

	casos := []struct {
		tipo     unidad.TipoUnidad
		esperado string
	}{
		{unidad.Unidad, "100"},
		{unidad.MediaDocena, "600"},
		{unidad.Docena, "1200"},
		{unidad.Kilo, "100"},
		{unidad.MedioKilo, "50"},
	}
	for _, c := range casos {
		precio, err := ResolverPrecio(producto, c.tipo)
		require.NoError(t, err, "tipo %s", c.tipo)
		assert.True(t, dec(c.esperado).Equal(precio),
			"tipo %s: esperaba %s, obtuve %s", c.tipo, c.esperado, precio)
	}
}

func TestResolverPrecio_TramoUnidadYDocena(t *testing.T) {
	producto := &entity.Producto{
		Precio:       dec("100"),
		PrecioUnidad: decPtr("90"),
		PrecioDocena: decPtr("1000"),
	}

	precio, err := ResolverPrecio(producto, unidad.Unidad)
	require.NoError(t, err)
	assert.True(t, dec("90").Equal(precio))

	precio, err = ResolverPrecio(producto, unidad.Docena)
	require.NoError(t, err)
	assert.True(t, dec("1000").Equal(precio))

	// Media docena sin tramo sigue derivando del base.
	precio, err = ResolverPrecio(producto, unidad.MediaDocena)
	require.NoError(t, err)
	assert.True(t, dec("600").Equal(precio))
}

func TestResolverPrecio_UnidadDesconocidaFalla(t *testing.T) {
	producto := &entity.Producto{Precio: dec("100")}

	_, err := ResolverPrecio(producto, unidad.TipoUnidad("tonelada"))
	var errUnidad *unidad.ErrUnidadInvalida
	require.ErrorAs(t, err, &errUnidad)
	assert.Equal(t, unidad.TipoUnidad("tonelada"), errUnidad.Tipo)
}

func TestSubtotal_PrecioPorCantidadPedida(t *testing.T) {
	// Dos milanesas a 100 y una media docena con tramo 250: 200 + 250.
	productoA := &entity.Producto{Precio: dec("100")}
	productoB := &entity.Producto{Precio: dec("50"), PrecioMediaDocena: decPtr("250")}

	subA, err := Subtotal(productoA, unidad.Unidad, dec("2"))
	require.NoError(t, err)
	assert.True(t, dec("200").Equal(subA))

	subB, err := Subtotal(productoB, unidad.MediaDocena, dec("1"))
	require.NoError(t, err)
	assert.True(t, dec("250").Equal(subB))

	assert.True(t, dec("450").Equal(subA.Add(subB)))
}
