package moneda

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizar_CodigoValido(t *testing.T) {
	assert.Equal(t, "USD", Normalizar("usd"))
	assert.Equal(t, "UYU", Normalizar("UYU"))
}

func TestNormalizar_FallbackAlDefault(t *testing.T) {
	assert.Equal(t, PorDefecto, Normalizar(""))
	assert.Equal(t, PorDefecto, Normalizar("pesos"))
	assert.Equal(t, PorDefecto, Normalizar("XYZ1"))
}

func TestFormatear_IncluyeElMonto(t *testing.T) {
	out := Formatear("UYU", decimal.RequireFromString("100"))
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "100")
}

func TestFormatear_CodigoInvalidoUsaDefault(t *testing.T) {
	out := Formatear("???", decimal.RequireFromString("50"))
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "50")
}
