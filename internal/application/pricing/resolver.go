// Package pricing resuelve el precio aplicable a una línea de venta según la
// unidad elegida y los tramos de precio del producto.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/unidad"
)

// ResolverPrecio devuelve el precio por la unidad de venta elegida.
//
// Si el producto tiene precio de tramo para esa unidad (precio_unidad,
// precio_media_docena, precio_docena) ese precio manda: los tramos se cargan
// a mano y no tienen por qué coincidir con precio base x factor. Sin tramo,
// el precio se deriva del precio base multiplicado por el factor de
// conversión (para unidad y kilo el factor es 1, así que queda el precio
// base tal cual).
func ResolverPrecio(producto *entity.Producto, tipo unidad.TipoUnidad) (decimal.Decimal, error) {
	factor, err := unidad.Factor(tipo)
	if err != nil {
		return decimal.Zero, err
	}

	switch tipo {
	case unidad.Unidad:
		if producto.PrecioUnidad != nil {
			return *producto.PrecioUnidad, nil
		}
	case unidad.MediaDocena:
		if producto.PrecioMediaDocena != nil {
			return *producto.PrecioMediaDocena, nil
		}
	case unidad.Docena:
		if producto.PrecioDocena != nil {
			return *producto.PrecioDocena, nil
		}
	}

	return producto.Precio.Mul(factor), nil
}

// Subtotal calcula el subtotal de una línea: precio resuelto por la cantidad
// pedida en la unidad elegida.
func Subtotal(producto *entity.Producto, tipo unidad.TipoUnidad, cantidad decimal.Decimal) (decimal.Decimal, error) {
	precio, err := ResolverPrecio(producto, tipo)
	if err != nil {
		return decimal.Zero, err
	}
	return precio.Mul(cantidad), nil
}
