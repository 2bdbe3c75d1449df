package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcoders/ventas-api/internal/domain/repository"
)

func item(productoID, nombre, cantidad string) repository.ItemVendido {
	return repository.ItemVendido{
		ProductoID:     productoID,
		ProductoNombre: nombre,
		Cantidad:       dec(cantidad),
	}
}

func TestRankearMasVendidos_TopCincoMasOtros(t *testing.T) {
	items := []repository.ItemVendido{
		item("p1", "Milanesa", "50"),
		item("p2", "Pizza", "40"),
		item("p3", "Empanada", "30"),
		item("p4", "Tarta", "20"),
		item("p5", "Sorrentinos", "10"),
		item("p6", "Canelones", "6"),
		item("p7", "Lasaña", "4"),
	}

	ranking := RankearMasVendidos(items)
	require.Len(t, ranking, 6)

	assert.Equal(t, "p1", ranking[0].ID)
	assert.True(t, dec("50").Equal(ranking[0].CantidadVendida))
	assert.Equal(t, 31, ranking[0].Porcentaje) // 50/160 = 31.25 → 31
	assert.Equal(t, "#06b6d4", ranking[0].Color)

	// La cola (p6 + p7) se agrupa como Otros con su propio color.
	otros := ranking[5]
	assert.Equal(t, "others", otros.ID)
	assert.Equal(t, "Otros", otros.Nombre)
	assert.True(t, dec("10").Equal(otros.CantidadVendida))
	assert.Equal(t, 6, otros.Porcentaje) // 10/160 = 6.25 → 6
	assert.Equal(t, "#f87171", otros.Color)

	// El top más Otros cubre todo lo vendido.
	suma := decimal.Zero
	for _, r := range ranking {
		suma = suma.Add(r.CantidadVendida)
	}
	assert.True(t, dec("160").Equal(suma))
}

func TestRankearMasVendidos_SinColaNoHayOtros(t *testing.T) {
	items := []repository.ItemVendido{
		item("p1", "Milanesa", "5"),
		item("p2", "Pizza", "3"),
	}

	ranking := RankearMasVendidos(items)
	require.Len(t, ranking, 2)
	for _, r := range ranking {
		assert.NotEqual(t, "others", r.ID)
	}
}

func TestRankearMasVendidos_AgrupaLineasDelMismoProducto(t *testing.T) {
	items := []repository.ItemVendido{
		item("p1", "Milanesa", "5"),
		item("p1", "Milanesa", "7"),
		item("", "Producto borrado", "3"),
		item("", "Producto borrado", "1"),
	}

	ranking := RankearMasVendidos(items)
	require.Len(t, ranking, 2)

	assert.Equal(t, "p1", ranking[0].ID)
	assert.True(t, dec("12").Equal(ranking[0].CantidadVendida))

	// Las líneas sin producto se agrupan bajo sin-id.
	assert.Equal(t, "sin-id", ranking[1].ID)
	assert.True(t, dec("4").Equal(ranking[1].CantidadVendida))
}

func TestRankearMasVendidos_Idempotente(t *testing.T) {
	// Empates de cantidad: el desempate por id mantiene el orden estable.
	items := []repository.ItemVendido{
		item("pb", "B", "10"),
		item("pa", "A", "10"),
		item("pc", "C", "10"),
	}

	primero := RankearMasVendidos(items)
	segundo := RankearMasVendidos(items)
	assert.Equal(t, primero, segundo)
	assert.Equal(t, "pa", primero[0].ID)
	assert.Equal(t, "pb", primero[1].ID)
	assert.Equal(t, "pc", primero[2].ID)
}

func TestRankearMasVendidos_SinVentas(t *testing.T) {
	assert.Empty(t, RankearMasVendidos(nil))
}

func TestRankearMenosVendidos_ProductosSinVentaPrimeros(t *testing.T) {
	productos := []repository.ProductoCatalogo{
		{ID: "p1", Nombre: "Milanesa"},
		{ID: "p2", Nombre: "Pizza"},
		{ID: "p3", Nombre: "Empanada"},
	}
	items := []repository.ItemVendido{
		item("p1", "Milanesa", "30"),
		item("p2", "Pizza", "10"),
		// p4 ya no está activo: no entra al universo del ranking.
		item("p4", "Descatalogado", "99"),
	}

	ranking := RankearMenosVendidos(productos, items)
	require.Len(t, ranking, 3)

	assert.Equal(t, "p3", ranking[0].ID)
	assert.True(t, ranking[0].CantidadVendida.IsZero())
	assert.Equal(t, 0, ranking[0].Porcentaje)
	assert.Equal(t, "#EF4444", ranking[0].Color)

	assert.Equal(t, "p2", ranking[1].ID)
	assert.Equal(t, 25, ranking[1].Porcentaje) // 10/40

	assert.Equal(t, "p1", ranking[2].ID)
	assert.Equal(t, 75, ranking[2].Porcentaje) // 30/40
}

func TestRankearMenosVendidos_CatalogoSinVentas(t *testing.T) {
	productos := []repository.ProductoCatalogo{
		{ID: "p1", Nombre: "Milanesa"},
		{ID: "p2", Nombre: "Pizza"},
	}

	ranking := RankearMenosVendidos(productos, nil)
	require.Len(t, ranking, 2)
	for _, r := range ranking {
		assert.True(t, r.CantidadVendida.IsZero())
		assert.Equal(t, 0, r.Porcentaje)
	}
}

func TestRankearMenosVendidos_CortaEnCinco(t *testing.T) {
	productos := make([]repository.ProductoCatalogo, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		productos = append(productos, repository.ProductoCatalogo{ID: id, Nombre: id})
	}

	ranking := RankearMenosVendidos(productos, nil)
	assert.Len(t, ranking, 5)
}
