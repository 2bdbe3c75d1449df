package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductoActivo   = "activo"
	ProductoInactivo = "inactivo"
)

// Categorías fijas de producto. "otros" es el fallback.
const (
	CategoriaMilanesas    = "milanesas"
	CategoriaPizzas       = "pizzas"
	CategoriaSalsas       = "salsas"
	CategoriaEmpanadas    = "empanadas"
	CategoriaSorrentinos  = "sorrentinos"
	CategoriaLasanas      = "lasañas"
	CategoriaCanelones    = "canelones"
	CategoriaTartas       = "tartas"
	CategoriaPastelDePapa = "pastel de papa"
	CategoriaOtros        = "otros"
)

// Categorias devuelve el conjunto de categorías válidas.
func Categorias() []string {
	return []string{
		CategoriaMilanesas, CategoriaPizzas, CategoriaSalsas, CategoriaEmpanadas,
		CategoriaSorrentinos, CategoriaLasanas, CategoriaCanelones, CategoriaTartas,
		CategoriaPastelDePapa, CategoriaOtros,
	}
}

// CategoriaValida indica si la categoría pertenece al conjunto fijo.
func CategoriaValida(c string) bool {
	for _, v := range Categorias() {
		if v == c {
			return true
		}
	}
	return false
}

// Producto representa un producto del catálogo.
//
// Stock siempre en unidades base: toda cantidad vendida se convierte antes de
// compararse o descontarse. Los precios por tramo (unidad, media docena,
// docena) son opcionales y se autoran de forma independiente: no tienen por
// qué igualar Precio × factor.
// Un producto referenciado por ventas nunca se borra: se desactiva.
type Producto struct {
	ID                string
	CompanyID         string
	Nombre            string
	Descripcion       string
	Precio            decimal.Decimal  // precio base (por unidad)
	PrecioUnidad      *decimal.Decimal // precio específico por unidad
	PrecioMediaDocena *decimal.Decimal // precio por media docena (6 unidades)
	PrecioDocena      *decimal.Decimal // precio por docena (12 unidades)
	Categoria         string
	Stock             decimal.Decimal // no negativo, en unidades base
	ImagenURL         string
	Estado            string // activo, inactivo
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
