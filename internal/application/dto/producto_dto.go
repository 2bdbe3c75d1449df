package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest alta de producto. Los precios por tramo son
// opcionales; si faltan, el precio de la línea se deriva del precio base.
type CreateProductoRequest struct {
	Nombre            string           `json:"nombre"`
	Descripcion       string           `json:"descripcion"`
	Precio            decimal.Decimal  `json:"precio"`
	PrecioUnidad      *decimal.Decimal `json:"precio_unidad"`
	PrecioMediaDocena *decimal.Decimal `json:"precio_media_docena"`
	PrecioDocena      *decimal.Decimal `json:"precio_docena"`
	Categoria         string           `json:"categoria"`
	Stock             decimal.Decimal  `json:"stock"`
	ImagenURL         string           `json:"imagen_url"`
}

// UpdateProductoRequest edición parcial de producto.
type UpdateProductoRequest struct {
	Nombre            *string          `json:"nombre"`
	Descripcion       *string          `json:"descripcion"`
	Precio            *decimal.Decimal `json:"precio"`
	PrecioUnidad      *decimal.Decimal `json:"precio_unidad"`
	PrecioMediaDocena *decimal.Decimal `json:"precio_media_docena"`
	PrecioDocena      *decimal.Decimal `json:"precio_docena"`
	Categoria         *string          `json:"categoria"`
	Stock             *decimal.Decimal `json:"stock"`
	ImagenURL         *string          `json:"imagen_url"`
	Estado            *string          `json:"estado"`
}

// ProductoResponse representación de un producto en respuestas.
type ProductoResponse struct {
	ID                string           `json:"id"`
	Nombre            string           `json:"nombre"`
	Descripcion       string           `json:"descripcion,omitempty"`
	Precio            decimal.Decimal  `json:"precio"`
	PrecioUnidad      *decimal.Decimal `json:"precio_unidad,omitempty"`
	PrecioMediaDocena *decimal.Decimal `json:"precio_media_docena,omitempty"`
	PrecioDocena      *decimal.Decimal `json:"precio_docena,omitempty"`
	Categoria         string           `json:"categoria"`
	Stock             decimal.Decimal  `json:"stock"`
	ImagenURL         string           `json:"imagen_url,omitempty"`
	Estado            string           `json:"estado"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ProductoBajoStockDTO producto con stock por debajo del umbral de alerta.
type ProductoBajoStockDTO struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Stock  decimal.Decimal `json:"stock"`
}
