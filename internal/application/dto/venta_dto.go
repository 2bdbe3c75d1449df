package dto

import "github.com/shopspring/decimal"

// CreateVentaItemRequest línea de una venta nueva. Cantidad se expresa en la
// unidad de venta elegida (tipo_unidad); el backend la convierte a unidades
// base. PrecioUnitario y Subtotal permiten al operador pisar los valores
// calculados; si vienen nil se resuelven desde el producto.
type CreateVentaItemRequest struct {
	ProductoID     string           `json:"producto_id"`
	Cantidad       decimal.Decimal  `json:"cantidad"`
	TipoUnidad     string           `json:"tipo_unidad"` // unidad, media_docena, docena, kilo, medio_kilo
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	Subtotal       *decimal.Decimal `json:"subtotal"`
}

// CreateVentaRequest registro de una venta completa.
// ConfirmarSinStock autoriza a vender por encima del stock disponible; en ese
// caso el stock se descuenta hasta cero en lugar de rechazar la venta.
type CreateVentaRequest struct {
	ClienteID         string                   `json:"cliente_id"`
	Fecha             string                   `json:"fecha"` // YYYY-MM-DD; vacío = hoy
	Estado            string                   `json:"estado"`
	EstadoPago        string                   `json:"estado_pago"`
	Moneda            string                   `json:"moneda"`
	Items             []CreateVentaItemRequest `json:"items"`
	ConfirmarSinStock bool                     `json:"confirmar_sin_stock"`
}

// UpdateEstadoVentaRequest cambio de estado del pedido.
type UpdateEstadoVentaRequest struct {
	Estado string `json:"estado"`
}

// UpdateEstadoPagoRequest cambio de estado de pago.
type UpdateEstadoPagoRequest struct {
	EstadoPago string `json:"estado_pago"`
}

// VentaItemResponse línea de venta en respuestas. Cantidad va en unidades
// base; tipo_unidad conserva la unidad con que se cargó.
type VentaItemResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TipoUnidad     string          `json:"tipo_unidad"`
}

// VentaResponse venta con sus líneas.
type VentaResponse struct {
	ID            string              `json:"id"`
	ClienteID     string              `json:"cliente_id"`
	ClienteNombre string              `json:"cliente_nombre,omitempty"`
	Fecha         string              `json:"fecha"`
	Total         decimal.Decimal     `json:"total"`
	Estado        string              `json:"estado"`
	EstadoPago    string              `json:"estado_pago"`
	Moneda        string              `json:"moneda"`
	Items         []VentaItemResponse `json:"items,omitempty"`
}

// VentaListResponse listado paginado de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
