package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/domain/unidad"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

// Venta representa la cabecera de una venta.
// Invariante: Total es igual a la suma de los subtotales de sus items.
type Venta struct {
	ID        string
	CompanyID string
	ClienteID string
	// ClienteNombre lo completa el join en listados; no se persiste.
	ClienteNombre string
	Fecha         time.Time
	Total         decimal.Decimal
	Estado        venta.Estado
	EstadoPago    string // pagado, pendiente
	Moneda        string // código de moneda, ej: "UYU", "USD"
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VentaItem representa una línea de una venta.
//
// ProductoNombre se desnormaliza al crear la venta y no sigue renombres
// posteriores del producto. Cantidad se guarda ya convertida a unidades base
// (cantidad pedida × factor del tipo de unidad); Subtotal = PrecioUnitario ×
// Cantidad salvo override manual del operador.
type VentaItem struct {
	ID             string
	VentaID        string
	ProductoID     string
	ProductoNombre string
	Cantidad       decimal.Decimal // en unidades base
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
	TipoUnidad     unidad.TipoUnidad
}
