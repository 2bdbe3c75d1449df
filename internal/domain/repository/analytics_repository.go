package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/domain/venta"
)

// VentaResumen fila cruda de venta para agregación (sin items).
// La produce la DB ya filtrada por empresa; los agregadores asumen que todas
// las filas recibidas pertenecen al tenant del llamador.
type VentaResumen struct {
	ID         string
	Total      decimal.Decimal
	Fecha      time.Time
	Estado     venta.Estado
	EstadoPago string
}

// ItemVendido fila cruda de línea de venta para el ranking de productos.
// Cantidad viene en unidades base. ProductoID puede venir vacío si el
// producto fue borrado antes de que existiera la desactivación; en ese caso
// el agregador agrupa por el nombre desnormalizado.
type ItemVendido struct {
	ProductoID     string
	ProductoNombre string
	Cantidad       decimal.Decimal
}

// GastoResumen fila cruda de gasto activo para agregación.
type GastoResumen struct {
	Monto decimal.Decimal
	Fecha time.Time
}

// DeudorResumen deuda pendiente agregada por cliente.
type DeudorResumen struct {
	ClienteID     string
	ClienteNombre string
	Deuda         decimal.Decimal
	Ventas        int
}

// ProductoCatalogo identidad mínima de un producto activo, para incluir en el
// ranking inverso los productos nunca vendidos.
type ProductoCatalogo struct {
	ID     string
	Nombre string
}

// AnalyticsRepository consultas de solo lectura para el dashboard y los
// reportes. Las implementaciones no modifican datos.
type AnalyticsRepository interface {
	// GetVentasEnRango ventas de la empresa con fecha en [desde, hasta] y
	// estado dentro de estados; estados vacío = sin filtro de estado.
	GetVentasEnRango(ctx context.Context, companyID string, desde, hasta time.Time, estados []venta.Estado) ([]VentaResumen, error)

	// GetVentasPendientesPago ventas con estado_pago pendiente en el rango,
	// sin filtrar por estado de pedido.
	GetVentasPendientesPago(ctx context.Context, companyID string, desde, hasta time.Time) ([]VentaResumen, error)

	// CountClientesNuevos clientes con fecha_registro en el rango.
	CountClientesNuevos(ctx context.Context, companyID string, desde, hasta time.Time) (int, error)

	// GetGastosActivos gastos en estado activo con fecha en el rango.
	GetGastosActivos(ctx context.Context, companyID string, desde, hasta time.Time) ([]GastoResumen, error)

	// GetItemsVendidos todas las líneas de venta de la empresa, para el
	// ranking de productos.
	GetItemsVendidos(ctx context.Context, companyID string) ([]ItemVendido, error)

	// GetProductosActivos catálogo activo, universo del ranking inverso.
	GetProductosActivos(ctx context.Context, companyID string) ([]ProductoCatalogo, error)

	// GetDeudores ventas con pago pendiente agrupadas por cliente, deuda
	// descendente.
	GetDeudores(ctx context.Context, companyID string, limit int) ([]DeudorResumen, error)
}
