package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wcoders/ventas-api/internal/domain/repository"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y los reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetVentasEnRango ventas de la empresa con fecha en [desde, hasta].
// estados vacío = sin filtro de estado.
func (r *AnalyticsRepo) GetVentasEnRango(
	ctx context.Context,
	companyID string,
	desde, hasta time.Time,
	estados []venta.Estado,
) ([]repository.VentaResumen, error) {
	const query = `
	SELECT id, total, fecha, estado, estado_pago
	FROM ventas
	WHERE company_id = $1
	  AND fecha BETWEEN $2 AND $3
	  AND (cardinality($4::text[]) = 0 OR estado = ANY($4))`

	rows, err := r.pool.Query(ctx, query, companyID, desde, hasta, estadosToStrings(estados))
	if err != nil {
		return nil, fmt.Errorf("analytics.GetVentasEnRango: %w", err)
	}
	defer rows.Close()
	return collectVentaResumen(rows, "analytics.GetVentasEnRango")
}

// GetVentasPendientesPago ventas con estado_pago pendiente en el rango, sin
// filtrar por estado de pedido.
func (r *AnalyticsRepo) GetVentasPendientesPago(
	ctx context.Context,
	companyID string,
	desde, hasta time.Time,
) ([]repository.VentaResumen, error) {
	const query = `
	SELECT id, total, fecha, estado, estado_pago
	FROM ventas
	WHERE company_id = $1
	  AND fecha BETWEEN $2 AND $3
	  AND estado_pago = 'pendiente'`

	rows, err := r.pool.Query(ctx, query, companyID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetVentasPendientesPago: %w", err)
	}
	defer rows.Close()
	return collectVentaResumen(rows, "analytics.GetVentasPendientesPago")
}

// CountClientesNuevos clientes con fecha_registro en el rango.
func (r *AnalyticsRepo) CountClientesNuevos(
	ctx context.Context,
	companyID string,
	desde, hasta time.Time,
) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM clientes
	WHERE company_id = $1 AND fecha_registro BETWEEN $2 AND $3`

	var total int
	if err := r.pool.QueryRow(ctx, query, companyID, desde, hasta).Scan(&total); err != nil {
		return 0, fmt.Errorf("analytics.CountClientesNuevos: %w", err)
	}
	return total, nil
}

// GetGastosActivos gastos en estado activo con fecha en el rango.
func (r *AnalyticsRepo) GetGastosActivos(
	ctx context.Context,
	companyID string,
	desde, hasta time.Time,
) ([]repository.GastoResumen, error) {
	const query = `
	SELECT monto, fecha
	FROM gastos
	WHERE company_id = $1
	  AND estado = 'activo'
	  AND fecha BETWEEN $2 AND $3`

	rows, err := r.pool.Query(ctx, query, companyID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetGastosActivos: %w", err)
	}
	defer rows.Close()

	var gastos []repository.GastoResumen
	for rows.Next() {
		var g repository.GastoResumen
		if err := rows.Scan(&g.Monto, &g.Fecha); err != nil {
			return nil, fmt.Errorf("analytics.GetGastosActivos scan: %w", err)
		}
		gastos = append(gastos, g)
	}
	return gastos, rows.Err()
}

// GetItemsVendidos todas las líneas de venta de la empresa, para el ranking
// de productos. Cantidad ya viene en unidades base.
func (r *AnalyticsRepo) GetItemsVendidos(ctx context.Context, companyID string) ([]repository.ItemVendido, error) {
	const query = `
	SELECT COALESCE(i.producto_id, ''), i.producto_nombre, i.cantidad
	FROM venta_items i
	JOIN ventas v ON v.id = i.venta_id
	WHERE v.company_id = $1`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetItemsVendidos: %w", err)
	}
	defer rows.Close()

	var items []repository.ItemVendido
	for rows.Next() {
		var it repository.ItemVendido
		if err := rows.Scan(&it.ProductoID, &it.ProductoNombre, &it.Cantidad); err != nil {
			return nil, fmt.Errorf("analytics.GetItemsVendidos scan: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetProductosActivos catálogo activo, universo del ranking inverso.
func (r *AnalyticsRepo) GetProductosActivos(ctx context.Context, companyID string) ([]repository.ProductoCatalogo, error) {
	const query = `
	SELECT id, nombre
	FROM productos
	WHERE company_id = $1 AND estado = 'activo'
	ORDER BY nombre ASC`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProductosActivos: %w", err)
	}
	defer rows.Close()

	var productos []repository.ProductoCatalogo
	for rows.Next() {
		var p repository.ProductoCatalogo
		if err := rows.Scan(&p.ID, &p.Nombre); err != nil {
			return nil, fmt.Errorf("analytics.GetProductosActivos scan: %w", err)
		}
		productos = append(productos, p)
	}
	return productos, rows.Err()
}

// GetDeudores ventas con pago pendiente agrupadas por cliente, deuda descendente.
func (r *AnalyticsRepo) GetDeudores(ctx context.Context, companyID string, limit int) ([]repository.DeudorResumen, error) {
	const query = `
	SELECT
	    v.cliente_id,
	    COALESCE(c.nombre, 'Cliente eliminado') AS cliente_nombre,
	    SUM(v.total)                            AS deuda,
	    COUNT(*)                                AS ventas
	FROM ventas v
	LEFT JOIN clientes c ON c.id = v.cliente_id
	WHERE v.company_id = $1
	  AND v.estado_pago = 'pendiente'
	  AND v.estado <> 'cancelada'
	GROUP BY v.cliente_id, c.nombre
	ORDER BY deuda DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDeudores: %w", err)
	}
	defer rows.Close()

	var deudores []repository.DeudorResumen
	for rows.Next() {
		var d repository.DeudorResumen
		if err := rows.Scan(&d.ClienteID, &d.ClienteNombre, &d.Deuda, &d.Ventas); err != nil {
			return nil, fmt.Errorf("analytics.GetDeudores scan: %w", err)
		}
		deudores = append(deudores, d)
	}
	return deudores, rows.Err()
}

func collectVentaResumen(rows pgx.Rows, op string) ([]repository.VentaResumen, error) {
	var ventas []repository.VentaResumen
	for rows.Next() {
		var v repository.VentaResumen
		if err := rows.Scan(&v.ID, &v.Total, &v.Fecha, &v.Estado, &v.EstadoPago); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		ventas = append(ventas, v)
	}
	return ventas, rows.Err()
}
