package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, company_id, cliente_id, fecha, total, estado, estado_pago, moneda, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.CompanyID, v.ClienteID, v.Fecha, v.Total, v.Estado, v.EstadoPago,
		v.Moneda, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta. Cantidad ya viene en unidades base.
func (r *VentaRepo) CreateItem(item *entity.VentaItem) error {
	query := `
		INSERT INTO venta_items (id, venta_id, producto_id, producto_nombre, cantidad, precio_unitario, subtotal, tipo_unidad)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.VentaID, item.ProductoID, item.ProductoNombre,
		item.Cantidad, item.PrecioUnitario, item.Subtotal, item.TipoUnidad,
	)
	if err != nil {
		return fmt.Errorf("insert venta item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID, con el nombre del cliente resuelto.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `
		SELECT v.id, v.company_id, v.cliente_id, COALESCE(c.nombre, ''), v.fecha, v.total,
			v.estado, v.estado_pago, v.moneda, v.created_at, v.updated_at
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.cliente_id
		WHERE v.id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.CompanyID, &v.ClienteID, &v.ClienteNombre, &v.Fecha, &v.Total,
		&v.Estado, &v.EstadoPago, &v.Moneda, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// GetItemsByVentaID obtiene las líneas de una venta en orden de inserción.
func (r *VentaRepo) GetItemsByVentaID(ventaID string) ([]*entity.VentaItem, error) {
	query := `
		SELECT id, venta_id, producto_id, producto_nombre, cantidad, precio_unitario, subtotal, tipo_unidad
		FROM venta_items WHERE venta_id = $1
		ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("get venta items: %w", err)
	}
	defer rows.Close()

	var items []*entity.VentaItem
	for rows.Next() {
		var it entity.VentaItem
		if err := rows.Scan(
			&it.ID, &it.VentaID, &it.ProductoID, &it.ProductoNombre,
			&it.Cantidad, &it.PrecioUnitario, &it.Subtotal, &it.TipoUnidad,
		); err != nil {
			return nil, fmt.Errorf("scan venta item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// ListByCompany lista ventas de la empresa, más recientes primero.
func (r *VentaRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Venta, error) {
	query := ventaListQuery + `
		WHERE v.company_id = $1
		ORDER BY v.fecha DESC, v.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	return collectVentas(rows)
}

// ListEnCurso ventas aún no entregadas, más recientes primero.
func (r *VentaRepo) ListEnCurso(companyID string, limit int) ([]*entity.Venta, error) {
	query := ventaListQuery + `
		WHERE v.company_id = $1 AND v.estado = ANY($2)
		ORDER BY v.fecha DESC, v.created_at DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, companyID, estadosToStrings(venta.EstadosEnCurso()), limit)
	if err != nil {
		return nil, fmt.Errorf("list ventas en curso: %w", err)
	}
	defer rows.Close()
	return collectVentas(rows)
}

// ListByRango ventas con fecha dentro de [desde, hasta], más recientes primero.
func (r *VentaRepo) ListByRango(companyID string, desde, hasta time.Time) ([]*entity.Venta, error) {
	query := ventaListQuery + `
		WHERE v.company_id = $1 AND v.fecha BETWEEN $2 AND $3
		ORDER BY v.fecha DESC, v.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list ventas por rango: %w", err)
	}
	defer rows.Close()
	return collectVentas(rows)
}

// UpdateEstado cambia el estado del pedido.
func (r *VentaRepo) UpdateEstado(id string, estado venta.Estado) error {
	query := `UPDATE ventas SET estado = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, estado)
	if err != nil {
		return fmt.Errorf("update estado venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstadoPago cambia el estado de pago.
func (r *VentaRepo) UpdateEstadoPago(id string, estadoPago string) error {
	query := `UPDATE ventas SET estado_pago = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, estadoPago)
	if err != nil {
		return fmt.Errorf("update estado_pago venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la venta y sus líneas. Primero los items por la FK.
func (r *VentaRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM venta_items WHERE venta_id = $1`, id); err != nil {
		return fmt.Errorf("delete venta items: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const ventaListQuery = `
		SELECT v.id, v.company_id, v.cliente_id, COALESCE(c.nombre, ''), v.fecha, v.total,
			v.estado, v.estado_pago, v.moneda, v.created_at, v.updated_at
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.cliente_id`

func collectVentas(rows pgx.Rows) ([]*entity.Venta, error) {
	var ventas []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.ClienteID, &v.ClienteNombre, &v.Fecha, &v.Total,
			&v.Estado, &v.EstadoPago, &v.Moneda, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		ventas = append(ventas, &v)
	}
	return ventas, rows.Err()
}

func estadosToStrings(estados []venta.Estado) []string {
	out := make([]string, len(estados))
	for i, e := range estados {
		out[i] = string(e)
	}
	return out
}
