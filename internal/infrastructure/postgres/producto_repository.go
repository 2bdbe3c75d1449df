package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, company_id, nombre, descripcion, precio, precio_unidad, precio_media_docena, precio_docena, categoria, stock, imagen_url, estado, created_at, updated_at`

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Nombre, &p.Descripcion, &p.Precio,
		&p.PrecioUnidad, &p.PrecioMediaDocena, &p.PrecioDocena,
		&p.Categoria, &p.Stock, &p.ImagenURL, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.CompanyID, producto.Nombre, producto.Descripcion, producto.Precio,
		producto.PrecioUnidad, producto.PrecioMediaDocena, producto.PrecioDocena,
		producto.Categoria, producto.Stock, producto.ImagenURL, producto.Estado,
		producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// Update actualiza un producto. No toca el stock: el stock solo cambia por
// ventas (descuento) o por la edición explícita que ya viene en el entity.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, precio = $4, precio_unidad = $5,
			precio_media_docena = $6, precio_docena = $7, categoria = $8, stock = $9,
			imagen_url = $10, estado = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Precio,
		producto.PrecioUnidad, producto.PrecioMediaDocena, producto.PrecioDocena,
		producto.Categoria, producto.Stock, producto.ImagenURL, producto.Estado,
		producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Desactivar marca el producto como inactivo.
func (r *ProductoRepo) Desactivar(id string) error {
	query := `UPDATE productos SET estado = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, entity.ProductoInactivo)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista productos de la empresa; estado vacío = todos.
func (r *ProductoRepo) ListByCompany(companyID, estado string, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + `
		FROM productos
		WHERE company_id = $1 AND ($2 = '' OR estado = $2)
		ORDER BY nombre ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return collectProductos(rows)
}

// ListBajoStock productos activos con stock menor al umbral, los más escasos primero.
func (r *ProductoRepo) ListBajoStock(companyID string, umbral decimal.Decimal, limit int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + `
		FROM productos
		WHERE company_id = $1 AND estado = $2 AND stock < $3
		ORDER BY stock ASC, nombre ASC
		LIMIT $4`
	rows, err := r.q.Query(context.Background(), query, companyID, entity.ProductoActivo, umbral, limit)
	if err != nil {
		return nil, fmt.Errorf("list bajo stock: %w", err)
	}
	defer rows.Close()
	return collectProductos(rows)
}

// DescontarStock descuenta cantidad en unidades base, solo si el stock alcanza.
// La condición stock >= cantidad va en la misma sentencia: el rechazo (false)
// es la señal autoritativa de stock insuficiente, sin ventana de carrera.
func (r *ProductoRepo) DescontarStock(id string, cantidad decimal.Decimal) (bool, error) {
	query := `
		UPDATE productos SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2`
	cmd, err := r.q.Exec(context.Background(), query, id, cantidad)
	if err != nil {
		return false, fmt.Errorf("descontar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DescontarStockForzado descuenta con piso en cero (venta confirmada pese al faltante).
func (r *ProductoRepo) DescontarStockForzado(id string, cantidad decimal.Decimal) error {
	query := `
		UPDATE productos SET stock = GREATEST(stock - $2, 0), updated_at = NOW()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, cantidad)
	if err != nil {
		return fmt.Errorf("descontar stock forzado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	var productos []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Nombre, &p.Descripcion, &p.Precio,
			&p.PrecioUnidad, &p.PrecioMediaDocena, &p.PrecioDocena,
			&p.Categoria, &p.Stock, &p.ImagenURL, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, &p)
	}
	return productos, rows.Err()
}
