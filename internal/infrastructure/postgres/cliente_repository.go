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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, company_id, nombre, email, telefono, direccion, fecha_registro, total_compras, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.CompanyID, cliente.Nombre, cliente.Email, cliente.Telefono,
		cliente.Direccion, cliente.FechaRegistro, cliente.TotalCompras, cliente.Estado,
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, company_id, nombre, email, telefono, direccion, fecha_registro, total_compras, estado, created_at, updated_at
		FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Nombre, &c.Email, &c.Telefono, &c.Direccion,
		&c.FechaRegistro, &c.TotalCompras, &c.Estado, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Update actualiza los datos de contacto y el estado. No toca total_compras.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, email = $3, telefono = $4, direccion = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Email, cliente.Telefono, cliente.Direccion,
		cliente.Estado, cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista clientes de la empresa; estado vacío = todos.
func (r *ClienteRepo) ListByCompany(companyID, estado string, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, company_id, nombre, email, telefono, direccion, fecha_registro, total_compras, estado, created_at, updated_at
		FROM clientes
		WHERE company_id = $1 AND ($2 = '' OR estado = $2)
		ORDER BY nombre ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var clientes []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Nombre, &c.Email, &c.Telefono, &c.Direccion,
			&c.FechaRegistro, &c.TotalCompras, &c.Estado, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		clientes = append(clientes, &c)
	}
	return clientes, rows.Err()
}

// IncrementarTotalCompras suma monto al acumulado del cliente.
func (r *ClienteRepo) IncrementarTotalCompras(clienteID string, monto decimal.Decimal) error {
	query := `UPDATE clientes SET total_compras = total_compras + $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, clienteID, monto)
	if err != nil {
		return fmt.Errorf("incrementar total_compras: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
