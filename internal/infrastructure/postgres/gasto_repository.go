package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación del puerto GastoRepository sobre PostgreSQL (usable con pool o tx).
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador de persistencia para gastos. Pasar pool o tx (Querier).
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

// Create persiste un nuevo gasto.
func (r *GastoRepo) Create(gasto *entity.Gasto) error {
	query := `
		INSERT INTO gastos (id, company_id, concepto, monto, fecha, categoria, notas, comprobante, recurrente, frecuencia, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.CompanyID, gasto.Concepto, gasto.Monto, gasto.Fecha,
		gasto.Categoria, gasto.Notas, gasto.Comprobante, gasto.Recurrente,
		gasto.Frecuencia, gasto.Estado, gasto.CreatedAt, gasto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *GastoRepo) GetByID(id string) (*entity.Gasto, error) {
	query := `
		SELECT id, company_id, concepto, monto, fecha, categoria, notas, comprobante, recurrente, frecuencia, estado, created_at, updated_at
		FROM gastos WHERE id = $1`
	var g entity.Gasto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.CompanyID, &g.Concepto, &g.Monto, &g.Fecha, &g.Categoria,
		&g.Notas, &g.Comprobante, &g.Recurrente, &g.Frecuencia, &g.Estado,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	return &g, nil
}

// Update actualiza un gasto existente.
func (r *GastoRepo) Update(gasto *entity.Gasto) error {
	query := `
		UPDATE gastos SET concepto = $2, monto = $3, fecha = $4, categoria = $5, notas = $6,
			comprobante = $7, recurrente = $8, frecuencia = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.Concepto, gasto.Monto, gasto.Fecha, gasto.Categoria,
		gasto.Notas, gasto.Comprobante, gasto.Recurrente, gasto.Frecuencia, gasto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update gasto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Anular marca el gasto como anulado; queda fuera de toda agregación financiera.
func (r *GastoRepo) Anular(id string) error {
	query := `UPDATE gastos SET estado = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, entity.GastoAnulado)
	if err != nil {
		return fmt.Errorf("anular gasto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista gastos de la empresa, más recientes primero; estado vacío = todos.
func (r *GastoRepo) ListByCompany(companyID, estado string, limit, offset int) ([]*entity.Gasto, error) {
	query := `
		SELECT id, company_id, concepto, monto, fecha, categoria, notas, comprobante, recurrente, frecuencia, estado, created_at, updated_at
		FROM gastos
		WHERE company_id = $1 AND ($2 = '' OR estado = $2)
		ORDER BY fecha DESC, created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()

	var gastos []*entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(
			&g.ID, &g.CompanyID, &g.Concepto, &g.Monto, &g.Fecha, &g.Categoria,
			&g.Notas, &g.Comprobante, &g.Recurrente, &g.Frecuencia, &g.Estado,
			&g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		gastos = append(gastos, &g)
	}
	return gastos, rows.Err()
}
