package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

var _ repository.AjustesRepository = (*AjustesRepo)(nil)

// AjustesRepo implementación del puerto AjustesRepository sobre PostgreSQL.
type AjustesRepo struct {
	q Querier
}

// NewAjustesRepository construye el adaptador de persistencia para ajustes.
func NewAjustesRepository(q Querier) *AjustesRepo {
	return &AjustesRepo{q: q}
}

// GetByUsuario devuelve los ajustes del usuario o nil si nunca guardó.
func (r *AjustesRepo) GetByUsuario(companyID, userID string) (*entity.Ajustes, error) {
	query := `
		SELECT company_id, user_id, moneda, zona_horaria, updated_at
		FROM ajustes WHERE company_id = $1 AND user_id = $2`
	var a entity.Ajustes
	err := r.q.QueryRow(context.Background(), query, companyID, userID).Scan(
		&a.CompanyID, &a.UserID, &a.Moneda, &a.ZonaHoraria, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ajustes: %w", err)
	}
	return &a, nil
}

// Upsert inserta o reemplaza los ajustes del usuario.
func (r *AjustesRepo) Upsert(ajustes *entity.Ajustes) error {
	query := `
		INSERT INTO ajustes (company_id, user_id, moneda, zona_horaria, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, user_id)
		DO UPDATE SET moneda = EXCLUDED.moneda, zona_horaria = EXCLUDED.zona_horaria, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		ajustes.CompanyID, ajustes.UserID, ajustes.Moneda, ajustes.ZonaHoraria, ajustes.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert ajustes: %w", err)
	}
	return nil
}
