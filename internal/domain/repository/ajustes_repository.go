package repository

import "github.com/wcoders/ventas-api/internal/domain/entity"

// AjustesRepository puerto de persistencia para preferencias de usuario.
// La base es la única fuente de verdad: no hay cache local que reconciliar.
type AjustesRepository interface {
	// GetByUsuario devuelve los ajustes del usuario o nil si nunca guardó.
	GetByUsuario(companyID, userID string) (*entity.Ajustes, error)
	Upsert(ajustes *entity.Ajustes) error
}
