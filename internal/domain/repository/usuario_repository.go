package repository

import "github.com/wcoders/ventas-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	GetByEmailAndCompany(email, companyID string) (*entity.Usuario, error)
}
