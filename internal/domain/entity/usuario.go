package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// Usuario representa un usuario autenticable, siempre asociado a una empresa.
type Usuario struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string // admin, vendedor
	Estado       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
