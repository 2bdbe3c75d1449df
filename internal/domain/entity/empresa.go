package entity

import "time"

// Empresa representa una organización/tenant del sistema. Todas las demás
// entidades se aíslan por CompanyID.
type Empresa struct {
	ID        string
	Nombre    string
	Direccion string
	Telefono  string
	Email     string
	SitioWeb  string
	Estado    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
