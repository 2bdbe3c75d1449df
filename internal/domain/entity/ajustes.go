package entity

import "time"

// Ajustes preferencias de un usuario dentro de su empresa. Se persisten en la
// base, no en caches locales del cliente: son la única fuente de verdad.
type Ajustes struct {
	CompanyID   string
	UserID      string
	Moneda      string // código de moneda preferido; vacío = moneda de la empresa
	ZonaHoraria string
	UpdatedAt   time.Time
}
