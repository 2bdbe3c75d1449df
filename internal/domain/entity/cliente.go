package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cliente.
const (
	ClienteActivo   = "activo"
	ClienteInactivo = "inactivo"
)

// Cliente representa un cliente de la empresa.
// TotalCompras es acumulado monetario, monótono no decreciente: solo lo
// incrementa el registro de una venta.
type Cliente struct {
	ID            string
	CompanyID     string
	Nombre        string
	Email         string
	Telefono      string
	Direccion     string
	FechaRegistro time.Time
	TotalCompras  decimal.Decimal
	Estado        string // activo, inactivo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
