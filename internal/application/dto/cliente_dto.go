package dto

import "github.com/shopspring/decimal"

// CreateClienteRequest alta de cliente.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// UpdateClienteRequest edición parcial de cliente.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Estado    *string `json:"estado"` // activo, inactivo
}

// ClienteResponse representación de un cliente en respuestas.
type ClienteResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Email         string          `json:"email"`
	Telefono      string          `json:"telefono,omitempty"`
	Direccion     string          `json:"direccion,omitempty"`
	FechaRegistro string          `json:"fecha_registro"`
	TotalCompras  decimal.Decimal `json:"total_compras"`
	Estado        string          `json:"estado"`
}

// ClienteListResponse listado paginado de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
