package dto

import "github.com/shopspring/decimal"

// CreateGastoRequest alta de gasto.
type CreateGastoRequest struct {
	Concepto    string          `json:"concepto"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"` // YYYY-MM-DD; vacío = hoy
	Categoria   string          `json:"categoria"`
	Notas       string          `json:"notas"`
	Comprobante string          `json:"comprobante"`
	Recurrente  bool            `json:"recurrente"`
	Frecuencia  string          `json:"frecuencia"` // mensual, trimestral, anual, unico
}

// UpdateGastoRequest edición parcial de gasto.
type UpdateGastoRequest struct {
	Concepto    *string          `json:"concepto"`
	Monto       *decimal.Decimal `json:"monto"`
	Fecha       *string          `json:"fecha"`
	Categoria   *string          `json:"categoria"`
	Notas       *string          `json:"notas"`
	Comprobante *string          `json:"comprobante"`
	Recurrente  *bool            `json:"recurrente"`
	Frecuencia  *string          `json:"frecuencia"`
}

// GastoResponse representación de un gasto en respuestas.
type GastoResponse struct {
	ID          string          `json:"id"`
	Concepto    string          `json:"concepto"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
	Categoria   string          `json:"categoria"`
	Notas       string          `json:"notas,omitempty"`
	Comprobante string          `json:"comprobante,omitempty"`
	Recurrente  bool            `json:"recurrente"`
	Frecuencia  string          `json:"frecuencia,omitempty"`
	Estado      string          `json:"estado"`
}

// GastoListResponse listado paginado de gastos.
type GastoListResponse struct {
	Items []GastoResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
