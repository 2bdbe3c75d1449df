package dto

// AjustesResponse preferencias del usuario autenticado.
type AjustesResponse struct {
	Moneda      string `json:"moneda"`
	ZonaHoraria string `json:"zona_horaria,omitempty"`
}

// UpdateAjustesRequest guarda preferencias; los campos vacíos no se tocan.
type UpdateAjustesRequest struct {
	Moneda      string `json:"moneda"`
	ZonaHoraria string `json:"zona_horaria"`
}
