package dto

// CreateEmpresaRequest alta de una empresa (tenant).
type CreateEmpresaRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	SitioWeb  string `json:"sitio_web"`
}

// EmpresaResponse empresa en respuestas.
type EmpresaResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	SitioWeb  string `json:"sitio_web,omitempty"`
	Estado    string `json:"estado"`
}
