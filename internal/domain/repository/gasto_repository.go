package repository

import "github.com/wcoders/ventas-api/internal/domain/entity"

// GastoRepository puerto de persistencia para gastos.
type GastoRepository interface {
	Create(gasto *entity.Gasto) error
	GetByID(id string) (*entity.Gasto, error)
	Update(gasto *entity.Gasto) error
	// Anular marca el gasto como anulado; los gastos anulados quedan fuera
	// de toda agregación financiera.
	Anular(id string) error
	// ListByCompany lista gastos de la empresa; estado vacío = todos.
	ListByCompany(companyID, estado string, limit, offset int) ([]*entity.Gasto, error)
}
