package repository

import (
	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	// ListByCompany lista clientes de la empresa; estado vacío = todos.
	ListByCompany(companyID, estado string, limit, offset int) ([]*entity.Cliente, error)
	// IncrementarTotalCompras suma monto al acumulado del cliente.
	// Lo usa exclusivamente el registro de ventas, dentro de su transacción.
	IncrementarTotalCompras(clienteID string, monto decimal.Decimal) error
}
