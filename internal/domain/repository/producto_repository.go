package repository

import (
	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para productos.
//
// El descuento de stock se hace en el storage con una sola sentencia
// condicional: el rechazo del descuento es la señal autoritativa de stock
// insuficiente (no hay ventana entre chequeo y descuento).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	// Desactivar marca el producto como inactivo (nunca se borra un producto
	// referenciado por ventas).
	Desactivar(id string) error
	// ListByCompany lista productos de la empresa; estado vacío = todos.
	ListByCompany(companyID, estado string, limit, offset int) ([]*entity.Producto, error)
	// ListBajoStock productos activos con stock menor al umbral, ascendente.
	ListBajoStock(companyID string, umbral decimal.Decimal, limit int) ([]*entity.Producto, error)
	// DescontarStock descuenta cantidad (unidades base) solo si stock ≥ cantidad.
	// Devuelve false si el stock no alcanza; en ese caso no modifica nada.
	DescontarStock(id string, cantidad decimal.Decimal) (bool, error)
	// DescontarStockForzado descuenta cantidad con piso en 0 (venta confirmada
	// por el operador pese al faltante).
	DescontarStockForzado(id string, cantidad decimal.Decimal) error
}
