package repository

import (
	"time"

	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

// VentaRepository puerto de persistencia para ventas y sus líneas.
type VentaRepository interface {
	Create(v *entity.Venta) error
	CreateItem(item *entity.VentaItem) error
	GetByID(id string) (*entity.Venta, error)
	GetItemsByVentaID(ventaID string) ([]*entity.VentaItem, error)
	// ListByCompany lista ventas de la empresa, más recientes primero.
	ListByCompany(companyID string, limit, offset int) ([]*entity.Venta, error)
	// ListEnCurso ventas con estado pendiente/preparacion/listo, más
	// recientes primero (widget de ventas pendientes).
	ListEnCurso(companyID string, limit int) ([]*entity.Venta, error)
	// ListByRango ventas con fecha dentro de [desde, hasta].
	ListByRango(companyID string, desde, hasta time.Time) ([]*entity.Venta, error)
	UpdateEstado(id string, estado venta.Estado) error
	UpdateEstadoPago(id string, estadoPago string) error
	// Delete elimina la venta y sus items (acción destructiva de admin).
	Delete(id string) error
}
