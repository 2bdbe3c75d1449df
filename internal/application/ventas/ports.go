package ventas

import (
	"context"

	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

// ReciboPDFGenerator genera el comprobante imprimible de una venta.
type ReciboPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, v *entity.Venta, items []*entity.VentaItem, empresa *entity.Empresa) ([]byte, error)
}

// TxRunner ejecuta una función dentro de una transacción con los repos de
// venta, producto y cliente atados a la misma tx. Si fn retorna error se hace
// rollback de todo lo escrito.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		clienteRepo repository.ClienteRepository,
	) error) error
}
