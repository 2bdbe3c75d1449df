// Package ventas registra ventas con sus líneas, descuento de stock y
// acumulado del cliente en una sola transacción, y maneja el ciclo de vida
// posterior del pedido.
package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/application/pricing"
	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
	"github.com/wcoders/ventas-api/internal/domain/unidad"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

// MonedaPorDefecto se usa cuando la venta no trae moneda y el usuario no
// guardó preferencia.
const MonedaPorDefecto = "UYU"

// CreateVentaUseCase compone y persiste una venta completa.
type CreateVentaUseCase struct {
	txRunner     TxRunner
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	ajustesRepo  repository.AjustesRepository
}

// NewCreateVentaUseCase construye el caso de uso.
func NewCreateVentaUseCase(
	txRunner TxRunner,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	ajustesRepo repository.AjustesRepository,
) *CreateVentaUseCase {
	return &CreateVentaUseCase{
		txRunner:     txRunner,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		ajustesRepo:  ajustesRepo,
	}
}

// lineaVenta línea ya resuelta: cantidad convertida a unidades base y
// subtotal cerrado.
type lineaVenta struct {
	item         *entity.VentaItem
	cantidadBase decimal.Decimal
}

// CreateVenta valida las líneas, resuelve precios y persiste venta, items,
// descuento de stock y acumulado del cliente en una transacción.
//
// El chequeo previo de stock corta temprano con un error descriptivo, pero la
// señal autoritativa es el descuento condicional dentro de la tx: si dos
// ventas concurrentes pasan el chequeo, la segunda falla igual al descontar.
// Con ConfirmarSinStock el descuento se fuerza con piso en cero.
func (uc *CreateVentaUseCase) CreateVenta(ctx context.Context, companyID, userID string, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if in.ClienteID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	estado := venta.Estado(in.Estado)
	if in.Estado == "" {
		estado = venta.EstadoPendiente
	}
	if !estado.EsValido() {
		return nil, domain.ErrInvalidInput
	}
	estadoPago := in.EstadoPago
	if estadoPago == "" {
		estadoPago = venta.PagoPendiente
	}
	if estadoPago != venta.PagoPagado && estadoPago != venta.PagoPendiente {
		return nil, domain.ErrInvalidInput
	}

	fecha := time.Now()
	if in.Fecha != "" {
		fecha, err = time.Parse("2006-01-02", in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	moneda, err := uc.resolverMoneda(companyID, userID, in.Moneda)
	if err != nil {
		return nil, err
	}

	ventaID := uuid.New().String()
	lineas := make([]lineaVenta, 0, len(in.Items))
	total := decimal.Zero

	for i := range in.Items {
		linea, err := uc.resolverLinea(ventaID, companyID, &in.Items[i], in.ConfirmarSinStock)
		if err != nil {
			return nil, err
		}
		lineas = append(lineas, linea)
		total = total.Add(linea.item.Subtotal)
	}
	total = total.Round(2)

	now := time.Now()
	nuevaVenta := &entity.Venta{
		ID:         ventaID,
		CompanyID:  companyID,
		ClienteID:  cliente.ID,
		Fecha:      fecha,
		Total:      total,
		Estado:     estado,
		EstadoPago: estadoPago,
		Moneda:     moneda,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.RunVenta(ctx, func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		clienteRepo repository.ClienteRepository,
	) error {
		if err := ventaRepo.Create(nuevaVenta); err != nil {
			return err
		}
		for _, linea := range lineas {
			if err := ventaRepo.CreateItem(linea.item); err != nil {
				return err
			}
		}
		for _, linea := range lineas {
			if in.ConfirmarSinStock {
				if err := productoRepo.DescontarStockForzado(linea.item.ProductoID, linea.cantidadBase); err != nil {
					return err
				}
				continue
			}
			ok, err := productoRepo.DescontarStock(linea.item.ProductoID, linea.cantidadBase)
			if err != nil {
				return err
			}
			if !ok {
				// Otra venta ganó la carrera entre el chequeo y el descuento.
				producto, err := productoRepo.GetByID(linea.item.ProductoID)
				disponible := decimal.Zero
				if err == nil && producto != nil {
					disponible = producto.Stock
				}
				return &StockInsuficienteError{
					ProductoID:     linea.item.ProductoID,
					ProductoNombre: linea.item.ProductoNombre,
					Disponible:     disponible,
					Solicitado:     linea.cantidadBase,
				}
			}
		}
		return clienteRepo.IncrementarTotalCompras(cliente.ID, total)
	})
	if err != nil {
		return nil, err
	}

	resp := toResponse(nuevaVenta)
	resp.ClienteNombre = cliente.Nombre
	for _, linea := range lineas {
		resp.Items = append(resp.Items, itemToResponse(linea.item))
	}
	return resp, nil
}

// resolverLinea valida la línea, convierte la cantidad a unidades base,
// resuelve precio y subtotal y hace el chequeo temprano de stock.
func (uc *CreateVentaUseCase) resolverLinea(ventaID, companyID string, item *dto.CreateVentaItemRequest, confirmarSinStock bool) (lineaVenta, error) {
	if item.ProductoID == "" || !item.Cantidad.GreaterThan(decimal.Zero) {
		return lineaVenta{}, domain.ErrInvalidInput
	}

	producto, err := uc.productoRepo.GetByID(item.ProductoID)
	if err != nil {
		return lineaVenta{}, err
	}
	if producto == nil {
		return lineaVenta{}, domain.ErrNotFound
	}
	if producto.CompanyID != companyID {
		return lineaVenta{}, domain.ErrForbidden
	}

	tipo := unidad.TipoUnidad(item.TipoUnidad)
	if item.TipoUnidad == "" {
		tipo = unidad.Unidad
	}
	cantidadBase, err := unidad.EnUnidadesBase(item.Cantidad, tipo)
	if err != nil {
		return lineaVenta{}, err
	}

	var precioUnitario, subtotal decimal.Decimal
	switch {
	case item.Subtotal != nil && item.Subtotal.GreaterThan(decimal.Zero):
		// Subtotal editado a mano: manda sobre cualquier cálculo.
		subtotal = *item.Subtotal
		if item.PrecioUnitario != nil {
			precioUnitario = *item.PrecioUnitario
		} else {
			precioUnitario, err = pricing.ResolverPrecio(producto, tipo)
			if err != nil {
				return lineaVenta{}, err
			}
		}
	case item.PrecioUnitario != nil:
		// Precio pisado por el operador: se aplica por unidad base.
		precioUnitario = *item.PrecioUnitario
		subtotal = precioUnitario.Mul(cantidadBase)
	default:
		precioUnitario, err = pricing.ResolverPrecio(producto, tipo)
		if err != nil {
			return lineaVenta{}, err
		}
		subtotal = precioUnitario.Mul(item.Cantidad)
	}
	subtotal = subtotal.Round(2)

	if !confirmarSinStock && cantidadBase.GreaterThan(producto.Stock) {
		return lineaVenta{}, &StockInsuficienteError{
			ProductoID:     producto.ID,
			ProductoNombre: producto.Nombre,
			Disponible:     producto.Stock,
			Solicitado:     cantidadBase,
		}
	}

	return lineaVenta{
		item: &entity.VentaItem{
			ID:             uuid.New().String(),
			VentaID:        ventaID,
			ProductoID:     producto.ID,
			ProductoNombre: producto.Nombre,
			Cantidad:       cantidadBase,
			PrecioUnitario: precioUnitario,
			Subtotal:       subtotal,
			TipoUnidad:     tipo,
		},
		cantidadBase: cantidadBase,
	}, nil
}

// resolverMoneda usa la moneda de la venta, después la preferencia guardada
// del usuario y por último el fallback.
func (uc *CreateVentaUseCase) resolverMoneda(companyID, userID, moneda string) (string, error) {
	if moneda != "" {
		return moneda, nil
	}
	ajustes, err := uc.ajustesRepo.GetByUsuario(companyID, userID)
	if err != nil {
		return "", err
	}
	if ajustes != nil && ajustes.Moneda != "" {
		return ajustes.Moneda, nil
	}
	return MonedaPorDefecto, nil
}

func itemToResponse(item *entity.VentaItem) dto.VentaItemResponse {
	return dto.VentaItemResponse{
		ID:             item.ID,
		ProductoID:     item.ProductoID,
		ProductoNombre: item.ProductoNombre,
		Cantidad:       item.Cantidad,
		PrecioUnitario: item.PrecioUnitario,
		Subtotal:       item.Subtotal,
		TipoUnidad:     string(item.TipoUnidad),
	}
}
