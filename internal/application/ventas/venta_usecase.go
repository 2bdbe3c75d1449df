package ventas

import (
	"context"
	"time"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

// VentaUseCase ciclo de vida de la venta posterior a su registro: consulta,
// cambios de estado y de estado de pago, borrado.
type VentaUseCase struct {
	ventaRepo repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(ventaRepo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{ventaRepo: ventaRepo}
}

// GetVenta devuelve la venta con sus líneas.
func (uc *VentaUseCase) GetVenta(ctx context.Context, companyID, id string) (*dto.VentaResponse, error) {
	v, err := uc.cargarVenta(companyID, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.ventaRepo.GetItemsByVentaID(v.ID)
	if err != nil {
		return nil, err
	}
	resp := toResponse(v)
	for _, item := range items {
		resp.Items = append(resp.Items, itemToResponse(item))
	}
	return resp, nil
}

// ListVentas lista las ventas de la empresa, más recientes primero.
func (uc *VentaUseCase) ListVentas(ctx context.Context, companyID string, page dto.PageRequest) (*dto.VentaListResponse, error) {
	page.DefaultPage()
	ventasList, err := uc.ventaRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventasList))
	for _, v := range ventasList {
		items = append(items, *toResponse(v))
	}
	return &dto.VentaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListVentasPorRango lista las ventas con fecha dentro de [desde, hasta],
// más recientes primero.
func (uc *VentaUseCase) ListVentasPorRango(ctx context.Context, companyID string, desde, hasta time.Time) (*dto.VentaListResponse, error) {
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	ventasList, err := uc.ventaRepo.ListByRango(companyID, desde, hasta)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventasList))
	for _, v := range ventasList {
		items = append(items, *toResponse(v))
	}
	return &dto.VentaListResponse{Items: items}, nil
}

// ListVentasEnCurso pedidos pendientes/en preparación/listos, más recientes
// primero (widget del dashboard).
func (uc *VentaUseCase) ListVentasEnCurso(ctx context.Context, companyID string, limit int) ([]dto.VentaPendienteDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	ventasList, err := uc.ventaRepo.ListEnCurso(companyID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaPendienteDTO, 0, len(ventasList))
	for _, v := range ventasList {
		out = append(out, dto.VentaPendienteDTO{
			ID:            v.ID,
			ClienteNombre: v.ClienteNombre,
			Fecha:         v.Fecha.Format("2006-01-02"),
			Total:         v.Total,
			Estado:        string(v.Estado),
			EstadoPago:    v.EstadoPago,
		})
	}
	return out, nil
}

// CambiarEstado aplica una transición de estado validada contra la tabla.
// Marcar una venta como entregada la consolida de inmediato como completada,
// así sale de los listados de pedidos en curso.
func (uc *VentaUseCase) CambiarEstado(ctx context.Context, companyID, id string, nuevoEstado string) (*dto.VentaResponse, error) {
	destino := venta.Estado(nuevoEstado)
	if !destino.EsValido() {
		return nil, domain.ErrInvalidInput
	}

	v, err := uc.cargarVenta(companyID, id)
	if err != nil {
		return nil, err
	}
	if !venta.PuedeTransicionar(v.Estado, destino) {
		return nil, domain.ErrConflict
	}

	if err := uc.ventaRepo.UpdateEstado(id, destino); err != nil {
		return nil, err
	}
	if destino == venta.EstadoEntregado {
		destino = venta.EstadoCompletada
		if err := uc.ventaRepo.UpdateEstado(id, destino); err != nil {
			return nil, err
		}
	}

	v.Estado = destino
	return toResponse(v), nil
}

// CambiarEstadoPago marca la venta como pagada o pendiente de pago.
func (uc *VentaUseCase) CambiarEstadoPago(ctx context.Context, companyID, id string, estadoPago string) (*dto.VentaResponse, error) {
	if estadoPago != venta.PagoPagado && estadoPago != venta.PagoPendiente {
		return nil, domain.ErrInvalidInput
	}

	v, err := uc.cargarVenta(companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.ventaRepo.UpdateEstadoPago(id, estadoPago); err != nil {
		return nil, err
	}
	v.EstadoPago = estadoPago
	return toResponse(v), nil
}

// DeleteVenta borra la venta y sus líneas. Acción destructiva de admin; no
// repone stock ni ajusta el acumulado del cliente.
func (uc *VentaUseCase) DeleteVenta(ctx context.Context, companyID, id string) error {
	if _, err := uc.cargarVenta(companyID, id); err != nil {
		return err
	}
	return uc.ventaRepo.Delete(id)
}

func (uc *VentaUseCase) cargarVenta(companyID, id string) (*entity.Venta, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if v.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return v, nil
}

func toResponse(v *entity.Venta) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:            v.ID,
		ClienteID:     v.ClienteID,
		ClienteNombre: v.ClienteNombre,
		Fecha:         v.Fecha.Format("2006-01-02"),
		Total:         v.Total,
		Estado:        string(v.Estado),
		EstadoPago:    v.EstadoPago,
		Moneda:        v.Moneda,
	}
}
