package ventas

import (
	"context"
	"fmt"

	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

// ReciboUseCase genera el comprobante PDF de una venta.
type ReciboUseCase struct {
	ventaRepo   repository.VentaRepository
	empresaRepo repository.EmpresaRepository
	generator   ReciboPDFGenerator
}

// NewReciboUseCase construye el caso de uso.
func NewReciboUseCase(
	ventaRepo repository.VentaRepository,
	empresaRepo repository.EmpresaRepository,
	generator ReciboPDFGenerator,
) *ReciboUseCase {
	return &ReciboUseCase{ventaRepo: ventaRepo, empresaRepo: empresaRepo, generator: generator}
}

// GenerarRecibo arma el PDF del comprobante de la venta con sus líneas.
func (uc *ReciboUseCase) GenerarRecibo(ctx context.Context, companyID, id string) ([]byte, error) {
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
	items, err := uc.ventaRepo.GetItemsByVentaID(v.ID)
	if err != nil {
		return nil, err
	}
	// La empresa puede faltar en entornos recién sembrados; el generador usa
	// un nombre por defecto.
	empresa, err := uc.empresaRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, v, items, empresa)
	if err != nil {
		return nil, fmt.Errorf("generar recibo: %w", err)
	}
	return pdf, nil
}
