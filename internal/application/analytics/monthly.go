package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

// mesesAbreviados etiquetas de los 12 meses del gráfico anual.
var mesesAbreviados = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// AgruparVentasMensuales arma los 12 meses fijos del año con la facturación
// (redondeada a entero) y la cantidad de pedidos por mes. Cuentan todas las
// ventas del año sin importar estado ni estado de pago; los meses sin ventas
// quedan en cero.
func AgruparVentasMensuales(ventas []repository.VentaResumen) []dto.VentaMensualDTO {
	out := make([]dto.VentaMensualDTO, 12)
	for i := range out {
		out[i] = dto.VentaMensualDTO{Mes: mesesAbreviados[i]}
	}
	for _, v := range ventas {
		idx := int(v.Fecha.Month()) - 1
		out[idx].Ventas = out[idx].Ventas.Add(v.Total)
		out[idx].Pedidos++
	}
	for i := range out {
		out[i].Ventas = out[i].Ventas.Round(0)
	}
	return out
}

// MonthlySalesUseCase genera el gráfico de ventas por mes del año en curso.
type MonthlySalesUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewMonthlySalesUseCase construye el caso de uso.
func NewMonthlySalesUseCase(analyticsRepo repository.AnalyticsRepository) *MonthlySalesUseCase {
	return &MonthlySalesUseCase{analyticsRepo: analyticsRepo}
}

// GetVentasMensuales trae todas las ventas del año calendario en curso y las
// agrupa en los 12 meses fijos.
func (uc *MonthlySalesUseCase) GetVentasMensuales(ctx context.Context, companyID string) ([]dto.VentaMensualDTO, error) {
	now := time.Now()
	desde := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	hasta := time.Date(now.Year(), time.December, 31, 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())

	ventas, err := uc.analyticsRepo.GetVentasEnRango(ctx, companyID, desde, hasta, nil)
	if err != nil {
		return nil, fmt.Errorf("ventas mensuales: %w", err)
	}
	return AgruparVentasMensuales(ventas), nil
}
