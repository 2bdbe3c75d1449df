package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain/repository"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

const topDeudores = 5

// DashboardUseCase arma los KPIs del dashboard comparando el mes en curso
// contra el anterior.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). El cálculo en
// sí es CalcularStats; acá solo se resuelven las ventanas de fecha y se
// paralelizan las consultas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats calcula los KPIs de la empresa. Las dos ventanas se cargan en
// goroutines separadas; el primer error aborta todo el cálculo.
func (uc *DashboardUseCase) GetStats(ctx context.Context, companyID string) (*dto.DashboardStatsDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 00:00 – último día 23:59:59.999999999. Mes
	// anterior: idem corrido un mes.
	inicioActual := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	finActual := inicioActual.AddDate(0, 1, 0).Add(-time.Nanosecond)
	inicioAnterior := inicioActual.AddDate(0, -1, 0)
	finAnterior := inicioActual.Add(-time.Nanosecond)

	type ventanaResult struct {
		ventana VentanaDatos
		err     error
	}

	actualCh := make(chan ventanaResult, 1)
	anteriorCh := make(chan ventanaResult, 1)

	go func() {
		ventana, err := uc.cargarVentana(ctx, companyID, inicioActual, finActual)
		actualCh <- ventanaResult{ventana, err}
	}()
	go func() {
		ventana, err := uc.cargarVentana(ctx, companyID, inicioAnterior, finAnterior)
		anteriorCh <- ventanaResult{ventana, err}
	}()

	actual := <-actualCh
	anterior := <-anteriorCh

	if actual.err != nil {
		return nil, fmt.Errorf("dashboard: mes actual: %w", actual.err)
	}
	if anterior.err != nil {
		return nil, fmt.Errorf("dashboard: mes anterior: %w", anterior.err)
	}

	stats := CalcularStats(actual.ventana, anterior.ventana)
	return &stats, nil
}

// cargarVentana trae las cuatro series de un mes calendario.
func (uc *DashboardUseCase) cargarVentana(ctx context.Context, companyID string, desde, hasta time.Time) (VentanaDatos, error) {
	ventas, err := uc.analyticsRepo.GetVentasEnRango(ctx, companyID, desde, hasta, venta.EstadosActivos())
	if err != nil {
		return VentanaDatos{}, fmt.Errorf("ventas: %w", err)
	}
	pendientes, err := uc.analyticsRepo.GetVentasPendientesPago(ctx, companyID, desde, hasta)
	if err != nil {
		return VentanaDatos{}, fmt.Errorf("pendientes de pago: %w", err)
	}
	clientesNuevos, err := uc.analyticsRepo.CountClientesNuevos(ctx, companyID, desde, hasta)
	if err != nil {
		return VentanaDatos{}, fmt.Errorf("clientes nuevos: %w", err)
	}
	gastos, err := uc.analyticsRepo.GetGastosActivos(ctx, companyID, desde, hasta)
	if err != nil {
		return VentanaDatos{}, fmt.Errorf("gastos: %w", err)
	}

	return VentanaDatos{
		Ventas:         ventas,
		PendientesPago: pendientes,
		ClientesNuevos: clientesNuevos,
		Gastos:         gastos,
	}, nil
}

// GetDeudores clientes con ventas impagas, deuda descendente.
func (uc *DashboardUseCase) GetDeudores(ctx context.Context, companyID string, limit int) ([]dto.DeudorDTO, error) {
	if limit <= 0 {
		limit = topDeudores
	}
	deudores, err := uc.analyticsRepo.GetDeudores(ctx, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("deudores: %w", err)
	}
	out := make([]dto.DeudorDTO, 0, len(deudores))
	for _, d := range deudores {
		out = append(out, dto.DeudorDTO{
			ClienteID:     d.ClienteID,
			ClienteNombre: d.ClienteNombre,
			Deuda:         d.Deuda,
			Ventas:        d.Ventas,
		})
	}
	return out, nil
}
