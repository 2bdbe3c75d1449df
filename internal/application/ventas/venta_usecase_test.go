package ventas

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

func nuevaVentaGuardada(estado venta.Estado) (*VentaUseCase, *fakeVentaRepo) {
	ventaRepo := newFakeVentaRepo(&entity.Venta{
		ID:         "venta-1",
		CompanyID:  testCompanyID,
		ClienteID:  "cliente-1",
		Fecha:      time.Now(),
		Total:      dec("450"),
		Estado:     estado,
		EstadoPago: venta.PagoPendiente,
		Moneda:     "UYU",
	})
	return NewVentaUseCase(ventaRepo), ventaRepo
}

func TestCambiarEstado_FlujoNormal(t *testing.T) {
	uc, ventaRepo := nuevaVentaGuardada(venta.EstadoPendiente)

	resp, err := uc.CambiarEstado(context.Background(), testCompanyID, "venta-1", "preparacion")
	require.NoError(t, err)
	assert.Equal(t, "preparacion", resp.Estado)

	guardada, _ := ventaRepo.GetByID("venta-1")
	assert.Equal(t, venta.EstadoPreparacion, guardada.Estado)
}

func TestCambiarEstado_EntregadoConsolidaComoCompletada(t *testing.T) {
	uc, ventaRepo := nuevaVentaGuardada(venta.EstadoListo)

	resp, err := uc.CambiarEstado(context.Background(), testCompanyID, "venta-1", "entregado")
	require.NoError(t, err)
	assert.Equal(t, "completada", resp.Estado)

	guardada, _ := ventaRepo.GetByID("venta-1")
	assert.Equal(t, venta.EstadoCompletada, guardada.Estado)
}

func TestCambiarEstado_DesdeTerminalFalla(t *testing.T) {
	uc, ventaRepo := nuevaVentaGuardada(venta.EstadoCompletada)

	_, err := uc.CambiarEstado(context.Background(), testCompanyID, "venta-1", "pendiente")
	assert.ErrorIs(t, err, domain.ErrConflict)

	guardada, _ := ventaRepo.GetByID("venta-1")
	assert.Equal(t, venta.EstadoCompletada, guardada.Estado)
}

func TestCambiarEstado_EstadoDesconocidoFalla(t *testing.T) {
	uc, _ := nuevaVentaGuardada(venta.EstadoPendiente)

	_, err := uc.CambiarEstado(context.Background(), testCompanyID, "venta-1", "enviado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstado_VentaDeOtraEmpresa(t *testing.T) {
	uc, _ := nuevaVentaGuardada(venta.EstadoPendiente)

	_, err := uc.CambiarEstado(context.Background(), "otra-empresa", "venta-1", "preparacion")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCambiarEstadoPago_Pagado(t *testing.T) {
	uc, ventaRepo := nuevaVentaGuardada(venta.EstadoPendiente)

	resp, err := uc.CambiarEstadoPago(context.Background(), testCompanyID, "venta-1", "pagado")
	require.NoError(t, err)
	assert.Equal(t, "pagado", resp.EstadoPago)

	guardada, _ := ventaRepo.GetByID("venta-1")
	assert.Equal(t, venta.PagoPagado, guardada.EstadoPago)
}

func TestCambiarEstadoPago_ValorInvalido(t *testing.T) {
	uc, _ := nuevaVentaGuardada(venta.EstadoPendiente)

	_, err := uc.CambiarEstadoPago(context.Background(), testCompanyID, "venta-1", "debe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteVenta_BorraVentaYLineas(t *testing.T) {
	uc, ventaRepo := nuevaVentaGuardada(venta.EstadoCancelada)
	ventaRepo.items["venta-1"] = []*entity.VentaItem{{ID: "item-1", VentaID: "venta-1"}}

	err := uc.DeleteVenta(context.Background(), testCompanyID, "venta-1")
	require.NoError(t, err)

	assert.Empty(t, ventaRepo.ventas)
	assert.Empty(t, ventaRepo.items)
}

func TestDeleteVenta_NoExisteFalla(t *testing.T) {
	uc, _ := nuevaVentaGuardada(venta.EstadoPendiente)

	err := uc.DeleteVenta(context.Background(), testCompanyID, "venta-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetVenta_IncluyeLineas(t *testing.T) {
	uc, ventaRepo := nuevaVentaGuardada(venta.EstadoPendiente)
	ventaRepo.items["venta-1"] = []*entity.VentaItem{
		{ID: "item-1", VentaID: "venta-1", ProductoNombre: "Milanesa", Cantidad: dec("2"), Subtotal: dec("200")},
	}

	resp, err := uc.GetVenta(context.Background(), testCompanyID, "venta-1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Milanesa", resp.Items[0].ProductoNombre)
}

func TestListVentasPorRango_FiltraPorFecha(t *testing.T) {
	fecha := func(dia string) time.Time {
		f, err := time.Parse("2006-01-02", dia)
		require.NoError(t, err)
		return f
	}
	ventaRepo := newFakeVentaRepo(
		&entity.Venta{ID: "venta-enero", CompanyID: testCompanyID, Fecha: fecha("2026-01-15"), Total: dec("100"), Estado: venta.EstadoCompletada},
		&entity.Venta{ID: "venta-marzo", CompanyID: testCompanyID, Fecha: fecha("2026-03-10"), Total: dec("200"), Estado: venta.EstadoCompletada},
		&entity.Venta{ID: "venta-ajena", CompanyID: "otra-empresa", Fecha: fecha("2026-01-20"), Total: dec("300"), Estado: venta.EstadoCompletada},
	)
	uc := NewVentaUseCase(ventaRepo)

	resp, err := uc.ListVentasPorRango(context.Background(), testCompanyID, fecha("2026-01-01"), fecha("2026-01-31"))
	require.NoError(t, err)
	require.Len(t, resp.Items, 1, "solo la venta de enero de la empresa cae en el rango")
	assert.Equal(t, "venta-enero", resp.Items[0].ID)
}

func TestListVentasPorRango_RangoInvertidoFalla(t *testing.T) {
	uc := NewVentaUseCase(newFakeVentaRepo())

	_, err := uc.ListVentasPorRango(context.Background(), testCompanyID,
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
