package analytics

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcoders/ventas-api/internal/domain/repository"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

const testCompanyID = "empresa-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fake de AnalyticsRepository que registra los rangos de fecha recibidos
// ──────────────────────────────────────────────────────────────────────────────

type rangoConsulta struct {
	desde, hasta time.Time
	estados      []venta.Estado
}

type fakeAnalyticsRepo struct {
	mu      sync.Mutex
	rangos  map[string][]rangoConsulta
	fallaEn string // nombre del método que debe devolver error
}

var errConsulta = errors.New("consulta fallida")

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{rangos: make(map[string][]rangoConsulta)}
}

func (r *fakeAnalyticsRepo) registrar(metodo string, desde, hasta time.Time, estados []venta.Estado) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rangos[metodo] = append(r.rangos[metodo], rangoConsulta{desde, hasta, estados})
	if r.fallaEn == metodo {
		return errConsulta
	}
	return nil
}

// rangosDe devuelve los rangos registrados para un método, ordenados por
// fecha de inicio ascendente.
func (r *fakeAnalyticsRepo) rangosDe(metodo string) []rangoConsulta {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]rangoConsulta(nil), r.rangos[metodo]...)
	sort.Slice(out, func(i, j int) bool { return out[i].desde.Before(out[j].desde) })
	return out
}

func (r *fakeAnalyticsRepo) GetVentasEnRango(ctx context.Context, companyID string, desde, hasta time.Time, estados []venta.Estado) ([]repository.VentaResumen, error) {
	if err := r.registrar("GetVentasEnRango", desde, hasta, estados); err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *fakeAnalyticsRepo) GetVentasPendientesPago(ctx context.Context, companyID string, desde, hasta time.Time) ([]repository.VentaResumen, error) {
	if err := r.registrar("GetVentasPendientesPago", desde, hasta, nil); err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *fakeAnalyticsRepo) CountClientesNuevos(ctx context.Context, companyID string, desde, hasta time.Time) (int, error) {
	if err := r.registrar("CountClientesNuevos", desde, hasta, nil); err != nil {
		return 0, err
	}
	return 0, nil
}

func (r *fakeAnalyticsRepo) GetGastosActivos(ctx context.Context, companyID string, desde, hasta time.Time) ([]repository.GastoResumen, error) {
	if err := r.registrar("GetGastosActivos", desde, hasta, nil); err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *fakeAnalyticsRepo) GetItemsVendidos(ctx context.Context, companyID string) ([]repository.ItemVendido, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) GetProductosActivos(ctx context.Context, companyID string) ([]repository.ProductoCatalogo, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) GetDeudores(ctx context.Context, companyID string, limit int) ([]repository.DeudorResumen, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventanas de fecha del dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_VentanasDeMesCalendario(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	uc := NewDashboardUseCase(repo)

	_, err := uc.GetStats(context.Background(), testCompanyID)
	require.NoError(t, err)

	rangos := repo.rangosDe("GetVentasEnRango")
	require.Len(t, rangos, 2, "debe consultar mes actual y mes anterior")
	anterior, actual := rangos[0], rangos[1]

	// Mes actual: arranca en el primer instante del día 1 y termina un
	// nanosegundo antes del mes siguiente.
	assert.Equal(t, 1, actual.desde.Day())
	assert.Zero(t, actual.desde.Hour())
	assert.Zero(t, actual.desde.Minute())
	assert.Zero(t, actual.desde.Second())
	assert.Zero(t, actual.desde.Nanosecond())
	assert.True(t, actual.hasta.Equal(actual.desde.AddDate(0, 1, 0).Add(-time.Nanosecond)),
		"fin del mes actual: esperaba %s, obtuve %s",
		actual.desde.AddDate(0, 1, 0).Add(-time.Nanosecond), actual.hasta)

	// Mes anterior: el mismo mes corrido hacia atrás, pegado al actual sin
	// solaparse.
	assert.True(t, anterior.desde.Equal(actual.desde.AddDate(0, -1, 0)))
	assert.True(t, anterior.hasta.Equal(actual.desde.Add(-time.Nanosecond)))

	// Las ventas se filtran por estados activos; el resto de las series
	// recibe exactamente las mismas dos ventanas.
	assert.ElementsMatch(t, venta.EstadosActivos(), actual.estados)
	assert.ElementsMatch(t, venta.EstadosActivos(), anterior.estados)

	for _, metodo := range []string{"GetVentasPendientesPago", "CountClientesNuevos", "GetGastosActivos"} {
		otros := repo.rangosDe(metodo)
		require.Len(t, otros, 2, metodo)
		assert.True(t, otros[0].desde.Equal(anterior.desde), metodo)
		assert.True(t, otros[0].hasta.Equal(anterior.hasta), metodo)
		assert.True(t, otros[1].desde.Equal(actual.desde), metodo)
		assert.True(t, otros[1].hasta.Equal(actual.hasta), metodo)
	}
}

func TestGetStats_CortaAnteElPrimerError(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	repo.fallaEn = "CountClientesNuevos"
	uc := NewDashboardUseCase(repo)

	_, err := uc.GetStats(context.Background(), testCompanyID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errConsulta)
	assert.Contains(t, err.Error(), "clientes nuevos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana anual del gráfico mensual
// ──────────────────────────────────────────────────────────────────────────────

func TestGetVentasMensuales_VentanaDeAnioCalendario(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	uc := NewMonthlySalesUseCase(repo)

	out, err := uc.GetVentasMensuales(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Len(t, out, 12)

	rangos := repo.rangosDe("GetVentasEnRango")
	require.Len(t, rangos, 1)

	now := time.Now()
	desde := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	hasta := time.Date(now.Year(), time.December, 31, 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())

	assert.True(t, rangos[0].desde.Equal(desde), "esperaba %s, obtuve %s", desde, rangos[0].desde)
	assert.True(t, rangos[0].hasta.Equal(hasta), "esperaba %s, obtuve %s", hasta, rangos[0].hasta)
	assert.Nil(t, rangos[0].estados, "el gráfico anual no filtra por estado")
}
