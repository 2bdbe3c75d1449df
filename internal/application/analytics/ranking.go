package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

const topRankingSize = 5

// Paletas de los gráficos de torta del dashboard. El sexto color del top es
// el del segmento "Otros".
var (
	coloresTop    = [6]string{"#06b6d4", "#f472b6", "#facc15", "#a78bfa", "#34d399", "#f87171"}
	coloresBottom = [5]string{"#EF4444", "#F97316", "#F59E0B", "#A3E635", "#10B981"}
)

type acumuladoProducto struct {
	id       string
	nombre   string
	cantidad decimal.Decimal
}

// RankearMasVendidos agrupa las líneas de venta por producto, ordena por
// cantidad descendente y devuelve el top 5; la cola se agrupa en un segmento
// sintético "Otros" si existe. Los porcentajes son enteros sobre el total
// vendido. El desempate por id mantiene el orden estable entre corridas.
func RankearMasVendidos(items []repository.ItemVendido) []dto.ProductoRankingDTO {
	acumulados := acumularPorProducto(items)
	if len(acumulados) == 0 {
		return []dto.ProductoRankingDTO{}
	}

	sort.Slice(acumulados, func(i, j int) bool {
		if !acumulados[i].cantidad.Equal(acumulados[j].cantidad) {
			return acumulados[i].cantidad.GreaterThan(acumulados[j].cantidad)
		}
		return acumulados[i].id < acumulados[j].id
	})

	total := decimal.Zero
	for _, a := range acumulados {
		total = total.Add(a.cantidad)
	}

	corte := topRankingSize
	if corte > len(acumulados) {
		corte = len(acumulados)
	}

	out := make([]dto.ProductoRankingDTO, 0, corte+1)
	for i, a := range acumulados[:corte] {
		out = append(out, dto.ProductoRankingDTO{
			ID:              a.id,
			Nombre:          a.nombre,
			CantidadVendida: a.cantidad,
			Porcentaje:      porcentajeEntero(a.cantidad, total),
			Color:           coloresTop[i],
		})
	}

	if len(acumulados) > corte {
		otros := decimal.Zero
		for _, a := range acumulados[corte:] {
			otros = otros.Add(a.cantidad)
		}
		out = append(out, dto.ProductoRankingDTO{
			ID:              "others",
			Nombre:          "Otros",
			CantidadVendida: otros,
			Porcentaje:      porcentajeEntero(otros, total),
			Color:           coloresTop[5],
		})
	}
	return out
}

// RankearMenosVendidos parte del catálogo activo inicializado en cero, suma
// lo vendido y devuelve los 5 con menos salida. Así los productos nunca
// vendidos aparecen primeros. El porcentaje es contra el total vendido del
// catálogo (0 si nunca se vendió nada).
func RankearMenosVendidos(productos []repository.ProductoCatalogo, items []repository.ItemVendido) []dto.ProductoRankingDTO {
	porProducto := make(map[string]*acumuladoProducto, len(productos))
	acumulados := make([]*acumuladoProducto, 0, len(productos))
	for _, p := range productos {
		a := &acumuladoProducto{id: p.ID, nombre: p.Nombre, cantidad: decimal.Zero}
		porProducto[p.ID] = a
		acumulados = append(acumulados, a)
	}

	total := decimal.Zero
	for _, item := range items {
		a, ok := porProducto[item.ProductoID]
		if !ok {
			continue
		}
		a.cantidad = a.cantidad.Add(item.Cantidad)
		total = total.Add(item.Cantidad)
	}

	sort.Slice(acumulados, func(i, j int) bool {
		if !acumulados[i].cantidad.Equal(acumulados[j].cantidad) {
			return acumulados[i].cantidad.LessThan(acumulados[j].cantidad)
		}
		return acumulados[i].id < acumulados[j].id
	})

	corte := topRankingSize
	if corte > len(acumulados) {
		corte = len(acumulados)
	}

	out := make([]dto.ProductoRankingDTO, 0, corte)
	for i, a := range acumulados[:corte] {
		out = append(out, dto.ProductoRankingDTO{
			ID:              a.id,
			Nombre:          a.nombre,
			CantidadVendida: a.cantidad,
			Porcentaje:      porcentajeEntero(a.cantidad, total),
			Color:           coloresBottom[i],
		})
	}
	return out
}

// acumularPorProducto suma cantidades por producto. Las líneas sin producto
// (borrado antes de existir la desactivación) se agrupan bajo "sin-id" con el
// nombre desnormalizado de la primera aparición.
func acumularPorProducto(items []repository.ItemVendido) []*acumuladoProducto {
	porProducto := make(map[string]*acumuladoProducto)
	orden := make([]*acumuladoProducto, 0)
	for _, item := range items {
		id := item.ProductoID
		if id == "" {
			id = "sin-id"
		}
		a, ok := porProducto[id]
		if !ok {
			a = &acumuladoProducto{id: id, nombre: item.ProductoNombre, cantidad: decimal.Zero}
			porProducto[id] = a
			orden = append(orden, a)
		}
		a.cantidad = a.cantidad.Add(item.Cantidad)
	}
	return orden
}

func porcentajeEntero(parte, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(parte.Div(total).Mul(cien).Round(0).IntPart())
}

// RankingUseCase rankings de productos más y menos vendidos.
type RankingUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewRankingUseCase construye el caso de uso.
func NewRankingUseCase(analyticsRepo repository.AnalyticsRepository) *RankingUseCase {
	return &RankingUseCase{analyticsRepo: analyticsRepo}
}

// GetMasVendidos top 5 productos por cantidad vendida más el segmento Otros.
func (uc *RankingUseCase) GetMasVendidos(ctx context.Context, companyID string) ([]dto.ProductoRankingDTO, error) {
	items, err := uc.analyticsRepo.GetItemsVendidos(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("ranking más vendidos: %w", err)
	}
	return RankearMasVendidos(items), nil
}

// GetMenosVendidos 5 productos activos con menos salida.
func (uc *RankingUseCase) GetMenosVendidos(ctx context.Context, companyID string) ([]dto.ProductoRankingDTO, error) {
	type itemsResult struct {
		items []repository.ItemVendido
		err   error
	}
	type productosResult struct {
		productos []repository.ProductoCatalogo
		err       error
	}

	itemsCh := make(chan itemsResult, 1)
	productosCh := make(chan productosResult, 1)

	go func() {
		items, err := uc.analyticsRepo.GetItemsVendidos(ctx, companyID)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		productos, err := uc.analyticsRepo.GetProductosActivos(ctx, companyID)
		productosCh <- productosResult{productos, err}
	}()

	items := <-itemsCh
	productos := <-productosCh

	if items.err != nil {
		return nil, fmt.Errorf("ranking menos vendidos: items: %w", items.err)
	}
	if productos.err != nil {
		return nil, fmt.Errorf("ranking menos vendidos: productos: %w", productos.err)
	}
	return RankearMenosVendidos(productos.productos, items.items), nil
}
