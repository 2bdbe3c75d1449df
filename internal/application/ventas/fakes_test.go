package ventas

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
	"github.com/wcoders/ventas-api/internal/domain/venta"
)

// Fakes en memoria para los tests del paquete. Implementan solo lo que los
// casos de uso tocan; el resto devuelve vacío.

type fakeClienteRepo struct {
	clientes    map[string]*entity.Cliente
	incrementos map[string]decimal.Decimal
}

func newFakeClienteRepo(clientes ...*entity.Cliente) *fakeClienteRepo {
	repo := &fakeClienteRepo{
		clientes:    make(map[string]*entity.Cliente),
		incrementos: make(map[string]decimal.Decimal),
	}
	for _, c := range clientes {
		repo.clientes[c.ID] = c
	}
	return repo
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClienteRepo) ListByCompany(companyID, estado string, limit, offset int) ([]*entity.Cliente, error) {
	return nil, nil
}

func (r *fakeClienteRepo) IncrementarTotalCompras(clienteID string, monto decimal.Decimal) error {
	r.incrementos[clienteID] = r.incrementos[clienteID].Add(monto)
	if c, ok := r.clientes[clienteID]; ok {
		c.TotalCompras = c.TotalCompras.Add(monto)
	}
	return nil
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	repo := &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
	for _, p := range productos {
		repo.productos[p.ID] = p
	}
	return repo
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) Desactivar(id string) error {
	if p, ok := r.productos[id]; ok {
		p.Estado = entity.ProductoInactivo
	}
	return nil
}

func (r *fakeProductoRepo) ListByCompany(companyID, estado string, limit, offset int) ([]*entity.Producto, error) {
	return nil, nil
}

func (r *fakeProductoRepo) ListBajoStock(companyID string, umbral decimal.Decimal, limit int) ([]*entity.Producto, error) {
	return nil, nil
}

func (r *fakeProductoRepo) DescontarStock(id string, cantidad decimal.Decimal) (bool, error) {
	p, ok := r.productos[id]
	if !ok || p.Stock.LessThan(cantidad) {
		return false, nil
	}
	p.Stock = p.Stock.Sub(cantidad)
	return true, nil
}

func (r *fakeProductoRepo) DescontarStockForzado(id string, cantidad decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return nil
	}
	p.Stock = p.Stock.Sub(cantidad)
	if p.Stock.IsNegative() {
		p.Stock = decimal.Zero
	}
	return nil
}

type fakeAjustesRepo struct {
	ajustes *entity.Ajustes
}

func (r *fakeAjustesRepo) GetByUsuario(companyID, userID string) (*entity.Ajustes, error) {
	return r.ajustes, nil
}

func (r *fakeAjustesRepo) Upsert(a *entity.Ajustes) error {
	r.ajustes = a
	return nil
}

type fakeVentaRepo struct {
	ventas map[string]*entity.Venta
	items  map[string][]*entity.VentaItem
}

func newFakeVentaRepo(ventas ...*entity.Venta) *fakeVentaRepo {
	repo := &fakeVentaRepo{
		ventas: make(map[string]*entity.Venta),
		items:  make(map[string][]*entity.VentaItem),
	}
	for _, v := range ventas {
		repo.ventas[v.ID] = v
	}
	return repo
}

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	r.ventas[v.ID] = v
	return nil
}

func (r *fakeVentaRepo) CreateItem(item *entity.VentaItem) error {
	r.items[item.VentaID] = append(r.items[item.VentaID], item)
	return nil
}

func (r *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) {
	return r.ventas[id], nil
}

func (r *fakeVentaRepo) GetItemsByVentaID(ventaID string) ([]*entity.VentaItem, error) {
	return r.items[ventaID], nil
}

func (r *fakeVentaRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.ventas {
		if v.CompanyID == companyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) ListEnCurso(companyID string, limit int) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.ventas {
		if v.CompanyID != companyID {
			continue
		}
		for _, estado := range venta.EstadosEnCurso() {
			if v.Estado == estado {
				out = append(out, v)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) ListByRango(companyID string, desde, hasta time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.ventas {
		if v.CompanyID != companyID {
			continue
		}
		if v.Fecha.Before(desde) || v.Fecha.After(hasta) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVentaRepo) UpdateEstado(id string, estado venta.Estado) error {
	if v, ok := r.ventas[id]; ok {
		v.Estado = estado
	}
	return nil
}

func (r *fakeVentaRepo) UpdateEstadoPago(id string, estadoPago string) error {
	if v, ok := r.ventas[id]; ok {
		v.EstadoPago = estadoPago
	}
	return nil
}

func (r *fakeVentaRepo) Delete(id string) error {
	delete(r.ventas, id)
	delete(r.items, id)
	return nil
}

// fakeTxRunner ejecuta el callback con los fakes compartidos. No simula
// rollback: los tests verifican el corte temprano por error.
type fakeTxRunner struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
}

func (r *fakeTxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
) error) error {
	return fn(r.ventaRepo, r.productoRepo, r.clienteRepo)
}
