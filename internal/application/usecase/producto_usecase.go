package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

// UmbralBajoStock stock por debajo del cual un producto entra a la alerta
// del dashboard.
var UmbralBajoStock = decimal.NewFromInt(6)

// ProductoUseCase CRUD del catálogo de productos.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo}
}

// CreateProducto da de alta un producto activo.
func (uc *ProductoUseCase) CreateProducto(ctx context.Context, companyID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio.LessThan(decimal.Zero) || in.Stock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	categoria := in.Categoria
	if categoria == "" {
		categoria = entity.CategoriaOtros
	}
	if !entity.CategoriaValida(categoria) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	producto := &entity.Producto{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Nombre:            in.Nombre,
		Descripcion:       in.Descripcion,
		Precio:            in.Precio,
		PrecioUnidad:      in.PrecioUnidad,
		PrecioMediaDocena: in.PrecioMediaDocena,
		PrecioDocena:      in.PrecioDocena,
		Categoria:         categoria,
		Stock:             in.Stock,
		ImagenURL:         in.ImagenURL,
		Estado:            entity.ProductoActivo,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.productoRepo.Create(producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

// GetProducto devuelve un producto de la empresa.
func (uc *ProductoUseCase) GetProducto(ctx context.Context, companyID, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.cargar(companyID, id)
	if err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

// UpdateProducto aplica una edición parcial.
func (uc *ProductoUseCase) UpdateProducto(ctx context.Context, companyID, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.cargar(companyID, id)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.PrecioUnidad != nil {
		producto.PrecioUnidad = in.PrecioUnidad
	}
	if in.PrecioMediaDocena != nil {
		producto.PrecioMediaDocena = in.PrecioMediaDocena
	}
	if in.PrecioDocena != nil {
		producto.PrecioDocena = in.PrecioDocena
	}
	if in.Categoria != nil {
		if !entity.CategoriaValida(*in.Categoria) {
			return nil, domain.ErrInvalidInput
		}
		producto.Categoria = *in.Categoria
	}
	if in.Stock != nil {
		if in.Stock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Stock = *in.Stock
	}
	if in.ImagenURL != nil {
		producto.ImagenURL = *in.ImagenURL
	}
	if in.Estado != nil {
		if *in.Estado != entity.ProductoActivo && *in.Estado != entity.ProductoInactivo {
			return nil, domain.ErrInvalidInput
		}
		producto.Estado = *in.Estado
	}
	producto.UpdatedAt = time.Now()

	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

// DesactivarProducto baja lógica: los productos referenciados por ventas
// nunca se borran.
func (uc *ProductoUseCase) DesactivarProducto(ctx context.Context, companyID, id string) error {
	if _, err := uc.cargar(companyID, id); err != nil {
		return err
	}
	return uc.productoRepo.Desactivar(id)
}

// ListProductos lista productos de la empresa; estado vacío = todos.
func (uc *ProductoUseCase) ListProductos(ctx context.Context, companyID, estado string, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	if estado != "" && estado != entity.ProductoActivo && estado != entity.ProductoInactivo {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	productos, err := uc.productoRepo.ListByCompany(companyID, estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *productoToResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListBajoStock productos activos con stock por debajo del umbral de alerta,
// los más comprometidos primero.
func (uc *ProductoUseCase) ListBajoStock(ctx context.Context, companyID string, limit int) ([]dto.ProductoBajoStockDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	productos, err := uc.productoRepo.ListBajoStock(companyID, UmbralBajoStock, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoBajoStockDTO, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoBajoStockDTO{
			ID:     p.ID,
			Nombre: p.Nombre,
			Stock:  p.Stock,
		})
	}
	return out, nil
}

func (uc *ProductoUseCase) cargar(companyID, id string) (*entity.Producto, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if producto.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return producto, nil
}

func productoToResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Precio:            p.Precio,
		PrecioUnidad:      p.PrecioUnidad,
		PrecioMediaDocena: p.PrecioMediaDocena,
		PrecioDocena:      p.PrecioDocena,
		Categoria:         p.Categoria,
		Stock:             p.Stock,
		ImagenURL:         p.ImagenURL,
		Estado:            p.Estado,
	}
}
