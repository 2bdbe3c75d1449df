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

// GastoUseCase CRUD de gastos. El borrado es lógico: anular saca el gasto de
// toda agregación financiera sin perder el registro.
type GastoUseCase struct {
	gastoRepo repository.GastoRepository
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(gastoRepo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{gastoRepo: gastoRepo}
}

// CreateGasto da de alta un gasto activo.
func (uc *GastoUseCase) CreateGasto(ctx context.Context, companyID string, in dto.CreateGastoRequest) (*dto.GastoResponse, error) {
	if in.Concepto == "" || !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	categoria := in.Categoria
	if categoria == "" {
		categoria = entity.GastoOtros
	}
	if !entity.CategoriaGastoValida(categoria) {
		return nil, domain.ErrInvalidInput
	}
	frecuencia, err := validarFrecuencia(in.Recurrente, in.Frecuencia)
	if err != nil {
		return nil, err
	}

	fecha := time.Now()
	if in.Fecha != "" {
		fecha, err = time.Parse("2006-01-02", in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	gasto := &entity.Gasto{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Concepto:    in.Concepto,
		Monto:       in.Monto,
		Fecha:       fecha,
		Categoria:   categoria,
		Notas:       in.Notas,
		Comprobante: in.Comprobante,
		Recurrente:  in.Recurrente,
		Frecuencia:  frecuencia,
		Estado:      entity.GastoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.gastoRepo.Create(gasto); err != nil {
		return nil, err
	}
	return gastoToResponse(gasto), nil
}

// GetGasto devuelve un gasto de la empresa.
func (uc *GastoUseCase) GetGasto(ctx context.Context, companyID, id string) (*dto.GastoResponse, error) {
	gasto, err := uc.cargar(companyID, id)
	if err != nil {
		return nil, err
	}
	return gastoToResponse(gasto), nil
}

// UpdateGasto aplica una edición parcial sobre un gasto activo.
func (uc *GastoUseCase) UpdateGasto(ctx context.Context, companyID, id string, in dto.UpdateGastoRequest) (*dto.GastoResponse, error) {
	gasto, err := uc.cargar(companyID, id)
	if err != nil {
		return nil, err
	}
	if gasto.Estado == entity.GastoAnulado {
		return nil, domain.ErrConflict
	}

	if in.Concepto != nil {
		if *in.Concepto == "" {
			return nil, domain.ErrInvalidInput
		}
		gasto.Concepto = *in.Concepto
	}
	if in.Monto != nil {
		if !in.Monto.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		gasto.Monto = *in.Monto
	}
	if in.Fecha != nil {
		fecha, err := time.Parse("2006-01-02", *in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		gasto.Fecha = fecha
	}
	if in.Categoria != nil {
		if !entity.CategoriaGastoValida(*in.Categoria) {
			return nil, domain.ErrInvalidInput
		}
		gasto.Categoria = *in.Categoria
	}
	if in.Notas != nil {
		gasto.Notas = *in.Notas
	}
	if in.Comprobante != nil {
		gasto.Comprobante = *in.Comprobante
	}
	if in.Recurrente != nil {
		gasto.Recurrente = *in.Recurrente
	}
	if in.Frecuencia != nil {
		gasto.Frecuencia = *in.Frecuencia
	}
	frecuencia, err := validarFrecuencia(gasto.Recurrente, gasto.Frecuencia)
	if err != nil {
		return nil, err
	}
	gasto.Frecuencia = frecuencia
	gasto.UpdatedAt = time.Now()

	if err := uc.gastoRepo.Update(gasto); err != nil {
		return nil, err
	}
	return gastoToResponse(gasto), nil
}

// AnularGasto baja lógica del gasto.
func (uc *GastoUseCase) AnularGasto(ctx context.Context, companyID, id string) error {
	gasto, err := uc.cargar(companyID, id)
	if err != nil {
		return err
	}
	if gasto.Estado == entity.GastoAnulado {
		return domain.ErrConflict
	}
	return uc.gastoRepo.Anular(id)
}

// ListGastos lista gastos de la empresa; estado vacío = todos.
func (uc *GastoUseCase) ListGastos(ctx context.Context, companyID, estado string, page dto.PageRequest) (*dto.GastoListResponse, error) {
	if estado != "" && estado != entity.GastoActivo && estado != entity.GastoAnulado {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	gastos, err := uc.gastoRepo.ListByCompany(companyID, estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		items = append(items, *gastoToResponse(g))
	}
	return &dto.GastoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func validarFrecuencia(recurrente bool, frecuencia string) (string, error) {
	if !recurrente {
		return "", nil
	}
	switch frecuencia {
	case entity.FrecuenciaMensual, entity.FrecuenciaTrimestral, entity.FrecuenciaAnual, entity.FrecuenciaUnico:
		return frecuencia, nil
	case "":
		return entity.FrecuenciaMensual, nil
	}
	return "", domain.ErrInvalidInput
}

func (uc *GastoUseCase) cargar(companyID, id string) (*entity.Gasto, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	gasto, err := uc.gastoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if gasto == nil {
		return nil, domain.ErrNotFound
	}
	if gasto.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return gasto, nil
}

func gastoToResponse(g *entity.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:          g.ID,
		Concepto:    g.Concepto,
		Monto:       g.Monto,
		Fecha:       g.Fecha.Format("2006-01-02"),
		Categoria:   g.Categoria,
		Notas:       g.Notas,
		Comprobante: g.Comprobante,
		Recurrente:  g.Recurrente,
		Frecuencia:  g.Frecuencia,
		Estado:      g.Estado,
	}
}
