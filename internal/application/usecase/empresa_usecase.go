package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

// EmpresaUseCase casos de uso de empresas (tenants).
type EmpresaUseCase struct {
	empresaRepo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso.
func NewEmpresaUseCase(empresaRepo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{empresaRepo: empresaRepo}
}

// CreateEmpresa da de alta una empresa en estado active.
func (uc *EmpresaUseCase) CreateEmpresa(ctx context.Context, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Email:     in.Email,
		SitioWeb:  in.SitioWeb,
		Estado:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.empresaRepo.Create(empresa); err != nil {
		return nil, err
	}
	return empresaToResponse(empresa), nil
}

// GetEmpresa obtiene una empresa por ID.
func (uc *EmpresaUseCase) GetEmpresa(ctx context.Context, id string) (*dto.EmpresaResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	empresa, err := uc.empresaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	return empresaToResponse(empresa), nil
}

// ListEmpresas lista empresas por orden de creación.
func (uc *EmpresaUseCase) ListEmpresas(ctx context.Context, page dto.PageRequest) ([]dto.EmpresaResponse, error) {
	page.DefaultPage()
	empresas, err := uc.empresaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpresaResponse, 0, len(empresas))
	for _, e := range empresas {
		out = append(out, *empresaToResponse(e))
	}
	return out, nil
}

func empresaToResponse(e *entity.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:        e.ID,
		Nombre:    e.Nombre,
		Direccion: e.Direccion,
		Telefono:  e.Telefono,
		Email:     e.Email,
		SitioWeb:  e.SitioWeb,
		Estado:    e.Estado,
	}
}
