// Package usecase contiene los casos de uso CRUD de catálogo y back-office:
// clientes, productos, gastos y ajustes.
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

// ClienteUseCase CRUD de clientes.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// CreateCliente da de alta un cliente activo con acumulado en cero.
func (uc *ClienteUseCase) CreateCliente(ctx context.Context, companyID string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	cliente := &entity.Cliente{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Nombre:        in.Nombre,
		Email:         in.Email,
		Telefono:      in.Telefono,
		Direccion:     in.Direccion,
		FechaRegistro: now,
		Estado:        entity.ClienteActivo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

// GetCliente devuelve un cliente de la empresa.
func (uc *ClienteUseCase) GetCliente(ctx context.Context, companyID, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.cargar(companyID, id)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

// UpdateCliente aplica una edición parcial.
func (uc *ClienteUseCase) UpdateCliente(ctx context.Context, companyID, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.cargar(companyID, id)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Nombre = *in.Nombre
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	if in.Estado != nil {
		if *in.Estado != entity.ClienteActivo && *in.Estado != entity.ClienteInactivo {
			return nil, domain.ErrInvalidInput
		}
		cliente.Estado = *in.Estado
	}
	cliente.UpdatedAt = time.Now()

	if err := uc.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

// ListClientes lista clientes de la empresa; estado vacío = todos.
func (uc *ClienteUseCase) ListClientes(ctx context.Context, companyID, estado string, page dto.PageRequest) (*dto.ClienteListResponse, error) {
	if estado != "" && estado != entity.ClienteActivo && estado != entity.ClienteInactivo {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	clientes, err := uc.clienteRepo.ListByCompany(companyID, estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		items = append(items, *clienteToResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *ClienteUseCase) cargar(companyID, id string) (*entity.Cliente, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return cliente, nil
}

func clienteToResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Email:         c.Email,
		Telefono:      c.Telefono,
		Direccion:     c.Direccion,
		FechaRegistro: c.FechaRegistro.Format("2006-01-02"),
		TotalCompras:  c.TotalCompras,
		Estado:        c.Estado,
	}
}
