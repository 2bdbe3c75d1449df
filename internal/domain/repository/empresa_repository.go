package repository

import "github.com/wcoders/ventas-api/internal/domain/entity"

// EmpresaRepository puerto de persistencia para empresas (tenants).
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	List(limit, offset int) ([]*entity.Empresa, error)
}
