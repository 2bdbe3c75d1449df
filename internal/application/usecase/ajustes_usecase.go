package usecase

import (
	"context"
	"time"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/repository"
)

// AjustesUseCase preferencias del usuario (moneda, zona horaria). La base es
// la única fuente de verdad; si el usuario nunca guardó, se devuelven los
// valores por defecto.
type AjustesUseCase struct {
	ajustesRepo repository.AjustesRepository
}

// NewAjustesUseCase construye el caso de uso.
func NewAjustesUseCase(ajustesRepo repository.AjustesRepository) *AjustesUseCase {
	return &AjustesUseCase{ajustesRepo: ajustesRepo}
}

// MonedaPorDefecto preferencia de moneda cuando el usuario no guardó nada.
const MonedaPorDefecto = "UYU"

// GetAjustes devuelve las preferencias del usuario, con defaults si nunca
// guardó.
func (uc *AjustesUseCase) GetAjustes(ctx context.Context, companyID, userID string) (*dto.AjustesResponse, error) {
	ajustes, err := uc.ajustesRepo.GetByUsuario(companyID, userID)
	if err != nil {
		return nil, err
	}
	if ajustes == nil {
		return &dto.AjustesResponse{Moneda: MonedaPorDefecto}, nil
	}
	moneda := ajustes.Moneda
	if moneda == "" {
		moneda = MonedaPorDefecto
	}
	return &dto.AjustesResponse{
		Moneda:      moneda,
		ZonaHoraria: ajustes.ZonaHoraria,
	}, nil
}

// UpdateAjustes guarda las preferencias; los campos vacíos conservan el valor
// anterior.
func (uc *AjustesUseCase) UpdateAjustes(ctx context.Context, companyID, userID string, in dto.UpdateAjustesRequest) (*dto.AjustesResponse, error) {
	actual, err := uc.ajustesRepo.GetByUsuario(companyID, userID)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		actual = &entity.Ajustes{CompanyID: companyID, UserID: userID}
	}
	if in.Moneda != "" {
		actual.Moneda = in.Moneda
	}
	if in.ZonaHoraria != "" {
		actual.ZonaHoraria = in.ZonaHoraria
	}
	actual.UpdatedAt = time.Now()

	if err := uc.ajustesRepo.Upsert(actual); err != nil {
		return nil, err
	}
	return uc.GetAjustes(ctx, companyID, userID)
}
