package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/application/usecase"
)

// AjustesHandler maneja las preferencias del usuario autenticado (protegido).
type AjustesHandler struct {
	uc *usecase.AjustesUseCase
}

// NewAjustesHandler construye el handler.
func NewAjustesHandler(uc *usecase.AjustesUseCase) *AjustesHandler {
	return &AjustesHandler{uc: uc}
}

// Get godoc
// @Summary      Preferencias del usuario
// @Tags         ajustes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AjustesResponse
// @Router       /api/ajustes [get]
func (h *AjustesHandler) Get(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.GetAjustes(c.Context(), companyID, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Guardar preferencias del usuario
// @Description  Los campos vacíos no se modifican.
// @Tags         ajustes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateAjustesRequest  true  "Preferencias"
// @Success      200   {object}  dto.AjustesResponse
// @Router       /api/ajustes [put]
func (h *AjustesHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.UpdateAjustesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateAjustes(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
