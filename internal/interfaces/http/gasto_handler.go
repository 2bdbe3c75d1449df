package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/application/usecase"
)

// GastoHandler maneja las peticiones HTTP para gastos (protegido).
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGastoRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateGasto(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener gasto por ID
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.GastoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [get]
func (h *GastoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetGasto(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar gastos
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Filtro por estado (activo, anulado)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.GastoListResponse
// @Router       /api/gastos [get]
func (h *GastoHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.ListGastos(c.Context(), companyID, c.Query("estado"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.UpdateGastoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.GastoResponse
// @Failure      409   {object}  dto.ErrorResponse  "Gasto anulado"
// @Router       /api/gastos/{id} [put]
func (h *GastoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateGasto(c.Context(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Anular godoc
// @Summary      Anular gasto
// @Description  Marca el gasto como anulado; queda fuera de toda agregación financiera.
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del gasto"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "Ya estaba anulado"
// @Router       /api/gastos/{id} [delete]
func (h *GastoHandler) Anular(c *fiber.Ctx) error {
	if err := h.uc.AnularGasto(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
