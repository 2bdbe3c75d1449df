package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wcoders/ventas-api/internal/application/dto"
	"github.com/wcoders/ventas-api/internal/application/ventas"
)

// VentaHandler maneja las peticiones HTTP para ventas (protegido).
type VentaHandler struct {
	createUC *ventas.CreateVentaUseCase
	ventaUC  *ventas.VentaUseCase
	reciboUC *ventas.ReciboUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(createUC *ventas.CreateVentaUseCase, ventaUC *ventas.VentaUseCase, reciboUC *ventas.ReciboUseCase) *VentaHandler {
	return &VentaHandler{createUC: createUC, ventaUC: ventaUC, reciboUC: reciboUC}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Registra una venta con sus líneas: resuelve precios por unidad de venta, descuenta stock y acumula el total en el cliente, todo en una transacción.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Venta a registrar"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateVenta(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID (con líneas)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.ventaUC.GetVenta(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Param        desde   query  string  false  "Fecha inicial YYYY-MM-DD (con hasta)"
// @Param        hasta   query  string  false  "Fecha final YYYY-MM-DD (con desde)"
// @Success      200     {object}  dto.VentaListResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	if c.Query("desde") != "" || c.Query("hasta") != "" {
		desde, hasta, err := parseRango(c.Query("desde"), c.Query("hasta"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "desde y hasta deben tener formato YYYY-MM-DD"})
		}
		out, err := h.ventaUC.ListVentasPorRango(c.Context(), companyID, desde, hasta)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.ventaUC.ListVentas(c.Context(), companyID, parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EnCurso godoc
// @Summary      Ventas pendientes de entrega
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(5)
// @Success      200    {array}  dto.VentaPendienteDTO
// @Router       /api/ventas/en-curso [get]
func (h *VentaHandler) EnCurso(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.ventaUC.ListVentasEnCurso(c.Context(), companyID, c.QueryInt("limit", 5))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Cambiar estado del pedido
// @Description  Aplica la transición de estado si está permitida. Al marcar entregado la venta se consolida automáticamente como completada.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateEstadoVentaRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.VentaResponse
// @Failure      409   {object}  dto.ErrorResponse  "Transición no permitida"
// @Router       /api/ventas/{id}/estado [patch]
func (h *VentaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ventaUC.CambiarEstado(c.Context(), GetCompanyID(c), c.Params("id"), in.Estado)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstadoPago godoc
// @Summary      Cambiar estado de pago
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateEstadoPagoRequest  true  "Nuevo estado de pago"
// @Success      200   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/estado-pago [patch]
func (h *VentaHandler) UpdateEstadoPago(c *fiber.Ctx) error {
	var in dto.UpdateEstadoPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ventaUC.CambiarEstadoPago(c.Context(), GetCompanyID(c), c.Params("id"), in.EstadoPago)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta (solo admin)
// @Description  Elimina la venta y sus líneas. No repone stock ni descuenta el acumulado del cliente.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.ventaUC.DeleteVenta(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Recibo godoc
// @Summary      Comprobante de venta en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/recibo [get]
func (h *VentaHandler) Recibo(c *fiber.Ctx) error {
	pdf, err := h.reciboUC.GenerarRecibo(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprobante-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

// parseRango interpreta los filtros desde/hasta (YYYY-MM-DD). Ambos son
// obligatorios cuando se filtra; hasta se extiende al último instante del día.
func parseRango(desde, hasta string) (time.Time, time.Time, error) {
	d, err := time.Parse("2006-01-02", desde)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	h, err := time.Parse("2006-01-02", hasta)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return d, h.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}
