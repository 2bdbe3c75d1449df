package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wcoders/ventas-api/internal/application/analytics"
	"github.com/wcoders/ventas-api/internal/application/dto"
)

// DashboardHandler expone las métricas agregadas del panel (protegido).
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	monthlyUC   *analytics.MonthlySalesUseCase
	rankingUC   *analytics.RankingUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(
	dashboardUC *analytics.DashboardUseCase,
	monthlyUC *analytics.MonthlySalesUseCase,
	rankingUC *analytics.RankingUseCase,
) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, monthlyUC: monthlyUC, rankingUC: rankingUC}
}

// Stats godoc
// @Summary      Métricas del mes actual vs el anterior
// @Description  Ingresos, ventas, valor promedio, pendientes de pago, clientes nuevos, gastos y beneficios, cada uno con su crecimiento porcentual.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.dashboardUC.GetStats(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VentasMensuales godoc
// @Summary      Ventas agrupadas por mes del año en curso
// @Description  Devuelve siempre 12 posiciones (Ene..Dic); los meses sin ventas van en cero.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VentaMensualDTO
// @Router       /api/dashboard/ventas-mensuales [get]
func (h *DashboardHandler) VentasMensuales(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.monthlyUC.GetVentasMensuales(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MasVendidos godoc
// @Summary      Top 5 de productos más vendidos
// @Description  Por cantidad vendida en unidades base; la cola se agrupa en "Otros".
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductoRankingDTO
// @Router       /api/dashboard/mas-vendidos [get]
func (h *DashboardHandler) MasVendidos(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.rankingUC.GetMasVendidos(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MenosVendidos godoc
// @Summary      5 productos menos vendidos
// @Description  Incluye productos activos sin ventas (cantidad cero).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductoRankingDTO
// @Router       /api/dashboard/menos-vendidos [get]
func (h *DashboardHandler) MenosVendidos(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.rankingUC.GetMenosVendidos(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deudores godoc
// @Summary      Clientes con mayor deuda pendiente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(5)
// @Success      200    {array}  dto.DeudorDTO
// @Router       /api/dashboard/deudores [get]
func (h *DashboardHandler) Deudores(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.dashboardUC.GetDeudores(c.Context(), companyID, c.QueryInt("limit", 5))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
