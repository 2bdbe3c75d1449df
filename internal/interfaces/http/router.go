package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wcoders/ventas-api/internal/application/analytics"
	"github.com/wcoders/ventas-api/internal/application/auth"
	"github.com/wcoders/ventas-api/internal/application/usecase"
	"github.com/wcoders/ventas-api/internal/application/ventas"
	"github.com/wcoders/ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmpresaUC   *usecase.EmpresaUseCase
	ClienteUC   *usecase.ClienteUseCase
	ProductoUC  *usecase.ProductoUseCase
	GastoUC     *usecase.GastoUseCase
	AjustesUC   *usecase.AjustesUseCase
	CreateVenta *ventas.CreateVentaUseCase
	VentaUC     *ventas.VentaUseCase
	ReciboUC    *ventas.ReciboUseCase
	DashboardUC *analytics.DashboardUseCase
	MonthlyUC   *analytics.MonthlySalesUseCase
	RankingUC   *analytics.RankingUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Empresas (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	empresas := api.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/:id", empresaHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/bajo-stock", productoHandler.BajoStock)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Desactivar)

	// Ventas (protegido)
	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.CreateVenta, deps.VentaUC, deps.ReciboUC)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/en-curso", ventaHandler.EnCurso)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Get("/:id/recibo", ventaHandler.Recibo)
	ventasGroup.Patch("/:id/estado", ventaHandler.UpdateEstado)
	ventasGroup.Patch("/:id/estado-pago", ventaHandler.UpdateEstadoPago)
	ventasGroup.Delete("/:id", RequireRole(entity.RoleAdmin), ventaHandler.Delete)

	// Gastos (protegido)
	gastos := protected.Group("/gastos")
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastos.Post("/", gastoHandler.Create)
	gastos.Get("/", gastoHandler.List)
	gastos.Get("/:id", gastoHandler.GetByID)
	gastos.Put("/:id", gastoHandler.Update)
	gastos.Delete("/:id", gastoHandler.Anular)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.MonthlyUC, deps.RankingUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/ventas-mensuales", dashboardHandler.VentasMensuales)
	dashboard.Get("/mas-vendidos", dashboardHandler.MasVendidos)
	dashboard.Get("/menos-vendidos", dashboardHandler.MenosVendidos)
	dashboard.Get("/deudores", dashboardHandler.Deudores)

	// Ajustes (protegido)
	ajustes := protected.Group("/ajustes")
	ajustesHandler := NewAjustesHandler(deps.AjustesUC)
	ajustes.Get("/", ajustesHandler.Get)
	ajustes.Put("/", ajustesHandler.Update)
}
