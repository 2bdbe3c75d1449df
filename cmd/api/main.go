package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wcoders/ventas-api/internal/application/analytics"
	"github.com/wcoders/ventas-api/internal/application/auth"
	"github.com/wcoders/ventas-api/internal/application/usecase"
	"github.com/wcoders/ventas-api/internal/application/ventas"
	infrapdf "github.com/wcoders/ventas-api/internal/infrastructure/pdf"
	"github.com/wcoders/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/wcoders/ventas-api/internal/interfaces/http"
	"github.com/wcoders/ventas-api/pkg/config"
	"github.com/wcoders/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	ajustesRepo := postgres.NewAjustesRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	gastoUC := usecase.NewGastoUseCase(gastoRepo)
	ajustesUC := usecase.NewAjustesUseCase(ajustesRepo)

	createVentaUC := ventas.NewCreateVentaUseCase(txRunner, clienteRepo, productoRepo, ajustesRepo)
	ventaUC := ventas.NewVentaUseCase(ventaRepo)
	reciboGenerator := infrapdf.NewMarotoReceiptGenerator()
	reciboUC := ventas.NewReciboUseCase(ventaRepo, empresaRepo, reciboGenerator)

	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	monthlyUC := analytics.NewMonthlySalesUseCase(analyticsRepo)
	rankingUC := analytics.NewRankingUseCase(analyticsRepo)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:   empresaUC,
		ClienteUC:   clienteUC,
		ProductoUC:  productoUC,
		GastoUC:     gastoUC,
		AjustesUC:   ajustesUC,
		CreateVenta: createVentaUC,
		VentaUC:     ventaUC,
		ReciboUC:    reciboUC,
		DashboardUC: dashboardUC,
		MonthlyUC:   monthlyUC,
		RankingUC:   rankingUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
