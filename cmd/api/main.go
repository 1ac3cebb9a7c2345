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

	"github.com/saborurbano/backoffice/internal/application/auth"
	"github.com/saborurbano/backoffice/internal/application/usecase"
	"github.com/saborurbano/backoffice/internal/infrastructure/postgres"
	httpRouter "github.com/saborurbano/backoffice/internal/interfaces/http"
	"github.com/saborurbano/backoffice/pkg/config"
	"github.com/saborurbano/backoffice/pkg/logger"
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

	httpRouter.ExposeInternalErrors(cfg.App.IsDevelopment())

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	insumoRepo := postgres.NewInsumoRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	tareaRepo := postgres.NewTareaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo)
	insumoUC := usecase.NewInsumoUseCase(insumoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, txRunner)
	tareaUC := usecase.NewTareaUseCase(tareaRepo, empleadoRepo, pedidoRepo)
	dashboardUC := usecase.NewDashboardUseCase(tareaRepo, empleadoRepo, insumoRepo, pedidoRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT)

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
		Title:    "Sabor Urbano API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpleadoUC:  empleadoUC,
		InsumoUC:    insumoUC,
		ProductoUC:  productoUC,
		PedidoUC:    pedidoUC,
		TareaUC:     tareaUC,
		DashboardUC: dashboardUC,
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
