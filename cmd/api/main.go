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

	"github.com/mvidalcampos/coleccion-api/internal/application/auth"
	"github.com/mvidalcampos/coleccion-api/internal/application/reparto"
	"github.com/mvidalcampos/coleccion-api/internal/application/usecase"
	infraexcel "github.com/mvidalcampos/coleccion-api/internal/infrastructure/excel"
	infrapdf "github.com/mvidalcampos/coleccion-api/internal/infrastructure/pdf"
	"github.com/mvidalcampos/coleccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/mvidalcampos/coleccion-api/internal/interfaces/http"
	"github.com/mvidalcampos/coleccion-api/pkg/config"
	"github.com/mvidalcampos/coleccion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	pedidoRepo := postgres.NewPedidoRepository(pool)
	articuloRepo := postgres.NewArticuloRepository(pool)
	marcaRepo := postgres.NewMarcaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	informeRepo := postgres.NewInformeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo)
	articuloUC := usecase.NewArticuloUseCase(articuloRepo, pedidoRepo, marcaRepo)
	marcaUC := usecase.NewMarcaUseCase(marcaRepo)
	repartoUC := reparto.NewUseCase(txRunner, pedidoRepo, articuloRepo, log.Zerolog())

	pdfGenerator := infrapdf.NewMarotoInformeGenerator()
	excelExporter := infraexcel.NewInformeExporter()
	informeUC := usecase.NewInformeUseCase(informeRepo, pdfGenerator, excelExporter)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Colección API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PedidoUC:   pedidoUC,
		ArticuloUC: articuloUC,
		MarcaUC:    marcaUC,
		InformeUC:  informeUC,
		RepartoUC:  repartoUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
