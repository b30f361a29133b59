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
	"github.com/shopspring/decimal"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/analytics"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/auth"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/usecase"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/finance"
	infrapdf "github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/infrastructure/pdf"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/infrastructure/postgres"
	httpRouter "github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/interfaces/http"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/pkg/config"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("level", cfg.App.LogLevel).
		Msg("iniciando aplicación")

	ctx := context.Background()
	if err := postgres.Migrate(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	settings := finance.Settings{
		OverheadRate: decimal.NewFromFloat(cfg.Finance.OverheadRate),
		Currency:     cfg.Finance.Currency,
		Locale:       cfg.Finance.Locale,
	}

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo, projectRepo, invoiceRepo, txRunner, settings)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, projectRepo, pdfGenerator, settings)
	sampleUC := usecase.NewSampleDataUseCase(txRunner)
	dashboardUC := analytics.NewDashboardUseCase(clientRepo, projectRepo, invoiceRepo, settings, nil)
	rfmUC := analytics.NewRFMUseCase(clientRepo, invoiceRepo, nil)

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
		Title:    "ClientIQ API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		ProjectUC:   projectUC,
		InvoiceUC:   invoiceUC,
		SampleUC:    sampleUC,
		DashboardUC: dashboardUC,
		RFMUC:       rfmUC,
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
