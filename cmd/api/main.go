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

	"github.com/jhoicas/Estacion-api/internal/application/analytics"
	"github.com/jhoicas/Estacion-api/internal/application/auth"
	"github.com/jhoicas/Estacion-api/internal/application/credit"
	"github.com/jhoicas/Estacion-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/Estacion-api/internal/infrastructure/excel"
	infrageo "github.com/jhoicas/Estacion-api/internal/infrastructure/geo"
	"github.com/jhoicas/Estacion-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Estacion-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Estacion-api/internal/interfaces/http"
	"github.com/jhoicas/Estacion-api/pkg/config"
	"github.com/jhoicas/Estacion-api/pkg/logger"
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

	// Almacén en memoria: vive y muere con el proceso. El directorio de
	// usuarios se siembra siempre; los datos de ejemplo solo en modo demo.
	store := memory.NewStore()
	if err := store.SeedUsers(cfg.Seed.SharedPassword); err != nil {
		log.Fatal().Err(err).Msg("sembrar directorio de usuarios")
	}
	if cfg.Seed.Demo {
		store.SeedDemo()
	}
	log.Info().Interface("counts", store.Counts()).Msg("almacén inicializado")

	userRepo := memory.NewUserRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	salaryRepo := memory.NewSalaryRepository(store)
	lossRepo := memory.NewLossRepository(store)
	debitRepo := memory.NewDebitRepository(store)
	advanceRepo := memory.NewAdvanceRepository(store)

	sessions := auth.NewSessionRegistry()
	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Geocodificador inverso: opcional; sin URL configurada la asistencia
	// queda con dirección manual.
	var locator usecase.Locator
	if cfg.Geo.BaseURL != "" {
		locator = infrageo.NewNominatimLocator(cfg.Geo.BaseURL, cfg.Geo.TimeoutSeconds)
	}

	pdfGenerator := infrapdf.NewMarotoGenerator(cfg.App.Name)
	reportExporter := infraexcel.NewReportExporter(cfg.App.Name)

	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, locator, cfg.Shift.CheckInDeadline)
	lossUC := usecase.NewLossUseCase(lossRepo)
	advanceUC := usecase.NewAdvanceUseCase(advanceRepo)
	salaryUC := usecase.NewSalaryUseCase(salaryRepo, pdfGenerator)
	creditUC := credit.NewCreditUseCase(debitRepo, pdfGenerator)
	dashboardUC := analytics.NewDashboardUseCase(attendanceRepo, lossRepo, debitRepo, advanceRepo)
	reportUC := analytics.NewReportUseCase(attendanceRepo, salaryRepo, lossRepo, debitRepo, advanceRepo, reportExporter)

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
		Title:    "Estación Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		AttendanceUC: attendanceUC,
		LossUC:       lossUC,
		AdvanceUC:    advanceUC,
		SalaryUC:     salaryUC,
		CreditUC:     creditUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
