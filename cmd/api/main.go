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
	"github.com/jhoicas/Impacto-api/internal/application/auth"
	appdashboard "github.com/jhoicas/Impacto-api/internal/application/dashboard"
	"github.com/jhoicas/Impacto-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Impacto-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Impacto-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Impacto-api/internal/infrastructure/simulation"
	httpRouter "github.com/jhoicas/Impacto-api/internal/interfaces/http"
	"github.com/jhoicas/Impacto-api/pkg/config"
	"github.com/jhoicas/Impacto-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	profileRepo := postgres.NewEmployeeProfileRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	opportunityRepo := postgres.NewOpportunityRepository(pool)
	rewardRepo := postgres.NewRewardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// La fila singleton de la organización se asegura en el arranque; su ID se
	// inyecta por constructor al resto de la aplicación.
	org, err := orgRepo.EnsureSingleton(ctx, cfg.CSR.OrgName)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar organización")
	}
	log.Info().Str("org_id", org.ID).Str("org", org.Name).Msg("organización lista")

	// Adaptadores simulados de servicios externos.
	classifier := simulation.NewClassifier(log)
	estimator := simulation.NewCarbonEstimator(cfg.CSR.CarbonRatePerHour, log)
	opportunitySource := simulation.NewOpportunitySource(log)
	publisher := simulation.NewSocialPublisher(log)
	geocoder := simulation.NewGeocoder(log)

	recomputeSvc := appdashboard.NewRecomputeService(txRunner, classifier, estimator, org.ID)
	reportGen := infrapdf.NewMarotoReportGenerator()
	dashboardUC := appdashboard.NewUseCase(orgRepo, opportunityRepo, recomputeSvc, opportunitySource, geocoder, reportGen, org.ID)

	activityUC := usecase.NewActivityUseCase(activityRepo, profileRepo, classifier, estimator, recomputeSvc)
	profileUC := usecase.NewProfileUseCase(profileRepo, departmentRepo, rewardRepo, publisher)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo, recomputeSvc, cfg.CSR.DefaultCarbonBudget)
	opportunityUC := usecase.NewOpportunityUseCase(opportunityRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Impacto API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ActivityUC:    activityUC,
		ProfileUC:     profileUC,
		DepartmentUC:  departmentUC,
		OpportunityUC: opportunityUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
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
