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

	appanalytics "github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/inventory"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/cache"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Activos-api/internal/interfaces/http"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	repos := postgres.NewRepos(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	summaryCache := cache.NewMemory()

	// Pipeline de mutaciones: auditoría dentro de la transacción, invalidación del dashboard tras el commit
	pipeline := mutation.NewPipeline(log.Component("mutation")).
		InTx(mutation.NewAuditWriter()).
		AfterCommit(mutation.NewCacheInvalidator(summaryCache, []string{appanalytics.SummaryCacheKey}, entity.EntityAsset, entity.EntityRepair))
	mutations := mutation.NewService(txRunner, pipeline)

	assetUC := inventory.NewAssetUseCase(mutations, repos)
	movementUC := inventory.NewMovementUseCase(mutations, repos, cfg.Assets.BulkTransferMax)
	repairUC := inventory.NewRepairUseCase(mutations, repos, cfg.Assets.StrictRepairTransitions)
	replenishmentUC := inventory.NewReplenishmentUseCase(analyticsRepo, cfg.Assets.DepreciationWarnMonths)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, summaryCache, cfg.Cache.DashboardTTL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Activos TI API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AssetUC:         assetUC,
		MovementUC:      movementUC,
		RepairUC:        repairUC,
		ReplenishmentUC: replenishmentUC,
		BranchUC:        usecase.NewBranchUseCase(mutations, repos),
		EmployeeUC:      usecase.NewEmployeeUseCase(mutations, repos),
		VendorUC:        usecase.NewVendorUseCase(mutations, repos),
		CategoryUC:      usecase.NewCategoryUseCase(mutations, repos),
		StatusUC:        usecase.NewStatusUseCase(mutations, repos),
		AuditUC:         usecase.NewAuditUseCase(repos.AuditLogs),
		DashboardUC:     dashboardUC,
		JWTSecret:       cfg.JWT.Secret,
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
