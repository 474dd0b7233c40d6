package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/comparisons"
	"plancompare-backend/internal/recommend"
	"plancompare-backend/internal/services/health"
	"plancompare-backend/internal/shared/config"
	"plancompare-backend/internal/shared/server"
	"plancompare-backend/internal/shared/server/middleware"
	"plancompare-backend/internal/shared/storage/db"
	"plancompare-backend/internal/shared/storage/object"
	localstore "plancompare-backend/internal/shared/storage/object/local"
	s3store "plancompare-backend/internal/shared/storage/object/s3"
	"plancompare-backend/internal/shared/telemetry"
	"plancompare-backend/internal/shared/validate"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Store              object.ObjectStore
	Engine             *recommend.Engine
	CatalogRepo        catalog.Repo
	ComparisonsRepo    comparisons.Repo
	CatalogService     *catalog.Service
	ComparisonsService *comparisons.Service
	HealthService      *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Engine: engine,
	}

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	val := validate.New()
	var pinger health.Pinger
	if app.DB != nil {
		pinger = app.DB
	}
	app.HealthService = health.NewService(pinger, app.CatalogRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		CatalogHandler:    catalog.NewHandler(app.CatalogService, val),
		ComparisonHandler: comparisons.NewHandler(app.ComparisonsService, val),
		Health:            app.HealthService,
		RateLimiter:       middleware.NewRateLimiter(nil),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database unavailable", "err": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildEngine(cfg config.Config) (*recommend.Engine, error) {
	engineCfg := recommend.DefaultConfig()
	engineCfg.ExtendedPriorities = cfg.ExtendedPriorities

	if path := strings.TrimSpace(cfg.ProviderTablePath); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open provider table: %w", err)
		}
		defer f.Close()
		table, err := recommend.LoadProviderTable(f)
		if err != nil {
			return nil, err
		}
		engineCfg.Providers = table
		telemetry.Info("bootstrap.provider_table", map[string]any{"path": path, "providers": table.Len()})
	}
	return recommend.New(engineCfg), nil
}

func buildServices(ctx context.Context, app *App) error {
	if app.DB != nil {
		app.CatalogRepo = &catalog.PGRepo{DB: app.DB}
		app.ComparisonsRepo = &comparisons.PGRepo{DB: app.DB}
	} else {
		app.CatalogRepo = catalog.NewMemoryRepo(catalog.DefaultCatalog())
		app.ComparisonsRepo = comparisons.NewMemoryRepo()
	}

	app.CatalogService = &catalog.Service{Repo: app.CatalogRepo, Store: app.Store}
	if app.DB != nil {
		if _, err := app.CatalogService.SeedIfEmpty(ctx, catalog.DefaultCatalog()); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	app.ComparisonsService = &comparisons.Service{
		Repo:         app.ComparisonsRepo,
		Plans:        app.CatalogRepo,
		Engine:       app.Engine,
		DefaultLimit: app.Config.DefaultResultLimit,
	}
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
