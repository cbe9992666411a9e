// Package bootstrap wires configuration into the running application: the
// database, cache, object store, LLM provider, services, and router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"outfit-backend/internal/images"
	"outfit-backend/internal/jobs"
	"outfit-backend/internal/llm"
	"outfit-backend/internal/llm/openai"
	"outfit-backend/internal/products"
	"outfit-backend/internal/recommendations"
	"outfit-backend/internal/shared/cache"
	"outfit-backend/internal/shared/config"
	"outfit-backend/internal/shared/server"
	"outfit-backend/internal/shared/storage/db"
	"outfit-backend/internal/shared/storage/object"
	"outfit-backend/internal/shared/storage/object/local"
	"outfit-backend/internal/shared/storage/object/s3"
	"outfit-backend/internal/shared/telemetry"
)

// App bundles everything a command needs to run the service.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Cache  cache.Cache
	Jobs   *jobs.Manager
}

// Close releases held resources.
func (a *App) Close() {
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

// Build assembles the application from config. In dev-like environments a
// missing DATABASE_URL falls back to an in-memory seeded catalog so the
// service runs without infrastructure.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg, Jobs: jobs.NewManager()}

	repo, database, err := buildRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = database

	app.Cache = buildCache(ctx, cfg)

	store, err := buildObjectStore(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	productSvc := &products.Service{
		Repo:     repo,
		Cache:    app.Cache,
		CacheTTL: cfg.CandidateCacheTTL,
	}
	recommendSvc := recommendations.NewService(
		productSvc,
		llmClient,
		cfg.MaxPerCategory,
		cfg.MaxRecommendations,
		cfg.FallbackOnLLMError,
	)
	imageSvc := images.NewService(store, images.NewRemover(cfg.RembgURL), cfg.S3ImagePrefix, cfg.S3CompositePrefix)

	app.Router = server.NewRouter(cfg,
		recommendations.NewHandler(recommendSvc),
		images.NewHandler(imageSvc, app.Jobs),
	)
	return app, nil
}

func buildRepo(ctx context.Context, cfg config.Config) (products.Repo, *sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		telemetry.Info("bootstrap.memory_repo", map[string]any{"env": cfg.Env})
		memory := products.NewMemoryRepo()
		memory.Seed(products.SampleCatalog()...)
		return memory, nil, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		_ = database.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	return &products.PGRepo{DB: database}, database, nil
}

func buildCache(ctx context.Context, cfg config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.Noop{}
	}
	redisCache, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		telemetry.Error("bootstrap.redis", map[string]any{
			"addr":  cfg.RedisAddr,
			"error": err.Error(),
		})
		return cache.Noop{}
	}
	return redisCache
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, "")
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	}
	return local.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" && cfg.Env != "production" {
			telemetry.Info("bootstrap.llm_placeholder", map[string]any{"env": cfg.Env})
			return llm.PlaceholderClient{}, nil
		}
		return openai.NewClient(apiKey, cfg.LLMModel)
	case "placeholder", "":
		return llm.PlaceholderClient{}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
