package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anirudhASAWA/Time-Motion-Study/config"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/bootstrap"
	cronjob "github.com/anirudhASAWA/Time-Motion-Study/internal/projects/cron"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/repository"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		store repository.Store
		pool  *pgxpool.Pool
	)
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err = bootstrap.OpenDB(ctx, cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer pool.Close()

		pgRepo := repository.NewPostgresRepo(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		store = pgRepo
	default:
		store, err = repository.NewFileRepo(cfg.Storage.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data dir: %v", err)
		}
	}

	var cache *repository.SummaryCache
	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer client.Close()
		cache = repository.NewSummaryCache(client, time.Duration(cfg.Redis.CacheTTLSecs)*time.Second)
	}

	svc := service.NewProjectService(store, cache)

	if cache != nil {
		scheduler := cronjob.NewScheduler(svc)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "time-motion-study-api",
		Version:        cfg.App.Version,
		DataDir:        cfg.Storage.DataDir,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		DB:             pool,
		Projects:       svc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting API server on %s (env: %s, backend: %s)",
			srv.Addr, cfg.App.Environment, cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
