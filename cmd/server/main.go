package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/adapters/cache"
	"route-optimizer-service/internal/adapters/repositories"
	"route-optimizer-service/internal/api"
	"route-optimizer-service/internal/config"
	"route-optimizer-service/internal/metrics"
	"route-optimizer-service/internal/platform/db"
	"route-optimizer-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	metrics.RegisterDefault()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Schema setup is idempotent; seeding demo data is dbtool's job.
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	orderRepo := repositories.NewPostgresOrderRepository(database)
	driverRepo := repositories.NewPostgresDriverRepository(database)
	routeRepo := repositories.NewPostgresRouteRepository(database)

	// The plan cache is optional: without Redis every optimization request
	// recomputes the sequence, which is fine at tens of stops.
	var planCache ports.PlanCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		planCache = cache.NewRedisPlanCache(client, cfg.PlanCacheTTL)
		logger.Info("plan cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.PlanCacheTTL)
	}

	router := api.NewRouter(orderRepo, driverRepo, routeRepo, planCache, logger)

	logger.Info("server listening", "addr", ":"+cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
