package main

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"flight-route-service/internal/adapters/cache"
	"flight-route-service/internal/adapters/pricing"
	"flight-route-service/internal/api"
	"flight-route-service/internal/platform/config"
	"flight-route-service/internal/platform/db"
	"flight-route-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the pricing adapter and the chosen quote-cache backend behind
// ports and starts the HTTP server.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := setupLogger(cfg.LogLevel)
	defer func() {
		_ = log.Sync()
	}()
	zap.ReplaceGlobals(log)

	if strings.TrimSpace(cfg.SkyScanner.APIKey) == "" {
		log.Fatal("SKYSCANNER_API_KEY is required")
	}

	priceCache, closeCache, err := openCache(cfg)
	if err != nil {
		log.Fatal("open quote cache", zap.Error(err))
	}
	if closeCache != nil {
		defer closeCache()
	}

	provider, err := pricing.NewSkyScannerProvider(cfg.SkyScanner.APIKey, cfg.SkyScanner.BaseURL, priceCache, log)
	if err != nil {
		log.Fatal("build price provider", zap.Error(err))
	}

	router := api.NewRouter(provider, cfg.StatsEnabled, log)

	// Timeouts are tuned for cold-cache solves (many upstream pricing calls).
	log.Info("server listening", zap.String("addr", ":"+cfg.Port), zap.String("cache", cfg.Cache.Backend))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

// openCache builds the configured PriceCache. The returned close function
// releases the backing connection and may be nil.
func openCache(cfg *config.Config) (ports.PriceCache, func(), error) {
	switch cfg.Cache.Backend {
	case "sqlite":
		conn, err := db.OpenSqlite(cfg.Cache.SqlitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := initSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return cache.NewSqlitePriceCache(conn), func() { conn.Close() }, nil

	case "postgres":
		conn, err := db.Open(cfg.Cache.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := initSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return cache.NewSQLPriceCache(conn), func() { conn.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		return cache.NewRedisPriceCache(client, cfg.Cache.RedisTTL), func() { client.Close() }, nil
	}

	// "none" and anything config.Load let through run without persistence.
	return nil, nil, nil
}

func initSchema(conn *sql.DB) error {
	return cache.InitSchema(conn)
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
