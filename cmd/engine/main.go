package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobslice-engine/internal/cache"
	"jobslice-engine/internal/config"
	"jobslice-engine/internal/httpapi"
	"jobslice-engine/internal/maintain"
	"jobslice-engine/internal/roles"
	"jobslice-engine/internal/salary"
	"jobslice-engine/internal/secrets"
	"jobslice-engine/internal/store"
)

func main() {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	dataDir := os.Getenv("JOBSLICE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal("create data dir", zap.Error(err))
	}

	cfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "engine.yml"))
	if err != nil {
		log.Fatal("config bootstrap failed", zap.Error(err))
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("config load failed", zap.String("path", cfgPath), zap.Error(err))
	}
	cfg, check := config.NormalizeAndValidate(cfg)
	for _, wrn := range check.Warnings {
		log.Warn("config", zap.String("warning", wrn))
	}
	if !check.OK() {
		log.Fatal("config invalid", zap.Strings("errors", check.Errors))
	}

	table, err := roles.Load(cfg.Roles.SynonymsPath)
	if err != nil {
		log.Fatal("role synonym table", zap.Error(err))
	}

	db, err := store.Open(filepath.Join(dataDir, "jobslice.db"))
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	counts := openCounts(ctx, cfg, log)
	defer counts.Close()

	loop := maintain.New(db, cfg.MaxAge(), cfg.Retention(), cfg.Maintenance.IntervalHours, log)
	if err := loop.Start(ctx); err != nil {
		log.Fatal("maintenance loop", zap.Error(err))
	}
	defer loop.Stop()

	handler := httpapi.NewHandler(httpapi.Deps{
		DB:     db,
		Roles:  table,
		Salary: salary.NewParser(log),
		Counts: counts,
		Cfg:    cfg,
		Log:    log,
	})

	srv := &http.Server{
		Addr:         cfg.App.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("engine listening", zap.String("addr", cfg.App.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("http server", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("JOBSLICE_DEBUG") != "" {
		log, _ := zap.NewDevelopment()
		return log
	}
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log
}

// openCounts wires the optional redis count cache; any failure degrades to
// a nil cache rather than blocking startup.
func openCounts(ctx context.Context, cfg config.Config, log *zap.Logger) *cache.Counts {
	if cfg.Redis.URL == "" {
		return nil
	}
	password, err := secrets.GetRedisPassword(cfg.Redis.KeyringAccount)
	if err != nil {
		log.Warn("redis password unavailable, connecting without one", zap.Error(err))
	}
	counts, err := cache.NewCounts(ctx, cfg.Redis.URL, password, cfg.CountTTL())
	if err != nil {
		log.Warn("count cache disabled", zap.Error(err))
		return nil
	}
	log.Info("count cache enabled", zap.String("url", cfg.Redis.URL))
	return counts
}
