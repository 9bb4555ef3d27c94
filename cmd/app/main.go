package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"school-schedule/internal/config"
	configGet "school-schedule/internal/http-server/handlers/level_configs/get"
	configList "school-schedule/internal/http-server/handlers/level_configs/list"
	configSave "school-schedule/internal/http-server/handlers/level_configs/save"
	scheduleCompat "school-schedule/internal/http-server/handlers/schedules/compatibility"
	scheduleCreate "school-schedule/internal/http-server/handlers/schedules/create"
	scheduleDeprecate "school-schedule/internal/http-server/handlers/schedules/deprecate"
	scheduleGet "school-schedule/internal/http-server/handlers/schedules/get"
	scheduleRestore "school-schedule/internal/http-server/handlers/schedules/restore"
	scheduleStats "school-schedule/internal/http-server/handlers/schedules/stats"
	scheduleSync "school-schedule/internal/http-server/handlers/schedules/sync"
	slotCheck "school-schedule/internal/http-server/handlers/time_slots/check"
	slotGet "school-schedule/internal/http-server/handlers/time_slots/get"
	slotPreview "school-schedule/internal/http-server/handlers/time_slots/preview"
	"school-schedule/internal/lock"
	svc "school-schedule/internal/service"
	"school-schedule/internal/storage"
	"school-schedule/pkg/logger"
	"school-schedule/pkg/middleware/mwAuth"
	"school-schedule/pkg/middleware/mwLogger"
	"school-schedule/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {

	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env, os.Stdout)
	slog.SetDefault(log)

	log.Info("Starting API", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	store, err := storage.Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		log.Error("Failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	locker, err := setupLocker(cfg.RedisAddr)
	if err != nil {
		log.Error("Failed to init redis lock", sl.Err(err))
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		log.Warn("redis_addr is empty, configuration saves are not locked")
	}

	service := svc.NewService(store, locker, log, svc.WithLockTTL(cfg.LockTTL))

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(CORS)
	router.Use(mwAuth.New(log, []byte(cfg.Auth.JWTSecret)))

	// Level configurations
	router.Get("/schools/{schoolID}/levels", configList.New(log, service))
	router.Get("/schools/{schoolID}/levels/{level}/config", configGet.New(log, service))
	router.Put("/schools/{schoolID}/levels/{level}/config", configSave.New(log, service))

	// Time slots
	router.Get("/schools/{schoolID}/levels/{level}/slots", slotGet.New(log, service))
	router.Get("/schools/{schoolID}/levels/{level}/blocks/{block}", slotCheck.New(log, service))
	router.Post("/time_slots/preview", slotPreview.New(log, service))

	// Schedules
	router.Post("/schools/{schoolID}/levels/{level}/deprecate", scheduleDeprecate.New(log, service))
	router.Get("/schools/{schoolID}/schedules/deprecated_stats", scheduleStats.New(log, service))
	router.Post("/schedules", scheduleCreate.New(log, service))
	router.Get("/schedules/{id}", scheduleGet.New(log, service))
	router.Get("/schedules/{id}/compatibility", scheduleCompat.New(log, service))
	router.Post("/schedules/{id}/sync", scheduleSync.New(log, service))
	router.Post("/schedules/{id}/restore", scheduleRestore.New(log, service))

	serv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErrCh := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", slog.String("addr", cfg.Address))
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		} else {
			serverErrCh <- nil
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErrCh:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", sl.Err(err))
		} else {
			log.Info("HTTP server stopped gracefully")
		}
	}

	shutdownTimeout := cfg.HTTPServer.ShutdownTimeout

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down HTTP server", slog.String("timeout", shutdownTimeout.String()))

	if err := serv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", sl.Err(err))
	} else {
		log.Info("Server shutdown complete")
	}

	if err := store.Close(); err != nil {
		log.Error("Failed to close storage", sl.Err(err))
	} else {
		log.Info("Storage closed")
	}

	if err := locker.Close(); err != nil {
		log.Error("Failed to close locker", sl.Err(err))
	} else {
		log.Info("Locker closed")
	}

	log.Info("Shutdown finished, server stopped")

}

// setupLocker returns a redis lock, or a no-op lock for single instance setups.
func setupLocker(addr string) (lock.Locker, error) {
	if addr == "" {
		return lock.Nop{}, nil
	}

	return lock.NewRedisLock(addr)
}
