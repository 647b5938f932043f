package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"user_backend/internal/app/config"
	"user_backend/internal/app/di"
	"user_backend/internal/app/router"
	"user_backend/internal/platform/db"
	platformhandler "user_backend/internal/platform/http/handler"
	"user_backend/internal/platform/http/middleware"
)

func main() {
	// .env は任意
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, using process environment")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// db
	gormDB, err := db.Open(db.LoadConfigFromEnv(), di.Models()...)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	sqlDB, err := gormDB.DB()
	if err != nil {
		slog.Error("failed to access database", "error", err)
		return
	}

	// Handler
	healthH := platformhandler.NewHealthHandler(sqlDB)
	userH := di.NewUserHandler(gormDB)
	reportH := di.NewReportHandler(gormDB)

	// ルータ生成
	r := router.NewRouter(healthH, userH, reportH)

	// HTMLフォームから PUT/DELETE を送れるよう、ルーティング前にメソッドを書き換える
	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     middleware.MethodOverride(r),
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// main は return で抜け、deferred close を必ず実行する
	if err := run(srv, done, cfg.ShutdownTimeout); err != nil {
		slog.Error("server error", "error", err)
		return
	}
	slog.Info("server stopped")
}

// run serves until stop fires or the listener fails, then shuts srv down.
// A listen failure is returned instead of exiting so callers can release resources.
func run(srv *http.Server, stop <-chan os.Signal, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to serve: %w", err)
	case <-stop:
	}
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
