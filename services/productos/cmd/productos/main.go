package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	pkgdb "github.com/Skotchmaster/crud_services/pkg/db"
	"github.com/Skotchmaster/crud_services/pkg/events"
	"github.com/Skotchmaster/crud_services/pkg/logging"

	productoscfg "github.com/Skotchmaster/crud_services/services/productos/internal/config"
	"github.com/Skotchmaster/crud_services/services/productos/internal/httpserver"
	"github.com/Skotchmaster/crud_services/services/productos/internal/models"
	"github.com/Skotchmaster/crud_services/services/productos/internal/repo"
	"github.com/Skotchmaster/crud_services/services/productos/internal/service"
)

func main() {
	if err := godotenv.Load("services/productos/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := productoscfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	if err == nil {
		err = pkgdb.Migrate(ctx, db, &models.Producto{})
	}
	cancel()
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	publisher := events.New(cfg.KafkaBrokers, cfg.KafkaTopic)

	repo := &repo.GormRepo{DB: db}
	svc := &service.ProductoService{Repo: repo, Events: publisher}
	handler := &httpserver.ProductoHTTP{Svc: svc}

	e := httpserver.New(&httpserver.Deps{
		ProductoHandler: handler,
		DB:              db,
		Logger:          logger,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("productos listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("events close", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db close", "error", err)
	}

	logger.Info("productos stopped")
}
