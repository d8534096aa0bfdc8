// @title        Energy Predictor API
// @version      1.0
// @description  Household energy consumption prediction service.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "energy_predictor/docs"
	"energy_predictor/internal/config"
	"energy_predictor/internal/handlers"
	"energy_predictor/internal/logger"
	"energy_predictor/internal/metrics"
	"energy_predictor/internal/predictor"
	"energy_predictor/internal/repository"
	"energy_predictor/internal/repository/db"
	"energy_predictor/internal/server"
	"energy_predictor/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DBPath)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	m := metrics.New()
	model, status := openModel(cfg, log)
	m.SetModelAvailable(status.Available)

	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Deps{
		Invoker: predictor.NewInvoker(model, m),
		Model:   status,
		Auth:    service.AuthConfig{SigningKey: cfg.SigningKey, TokenTTL: cfg.TokenTTL},
		Log:     log,
		Metrics: m,
	})
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// openModel loads the configured model. A missing model leaves the service
// running with predictions disabled.
func openModel(cfg config.Config, log *logger.Logger) (predictor.Predictor, predictor.Status) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ModelTimeout)
	defer cancel()

	model, status := predictor.Open(ctx, predictor.Source{
		Path:    cfg.ModelPath,
		URL:     cfg.ModelURL,
		Timeout: cfg.ModelTimeout,
	})
	if status.Available {
		log.Infow("model_loaded", "source", status.Source, "version", status.Version)
	} else {
		log.Errorw("model_load_failed", "source", status.Source, "err", status.Err)
	}
	return model, status
}

func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_server_starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
