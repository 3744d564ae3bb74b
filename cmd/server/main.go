package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ines300405/luxury-wheels/internal/config"
	"github.com/ines300405/luxury-wheels/internal/handlers"
	"github.com/ines300405/luxury-wheels/internal/repositories/sqlite"
	"github.com/ines300405/luxury-wheels/internal/services"
	"github.com/ines300405/luxury-wheels/pkg/database"
	"github.com/ines300405/luxury-wheels/pkg/logger"
	"github.com/ines300405/luxury-wheels/pkg/storage"
	"github.com/ines300405/luxury-wheels/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: time.RFC3339,
		Caller:     cfg.Log.Caller,
		Colors:     cfg.Log.Colors,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&database.Config{
		Path:            cfg.Database.Path,
		BusyTimeout:     cfg.Database.BusyTimeout,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogQueries:      cfg.Database.LogQueries,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	store, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize file storage")
	}

	// Repositories
	clientRepo := sqlite.NewClientRepository(db)
	vehicleRepo := sqlite.NewVehicleRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)
	methodRepo := sqlite.NewPaymentMethodRepository(db)

	// Services
	clientService := services.NewClientService(clientRepo, log)
	vehicleService := services.NewVehicleService(vehicleRepo, log)
	reservationService := services.NewReservationService(reservationRepo, log)
	paymentService := services.NewPaymentService(paymentRepo, log)
	methodService := services.NewPaymentMethodService(methodRepo, log)
	dashboardService := services.NewDashboardService(clientRepo, vehicleRepo, reservationRepo, paymentRepo, log)
	exportService := services.NewExportService(clientService, vehicleService, reservationService, paymentService, methodService, log)

	router := routes.SetupRouter(cfg, log, &routes.Handlers{
		Client:        handlers.NewClientHandler(clientService),
		Vehicle:       handlers.NewVehicleHandler(vehicleService, store, cfg.Storage.MaxImageSize),
		Reservation:   handlers.NewReservationHandler(reservationService, paymentService),
		Payment:       handlers.NewPaymentHandler(paymentService),
		PaymentMethod: handlers.NewPaymentMethodHandler(methodService),
		Dashboard:     handlers.NewDashboardHandler(dashboardService),
		Export:        handlers.NewExportHandler(exportService),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("server stopped")
}
