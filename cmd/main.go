package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/pawhaven/PH-BoardingService/internal/api/handlers/cancel_reservation"
	createBookingHandler "github.com/pawhaven/PH-BoardingService/internal/api/handlers/create_booking"
	createBookingBatchHandler "github.com/pawhaven/PH-BoardingService/internal/api/handlers/create_booking_batch"
	getAvailabilityHandler "github.com/pawhaven/PH-BoardingService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/pawhaven/PH-BoardingService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/pawhaven/PH-BoardingService/internal/api/handlers/list_reservations"
	listResourcesHandler "github.com/pawhaven/PH-BoardingService/internal/api/handlers/list_resources"
	updateStatusHandler "github.com/pawhaven/PH-BoardingService/internal/api/handlers/update_reservation_status"
	"github.com/pawhaven/PH-BoardingService/internal/api/middleware"
	"github.com/pawhaven/PH-BoardingService/internal/config"
	"github.com/pawhaven/PH-BoardingService/internal/infra/storage/migrate"
	reservationRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/reservation"
	resourceRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/resource"
	reservationsService "github.com/pawhaven/PH-BoardingService/internal/service/reservations"
	resourcesService "github.com/pawhaven/PH-BoardingService/internal/service/resources"
	bookBatchUC "github.com/pawhaven/PH-BoardingService/internal/usecase/book_batch"
	bookResourceUC "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
	findAvailabilityUC "github.com/pawhaven/PH-BoardingService/internal/usecase/find_availability"
	"github.com/pawhaven/PH-BoardingService/pkg/dbmetrics"
	"github.com/pawhaven/PH-BoardingService/pkg/logger"
	"github.com/pawhaven/PH-BoardingService/pkg/metrics"
	"github.com/pawhaven/PH-BoardingService/pkg/simpletxmanager"
	"github.com/pawhaven/PH-BoardingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PH-BoardingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := migrate.Up(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	if version, err := migrate.Version(context.Background(), db); err == nil {
		log.Info("Database schema at version %d", version)
	}

	txOptions := []txmanager.Option{
		txmanager.WithMaxRetries(cfg.Booking.MaxRetries),
		txmanager.WithLockTimeout(time.Duration(cfg.Booking.LockTimeoutMS) * time.Millisecond),
	}

	var (
		resourceRepository    *resourceRepo.Repository
		reservationRepository *reservationRepo.Repository
		txMgr                 bookResourceUC.TransactionManager
		bookingMetrics        bookResourceUC.Metrics
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, txOptions...)
		bookingMetrics = metricsCollector
	} else {
		resourceRepository = resourceRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db, txOptions...)
	}

	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	resourcesSvc := resourcesService.NewService(resourceRepository, log)

	findAvailabilityUseCase := findAvailabilityUC.NewUseCase(
		resourceRepository,
		reservationRepository,
		log,
	)

	bookResourceUseCase := bookResourceUC.NewUseCase(
		resourceRepository,
		reservationRepository,
		txMgr,
		bookingMetrics,
		log,
	)

	bookBatchUseCase := bookBatchUC.NewUseCase(
		findAvailabilityUseCase,
		bookResourceUseCase,
		log,
	)

	getAvailability := getAvailabilityHandler.NewHandler(findAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(bookResourceUseCase, log)
	createBookingBatch := createBookingBatchHandler.NewHandler(bookBatchUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(reservationsSvc, log)
	listResources := listResourcesHandler.NewHandler(resourcesSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Every API route is tenant-scoped
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Tenant)

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	api.HandleFunc("/reservations", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/batch", createBookingBatch.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{id}/status", updateStatus.Handle).Methods(http.MethodPatch)

	api.HandleFunc("/resources", listResources.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}", listResources.HandleGet).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
