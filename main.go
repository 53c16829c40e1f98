// File: santai/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"santai/config"
	"santai/cron"
	"santai/database"
	bookingRepoPkg "santai/database/repository/booking"
	commissionRepoPkg "santai/database/repository/commission"
	depositRepoPkg "santai/database/repository/deposit"
	notificationRepoPkg "santai/database/repository/notification"
	therapistRepoPkg "santai/database/repository/therapist"
	"santai/handlers"
	"santai/middleware"
	"santai/routes"
	bookingSvc "santai/services/booking"
	commissionSvc "santai/services/commission"
	depositSvc "santai/services/deposit"
	notifSvc "santai/services/notification"
	"santai/services/storage"
	therapistSvc "santai/services/therapist"
	"santai/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("main: failed to load config: " + err.Error())
	}
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	database.InitDB(cfg.DatabaseURL, cfg.DatabaseName)

	storageService, err := storage.NewStorageService(
		cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	commissionRepo := commissionRepoPkg.NewMongoCommissionRepo()
	therapistRepo := therapistRepoPkg.NewMongoTherapistRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	depositRepo := depositRepoPkg.NewMongoDepositRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	notifier, err := notifSvc.NewRecordSink(notificationRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification sink: %v", err)
	}

	commissionService, err := commissionSvc.NewCommissionService(
		commissionRepo, therapistRepo, storageService, notifier, cfg.Commission, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize commission service: %v", err)
	}

	depositService, err := depositSvc.NewDepositService(
		depositRepo, bookingRepo, storageService, notifier, cfg.Deposit, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize deposit service: %v", err)
	}

	therapistService, err := therapistSvc.NewTherapistService(therapistRepo, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize therapist service: %v", err)
	}

	bookingService, err := bookingSvc.NewBookingService(
		bookingRepo, therapistRepo, commissionService, depositService, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking service: %v", err)
	}

	// handlers.
	commissionHandler := handlers.NewCommissionHandler(commissionService, logger)
	depositHandler := handlers.NewDepositHandler(depositService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	adminHandler := handlers.NewAdminHandler(commissionService, depositService, therapistRepo, logger)
	therapistHandler := handlers.NewTherapistHandler(therapistService, logger)

	handlerBundle := &routes.HandlerBundle{
		Commission:    commissionHandler,
		Deposit:       depositHandler,
		Booking:       bookingHandler,
		Admin:         adminHandler,
		Therapist:     therapistHandler,
		TherapistRepo: therapistRepo,
		AdminToken:    cfg.AdminToken,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the background sweep worker.
	cron.InitSweepWorker(cfg, commissionService, depositService)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
