// File: shreeji/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shreeji/config"
	"shreeji/database"
	bookingRepoPkg "shreeji/database/repository/booking"
	contactRepoPkg "shreeji/database/repository/contact"
	"shreeji/handlers"
	"shreeji/routes"
	"shreeji/services/booking"
	"shreeji/services/contact"
	"shreeji/services/storage"
	"shreeji/services/visualize"
	"shreeji/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	ctx := context.Background()
	storageService, err := storage.NewGCSStorageService(ctx, config.AppConfig.StorageBucket, config.AppConfig.StorageCredentialsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize photo storage service: %v", err)
	}

	visualizeService, err := visualize.NewGeminiVisualizeService(ctx, config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize visualization service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:    bookingRepo,
		Storage: storageService,
		Cache:   utils.GetCacheClient(),
	}
	contactService := &contact.DefaultContactService{
		Repo: contactRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)
	visualizeHandler := handlers.NewVisualizeHandler(visualizeService, logger)
	adminHandler := handlers.NewAdminHandler(bookingService, contactService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SubmitBookingHandler:      bookingHandler.SubmitBookingHandler,
		TrackOrderHandler:         bookingHandler.TrackOrderHandler,
		SubmitContactHandler:      contactHandler.SubmitContactHandler,
		VisualizeInGalleryHandler: visualizeHandler.VisualizeInGalleryHandler,

		ListBookingsHandler:        adminHandler.ListBookingsHandler,
		UpdateBookingStatusHandler: adminHandler.UpdateBookingStatusHandler,
		ListMessagesHandler:        adminHandler.ListMessagesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
