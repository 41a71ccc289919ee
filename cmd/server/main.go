package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profiles-backend-go/internal/api"
	"profiles-backend-go/internal/config"
	"profiles-backend-go/internal/core"
	"profiles-backend-go/internal/db"
	"profiles-backend-go/internal/middleware"
	"profiles-backend-go/internal/models"
	"profiles-backend-go/internal/storage"
)

func main() {
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to load application configuration: %v", err)
	}

	var zapLogger *zap.Logger
	if strings.ToLower(appConfig.GinMode) == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Application configuration loaded successfully.")

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	clients, err := db.NewClients(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase clients", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth, Storage) initialized successfully.")

	// Repositories.
	collectionRepo := db.NewFirestoreCollectionRepository(clients.Firestore)
	documentRepo := db.NewFirestoreDocumentRepository(clients.Firestore)
	userDocRepo := db.NewFirestoreUserDocRepository(clients.Firestore)
	businessRepo := db.NewFirestoreBusinessRepository(clients.Firestore)
	blobStore := storage.NewGCSBlobStore(clients.Storage, appConfig.StorageBucket)

	// Services. The three collection resources are instances of one
	// synchronizer parameterized by their resource spec.
	services := api.Services{
		Articles:        core.NewCollectionService(models.Articles, collectionRepo, zapLogger),
		Educations:      core.NewCollectionService(models.Educations, collectionRepo, zapLogger),
		WorkExperiences: core.NewCollectionService(models.WorkExperiences, collectionRepo, zapLogger),
		Professions:     core.NewDocumentService(models.Professions, documentRepo, zapLogger),
		Profiles:        core.NewProfileService(userDocRepo, clients.Auth, zapLogger),
		Businesses:      core.NewBusinessService(businessRepo, zapLogger),
		Storage:         core.NewStorageService(blobStore, zapLogger),
	}
	zapLogger.Info("Repositories and core services initialized successfully.")

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured.")
	}

	authMW := middleware.NewAuthMiddleware(clients.Auth, zapLogger)
	api.SetupRoutes(router, zapLogger, authMW, services)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if err := clients.Close(); err != nil {
		zapLogger.Warn("Error closing Firebase clients", zap.Error(err))
	}
	zapLogger.Info("Server exiting gracefully.")
}
