package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcoach/fitness-platform/internal/api"
	"fitcoach/fitness-platform/internal/config"
	"fitcoach/fitness-platform/internal/repository/sqlite"
	"fitcoach/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Fitness Platform API
// @version 1.0
// @description API for managing fitness trainers and their client rosters.
// @host localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting Fitness Platform Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	// Connect also migrates the schema; migration is idempotent.
	db, err := sqlite.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open database: %v", err)
	}
	log.Println("Database connection established.")

	// --- Initialize Repositories ---
	trainerRepo := sqlite.NewTrainerRepository(db)
	clientRepo := sqlite.NewClientRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(trainerRepo, cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.Expiration)
	trainerService := service.NewTrainerService(trainerRepo)
	clientService := service.NewClientService(clientRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, authService, trainerService, clientService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
