package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"professionals-api/config"
	"professionals-api/internal/app"
	"professionals-api/internal/database"
	"professionals-api/internal/server"

	_ "professionals-api/docs" // Swagger document
)

// @title           Professionals API
// @version         1.0
// @description     Job and internship marketplace connecting students with companies.

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(cfg.DB); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	application, err := app.New(cfg, dbPool, redisClient)
	if err != nil {
		log.Fatalf("Failed to initialise application: %v", err)
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("Received %s, shutting down server...", sig)
	case err := <-errCh:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Application gracefully stopped.")
}
