// main.go
package main

import (
	"context"
	"log"
	"time"

	"laundry-hub/cmd"
	"laundry-hub/internal/data/repository"
	"laundry-hub/internal/wire"
	"laundry-hub/pkg/database"
	"laundry-hub/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close(context.Background())

	logger.Info("Database connected successfully")

	// Make sure the users and stores collections exist before serving
	ensureCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureCollections(ensureCtx); err != nil {
		cancel()
		logger.Fatal("Failed to ensure collections", zap.Error(err))
	}
	cancel()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
