package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canasta/internal/auth"
	"canasta/internal/catalog"
	"canasta/internal/config"
	"canasta/internal/database"
	"canasta/internal/handler"
	"canasta/internal/repository"
	"canasta/internal/router"
	"canasta/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting canasta API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Apply schema migrations before opening the pool
	if err := database.Migrate(cfg.Database.ConnectionString(), logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	listRepo := repository.NewListRepository(pool, logger)
	itemRepo := repository.NewItemRepository(pool, logger)

	// Import catalogue seed files when configured
	if cfg.Seed.Enabled {
		loader := newSeedLoader(ctx, cfg.Seed, logger)
		seeder := catalog.NewSeeder(loader, productRepo, logger)
		if err := seeder.Run(ctx, cfg.Seed.Files); err != nil {
			return fmt.Errorf("failed to seed catalogue: %w", err)
		}
	}

	// Initialize services
	userService := service.NewUserService(userRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	listService := service.NewListService(listRepo, itemRepo, productRepo, logger)

	// Initialize identity resolver and HTTP handlers
	resolver := auth.NewResolver(userRepo, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	listHandler := handler.NewListHandler(listService, logger)
	itemHandler := handler.NewItemHandler(listService, logger)

	// Initialize router
	mux := router.New(userHandler, productHandler, listHandler, itemHandler, resolver, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSeedLoader picks the seed loader per configuration: S3 with a local
// fallback when enabled, local files otherwise.
func newSeedLoader(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) catalog.Loader {
	fileLoader := catalog.NewFileLoader(logger)

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for catalogue seed files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
}
