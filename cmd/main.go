package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Govt-of-India/mla-portal/internal/api"
	"github.com/Govt-of-India/mla-portal/internal/cache"
	"github.com/Govt-of-India/mla-portal/internal/config"
	"github.com/Govt-of-India/mla-portal/internal/logger"
	"github.com/Govt-of-India/mla-portal/internal/middleware"
	"github.com/Govt-of-India/mla-portal/internal/storage"
	"github.com/Govt-of-India/mla-portal/internal/store"
	"github.com/Govt-of-India/mla-portal/internal/uploads"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	logOutput := "stdout"
	if cfg.LogFile != "" {
		logOutput = cfg.LogFile
	}
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: logOutput,
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Msg("Starting application...")

	// Page cache: Redis when configured, in-memory otherwise
	var pageCache cache.Store
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisStore(cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis page cache")
		}
		pageCache = redisCache
	} else {
		log.Info().Msg("REDIS_URL not set, using in-memory page cache")
		pageCache = cache.NewMemoryStore()
	}
	defer func() {
		if err := pageCache.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing page cache")
		}
	}()

	// Content source: seed data, optionally fronted by an upstream API
	seed := store.NewMemory(store.Seed(time.Now()))
	var source store.ContentSource = seed
	if cfg.UpstreamURL != "" {
		log.Info().Str("upstream", cfg.UpstreamURL).Msg("Using upstream content API with seed fallback")
		source = store.NewFailover(store.NewRemote(cfg.UpstreamURL, cfg.UpstreamTimeout), seed)
	}

	// Contact submission storage
	contacts, err := storage.NewContactStorage(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize contact storage")
	}

	// Media uploads: R2 bucket when configured, placeholder echo otherwise
	uploadCfg := uploads.Config{
		Endpoint:  cfg.R2Endpoint,
		AccessKey: cfg.R2AccessKey,
		SecretKey: cfg.R2SecretKey,
		Bucket:    cfg.R2Bucket,
		PublicURL: cfg.R2PublicURL,
	}
	var uploader uploads.Uploader
	if uploadCfg.Configured() {
		uploader, err = uploads.NewS3Uploader(context.Background(), uploadCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize media uploader")
		}
	} else {
		log.Warn().Msg("Media bucket not configured, uploads return placeholder URLs")
		uploader = uploads.MockUploader{}
	}

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	api.SetupRoutes(app, api.NewHandlers(api.Deps{
		Config:    cfg,
		Source:    source,
		Seed:      seed,
		PageCache: pageCache,
		Contacts:  contacts,
		Uploader:  uploader,
	}))

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
