package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"posts-api/db"
	"posts-api/middlewares"
	"posts-api/routes"
	"posts-api/utils"
)

func main() {
	// Environment from .env, if present, never overrides real variables
	envErr := godotenv.Load()

	logger := utils.NewLogger(os.Stdout)
	zerolog.DefaultContextLogger = &logger
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn().Err(envErr).Msg("could not read .env file")
	}

	// Load configuration
	config, err := db.LoadDBConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading database config")
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := db.Connect(connectCtx, config, logger)
	cancelConnect()
	if err != nil {
		logger.Fatal().Err(err).Msg("error connecting to MongoDB")
	}

	posts := db.PostCollection(client, config)
	if err := db.Migrate(posts, logger); err != nil {
		logger.Fatal().Err(err).Msg("error migrating database")
	}

	cache := initCache(logger)
	defer func() {
		if err := cache.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing Redis connection")
		}
	}()
	store := db.NewPostStore(posts, cache, logger)

	handler := routes.SetupRoutes(routes.Config{
		Store:  store,
		Cors:   middlewares.LoadCorsConfig(),
		Logger: logger,
	})

	addr := ":" + envOr("PORT", "8000")
	srv := &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    100 * time.Second,
		WriteTimeout:   100 * time.Second,
		MaxHeaderBytes: 7500,
		IdleTimeout:    120 * time.Second,
	}

	// Use a wait group to manage graceful shutdown
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()
	logger.Info().Str("addr", addr).Msg("server started successfully")

	// Wait for interrupt signal to gracefully shut down the server
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	wg.Wait()

	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error disconnecting from MongoDB")
	}
	logger.Info().Msg("server exited gracefully")
}

// initCache connects the optional post cache. The service runs without it
// when REDIS_URL is unset or Redis is unreachable.
func initCache(logger zerolog.Logger) *db.PostCache {
	redisCfg, ok := db.LoadRedisConfig()
	if !ok {
		logger.Info().Msg("REDIS_URL not set, post cache disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisCfg.DialTimeout)
	defer cancel()

	client, err := db.NewRedisClient(ctx, redisCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("post cache disabled")
		return nil
	}

	logger.Info().Msg("Redis connection initialized successfully")
	return db.NewPostCache(client, db.PostCacheTTL)
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
