package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ridehail/admin-api/internal/api"
	"github.com/ridehail/admin-api/internal/auth"
	"github.com/ridehail/admin-api/internal/cache"
	"github.com/ridehail/admin-api/internal/core/service"
	mongodb "github.com/ridehail/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ridehail/admin-api/internal/infrastructure/db/redis"
	"github.com/ridehail/admin-api/internal/infrastructure/queue"
	"github.com/ridehail/admin-api/internal/pkg/config"
	"github.com/ridehail/admin-api/pkg/logger"
)

const (
	auditWorkers    = 4
	shutdownTimeout = 10 * time.Second
)

// @title        Ride-Hail Admin API
// @version      1.0
// @description  Administration API for the ride-hailing platform.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	tripRepo := mongodb.NewTripRepository(db)
	riderRepo := mongodb.NewRiderRepository(db)
	driverRepo := mongodb.NewDriverRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	dispatcher := queue.NewAuditDispatcher(auditWorkers, auditRepo, log)
	dispatcher.Start(ctx)

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL)
	tripCache := cache.NewActiveTrips(cfg.Cache.TTL)
	limiter := redisdb.NewLoginLimiter(redisClient)

	svcs := api.Services{
		Auth:    service.NewAuthService(userRepo, tokens, limiter, log),
		Trips:   service.NewTripService(tripRepo, riderRepo, driverRepo, tripCache, dispatcher, cfg.Fare.Base, cfg.Fare.PerUnit, log),
		Riders:  service.NewRiderService(riderRepo, dispatcher, log),
		Drivers: service.NewDriverService(driverRepo, dispatcher, log),
		Admin:   service.NewAdminService(userRepo, tripRepo, riderRepo, driverRepo, auditRepo, dispatcher, log),
	}

	e := api.NewRouter(svcs, tokens, mongoClient, redisClient, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
