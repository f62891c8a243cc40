// @title                       Community API
// @version                     1.0
// @description                 Posts, likes, profiles and an admin console for a small community platform.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/townsquare/community/internal/api"
	"github.com/townsquare/community/internal/api/handler"
	"github.com/townsquare/community/internal/core/service"
	"github.com/townsquare/community/internal/infrastructure/config"
	"github.com/townsquare/community/internal/infrastructure/db/mongo"
	"github.com/townsquare/community/internal/infrastructure/db/redis"
	"github.com/townsquare/community/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log, err := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "community-api",
	})
	if err != nil {
		bootLog.Fatal().Err(err).Msg("build logger")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Adapters ---
	users := mongo.NewUserRepository(db)
	posts := mongo.NewPostRepository(db)
	if err := mongo.EnsureIndexes(ctx, users, posts); err != nil {
		return err
	}
	tx := mongo.NewTransactor(mongoClient, log)
	revoker := redis.NewTokenRevoker(rdb)

	// --- Use cases ---
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	services := api.Services{
		Gate:  service.NewGate(tokens, users, revoker, log),
		Auth:  service.NewAuthService(users, tokens, revoker, cfg.BootstrapAdminEmail, log),
		Posts: service.NewPostService(posts, users, log),
		Users: service.NewUserService(users, log),
		Admin: service.NewAdminService(users, posts, tx, log),
	}

	e := api.NewRouter(services, api.Options{
		Log: log,
		Checks: map[string]handler.Check{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
