// Command api runs the clinic HTTP service.
//
// @title                       Clinic API
// @version                     1.0
// @description                 Tracks clients, care programs, enrollments and outcomes with an append-only activity log.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/careledger/clinic-api/internal/api"
	"github.com/careledger/clinic-api/internal/api/handler"
	"github.com/careledger/clinic-api/internal/core/service"
	"github.com/careledger/clinic-api/internal/infrastructure/db/postgres"
	"github.com/careledger/clinic-api/internal/infrastructure/db/redis"
	"github.com/careledger/clinic-api/internal/infrastructure/token"
	"github.com/careledger/clinic-api/internal/pkg/config"
	"github.com/careledger/clinic-api/pkg/logger"
)

const serviceName = "clinic-api"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: serviceName})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {

	// --- Postgres ---
	pool, err := postgres.NewPool(ctx, postgres.Config{
		DSN:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	log.Info().Int("applied", applied).Msg("database migrated")

	// --- Redis ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	// --- Adapters ---
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, token.WithIssuer(serviceName))
	revocations := redis.NewRevocationList(rdb)

	txm := postgres.NewTxManager(pool)
	users := postgres.NewUserRepository(pool)
	clients := postgres.NewClientRepository(pool)
	programs := postgres.NewProgramRepository(pool)
	enrollments := postgres.NewEnrollmentRepository(pool)
	outcomes := postgres.NewOutcomeRepository(pool)
	activity := postgres.NewActivityRepository(pool)

	// --- Services ---
	authService := service.NewAuthService(users, tokens, revocations, logger.Component("auth"))
	registryService := service.NewRegistryService(service.RegistryDeps{
		Tx:          txm,
		Clients:     clients,
		Programs:    programs,
		Enrollments: enrollments,
		Outcomes:    outcomes,
		Activity:    activity,
	}, logger.Component("registry"))
	outcomeService := service.NewOutcomeService(txm, clients, programs, outcomes, activity, logger.Component("outcomes"))
	activityService := service.NewActivityService(activity)

	e := api.NewRouter(api.Deps{
		Log:      logger.Component("http"),
		Auth:     authService,
		Registry: registryService,
		Outcomes: outcomeService,
		Activity: activityService,
		Tokens:   tokens,
		Revoker:  revocations,
		Checks: map[string]handler.DependencyCheck{
			"postgres": pool.Ping,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	})

	errCh := make(chan error, 1)
	go func() {
		addr := net.JoinHostPort("", cfg.Port)
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
