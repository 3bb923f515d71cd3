package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicdesk/clinic-portal/internal/api"
	"github.com/clinicdesk/clinic-portal/internal/api/handler"
	"github.com/clinicdesk/clinic-portal/internal/api/view"
	"github.com/clinicdesk/clinic-portal/internal/core/guard"
	"github.com/clinicdesk/clinic-portal/internal/core/ports"
	"github.com/clinicdesk/clinic-portal/internal/core/service"
	mongodb "github.com/clinicdesk/clinic-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/clinicdesk/clinic-portal/internal/infrastructure/db/redis"
	"github.com/clinicdesk/clinic-portal/internal/infrastructure/memory"
	"github.com/clinicdesk/clinic-portal/internal/infrastructure/queue"
	"github.com/clinicdesk/clinic-portal/internal/pkg/config"
	"github.com/clinicdesk/clinic-portal/pkg/logger"
)

const (
	serviceName     = "clinic-portal"
	shutdownTimeout = 10 * time.Second
	auditBuffer     = 1000
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func loadConfig(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: serviceName,
		Env:     cfg.Env,
	})
	return cfg, log, nil
}

func runServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var checks []handler.DependencyCheck

	var mongoDB *mongo.Database
	if cfg.UsesMongo() {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		mongoDB = db
		checks = append(checks, handler.DependencyCheck{Name: "mongo", Ping: mongodb.Ping(db)})
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")
	}

	var directory ports.IdentityDirectory = memory.NewStaffDirectory(memory.DefaultStaff())
	if cfg.Session.Identity == config.IdentityMongo {
		directory = mongodb.NewStaffDirectory(mongoDB)
	}

	var sessionRepo ports.SessionRepository = memory.NewSessionRepository()
	if cfg.UsesRedis() {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		sessionRepo = redisdb.NewSessionRepository(client)
		checks = append(checks, handler.DependencyCheck{Name: "redis", Ping: redisdb.Ping(client)})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	var auditRepo ports.AuditRepository = memory.NewAuditRepository(auditBuffer, logger.Component("audit"))
	if cfg.Audit.Sink == config.AuditMongo {
		auditRepo = mongodb.NewAuditRepository(mongoDB)
	}
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, service.NewAuditService(auditRepo, log), log)
	dispatcher.Start(ctx)

	secret := cfg.Session.Secret
	if secret == "" {
		secret = uuid.NewString()
		log.Warn().Msg("SESSION_SECRET not set, using an ephemeral secret; sessions will not survive a restart")
	}

	labTests := service.NewLabTestService(memory.NewLabTestRepository(memory.MockLabTests()), logger.Component("lab-tests"))

	g, err := guard.New(guard.DefaultRoutes())
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Sessions:     service.NewSessionService(directory, sessionRepo, dispatcher, cfg.Session.LoginDelay, logger.Component("session")),
		Tokens:       service.NewSessionTokens(secret),
		Guard:        g,
		Pages:        view.NewRenderer(labTests),
		LabTests:     labTests,
		Audit:        dispatcher,
		Checks:       checks,
		SecureCookie: cfg.Session.SecureCookie,
		Logger:       log,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
