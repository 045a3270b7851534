// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/copilothub/internal/activity"
	"github.com/angelamos/copilothub/internal/admin"
	"github.com/angelamos/copilothub/internal/auth"
	"github.com/angelamos/copilothub/internal/cart"
	"github.com/angelamos/copilothub/internal/config"
	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/health"
	"github.com/angelamos/copilothub/internal/invoice"
	"github.com/angelamos/copilothub/internal/jump"
	"github.com/angelamos/copilothub/internal/message"
	"github.com/angelamos/copilothub/internal/middleware"
	"github.com/angelamos/copilothub/internal/project"
	"github.com/angelamos/copilothub/internal/rating"
	"github.com/angelamos/copilothub/internal/seed"
	"github.com/angelamos/copilothub/internal/server"
	"github.com/angelamos/copilothub/internal/session"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/task"
	"github.com/angelamos/copilothub/internal/ticket"
	"github.com/angelamos/copilothub/internal/user"
	"github.com/angelamos/copilothub/internal/views"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen,gocyclo // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	var db *core.Database

	var kv store.KV
	switch cfg.Storage.Driver {
	case "memory":
		kv = store.NewMemoryKV()
	case "redis":
		kv = store.NewRedisKV(redis.Client)
	case "postgres":
		db, err = core.NewDatabase(ctx, cfg.Database)
		if err != nil {
			return err
		}
		logger.Info("database connected",
			"max_open_conns", cfg.Database.MaxOpenConns,
		)

		pg := store.NewPostgresKV(db.DB)
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		kv = pg
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	logger.Info("record store ready",
		"driver", cfg.Storage.Driver,
		"namespace", cfg.Storage.Namespace,
	)

	if err := ensureKeyPair(cfg, logger); err != nil {
		return err
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized", "algorithm", "ES256")

	ns := cfg.Storage.Namespace

	usersColl := store.NewCollection[user.User](kv, ns, store.CollectionUsers)
	jumpsColl := store.NewCollection[jump.Jump](kv, ns, store.CollectionJumps)
	projectsColl := store.NewCollection[project.Project](kv, ns, store.CollectionProjects)
	tasksColl := store.NewCollection[task.Task](kv, ns, store.CollectionTasks)
	invoicesColl := store.NewCollection[invoice.Invoice](kv, ns, store.CollectionInvoices)
	messagesColl := store.NewCollection[message.Message](kv, ns, store.CollectionMessages)
	ticketsColl := store.NewCollection[ticket.Ticket](kv, ns, store.CollectionTickets)
	ratingsColl := store.NewCollection[rating.Rating](kv, ns, store.CollectionRatings)
	logsColl := store.NewCollection[activity.Entry](kv, ns, store.CollectionLogs)
	tokensColl := store.NewCollection[auth.RefreshToken](kv, ns, store.CollectionRefreshTokens)

	activitySvc := activity.NewService(logsColl, logger)
	sessionMgr := session.NewManager(kv, ns)

	userSvc := user.NewService(usersColl, projectsColl, tasksColl, sessionMgr, activitySvc)
	jumpSvc := jump.NewService(jumpsColl, projectsColl)
	projectSvc := project.NewService(projectsColl, tasksColl, userSvc, jumpSvc, activitySvc)
	taskSvc := task.NewService(tasksColl, projectSvc, userSvc)
	messageSvc := message.NewService(messagesColl, userSvc, projectSvc)
	invoiceSvc := invoice.NewService(invoicesColl)
	ticketSvc := ticket.NewService(ticketsColl)
	ratingSvc := rating.NewService(ratingsColl)
	cartSvc := cart.NewService(kv, ns)
	viewBuilder := views.NewBuilder(usersColl, jumpsColl, projectsColl, tasksColl)

	authRepo := auth.NewRepository(tokensColl)
	authSvc := auth.NewService(authRepo, jwtManager, userSvc, sessionMgr, logger)

	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(usersColl, jumpsColl, logger)
		if err := seeder.Run(ctx); err != nil {
			return err
		}
	}

	userHandler := user.NewHandler(userSvc)
	jumpHandler := jump.NewHandler(jumpSvc)
	projectHandler := project.NewHandler(projectSvc)
	taskHandler := task.NewHandler(taskSvc)
	messageHandler := message.NewHandler(messageSvc)
	invoiceHandler := invoice.NewHandler(invoiceSvc)
	ticketHandler := ticket.NewHandler(ticketSvc)
	ratingHandler := rating.NewHandler(ratingSvc)
	activityHandler := activity.NewHandler(activitySvc)
	cartHandler := cart.NewHandler(cartSvc)
	viewsHandler := views.NewHandler(viewBuilder)
	authHandler := auth.NewHandler(authSvc)

	checkers := map[string]health.Checker{"redis": redis}
	if db != nil {
		checkers["database"] = db
	}
	healthHandler := health.NewHandler(checkers)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Collections: []admin.Counter{
			usersColl, jumpsColl, projectsColl, tasksColl, invoicesColl,
			messagesColl, ticketsColl, ratingsColl, logsColl,
		},
		RedisStats: redis.PoolStats,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(jwtManager)
	adminOnly := middleware.RequireAdmin
	roleLimiter := middleware.RoleRateLimiter(
		redis.Client,
		middleware.DefaultRoleTiers,
	)

	router.Route("/v1", func(r chi.Router) {
		r.Use(roleLimiter)

		authHandler.RegisterRoutes(r, authenticator)

		userHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		jumpHandler.RegisterRoutes(r, authenticator)
		jumpHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		projectHandler.RegisterRoutes(r, authenticator)
		taskHandler.RegisterRoutes(r, authenticator)
		messageHandler.RegisterRoutes(r, authenticator)
		invoiceHandler.RegisterRoutes(r, authenticator)
		ticketHandler.RegisterRoutes(r, authenticator)
		ratingHandler.RegisterRoutes(r, authenticator)
		cartHandler.RegisterRoutes(r, authenticator)
		viewsHandler.RegisterRoutes(r, authenticator)
		activityHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}

	logger.Info("application stopped")
	return nil
}

// ensureKeyPair generates a development signing key pair when none exists.
// Production deployments must provision their own keys.
func ensureKeyPair(cfg *config.Config, logger *slog.Logger) error {
	if _, err := os.Stat(cfg.JWT.PrivateKeyPath); err == nil {
		return nil
	}

	if cfg.App.Environment == "production" {
		return fmt.Errorf(
			"JWT private key not found at %s",
			cfg.JWT.PrivateKeyPath,
		)
	}

	logger.Warn("generating development JWT key pair",
		"private_key", cfg.JWT.PrivateKeyPath,
	)

	return auth.GenerateKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
