package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/helpdesk/sla-ticket-service/internal/api/http"
	"github.com/helpdesk/sla-ticket-service/internal/api/http/handlers"
	"github.com/helpdesk/sla-ticket-service/internal/clock"
	"github.com/helpdesk/sla-ticket-service/internal/config"
	"github.com/helpdesk/sla-ticket-service/internal/events"
	"github.com/helpdesk/sla-ticket-service/internal/observability"
	"github.com/helpdesk/sla-ticket-service/internal/persistence"
	"github.com/helpdesk/sla-ticket-service/internal/repository"
	"github.com/helpdesk/sla-ticket-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Connected() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var userRepo repository.UserRepository
	var ticketRepo repository.TicketRepository
	if pg.Connected() {
		userRepo = repository.NewUserRepository(pg.PoolHandle())
		ticketRepo = repository.NewTicketRepository(pg.PoolHandle())
	} else {
		userRepo = repository.NewMemoryUserRepository()
		ticketRepo = repository.NewMemoryTicketRepository()
	}

	sysClock := clock.System{}
	if cfg.App.SeedSampleData {
		if err := persistence.SeedSampleData(ctx, userRepo, ticketRepo, sysClock, logger); err != nil {
			logger.Fatal("failed to seed sample data", zap.Error(err))
		}
	}

	dispatcher := events.NewInMemoryDispatcher()
	observability.NewEventLogger(logger).RegisterHandlers(dispatcher)

	assignmentService := service.NewAssignmentService(service.AssignmentDependencies{
		TicketRepo: ticketRepo,
		UserRepo:   userRepo,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		UserRepo:   userRepo,
		Assignment: assignmentService,
		Clock:      sysClock,
		Dispatcher: dispatcher,
	})
	analyticsService := service.NewAnalyticsService(ticketRepo)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Tickets: handlers.NewTicketsHandler(ticketService, analyticsService, userRepo),
		Users:   handlers.NewUsersHandler(userRepo),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
