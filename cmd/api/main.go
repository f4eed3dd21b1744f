package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/config"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/talent-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/cron"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/dummyjson"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/repository/postgresql"
	analyticsService "github.com/cmlabs-hris/talent-dashboard-go/internal/service/analytics"
	serviceAuth "github.com/cmlabs-hris/talent-dashboard-go/internal/service/auth"
	insightService "github.com/cmlabs-hris/talent-dashboard-go/internal/service/insight"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/service/roster"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logLevel := parseLogLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "talent-dashboard"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source employee.EmployeeSource
	switch cfg.Source.Type {
	case config.SourcePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: int32(cfg.Database.MaxConns)})
		if err != nil {
			slog.Error("Error connecting to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		employeeRepo := postgresql.NewEmployeeRepository(db)
		if err := employeeRepo.EnsureSchema(ctx); err != nil {
			slog.Error("Error preparing employees table", "error", err)
			os.Exit(1)
		}
		source = employeeRepo
	case config.SourceDummyJSON:
		source = dummyjson.NewClient(dummyjson.Options{
			BaseURL:           cfg.Source.BaseURL,
			Timeout:           cfg.Source.Timeout,
			RequestsPerSecond: cfg.Source.RequestsPerSecond,
			Burst:             cfg.Source.Burst,
		}, logger)
	}
	slog.Info("Employee source selected", "type", cfg.Source.Type)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()
	registry := roster.NewRegistry(source)

	rosterSvc := roster.NewRosterService(registry, hub)
	authSvc, err := serviceAuth.NewAuthService(auth.DemoCredentials, JWTService, rosterSvc)
	if err != nil {
		slog.Error("Error creating auth service", "error", err)
		os.Exit(1)
	}
	insightSvc := insightService.NewInsightService(rosterSvc)
	analyticsSvc := analyticsService.NewAnalyticsService(registry)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Logger:         logger,
		LogLevel:       logLevel,
	}, JWTService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(rosterSvc, insightSvc),
		Bookmark:  appHTTP.NewBookmarkHandler(rosterSvc),
		Analytics: appHTTP.NewAnalyticsHandler(analyticsSvc),
		Event:     appHTTP.NewEventHandler(hub, JWTService),
	})

	scheduler := cron.NewScheduler()
	cron.NewSessionJobs(registry, JWTService, cfg.Session.IdleTimeout).Register(scheduler, cfg.Session.SweepInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Open event streams end when the process is asked to stop
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("Shutting down server...")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
