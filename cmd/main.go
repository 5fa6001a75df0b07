package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/Demma22/REMI-APP-sub000/internal/config"
	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/handler"
	"github.com/Demma22/REMI-APP-sub000/internal/health"
	"github.com/Demma22/REMI-APP-sub000/internal/host"
	"github.com/Demma22/REMI-APP-sub000/internal/infra/audit"
	"github.com/Demma22/REMI-APP-sub000/internal/infra/hoststore"
	"github.com/Demma22/REMI-APP-sub000/internal/infra/studentstore"
	"github.com/Demma22/REMI-APP-sub000/internal/observability"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/logging"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/metrics"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/middleware"
	"github.com/Demma22/REMI-APP-sub000/internal/service/exam"
	"github.com/Demma22/REMI-APP-sub000/internal/service/lecture"
	"github.com/Demma22/REMI-APP-sub000/internal/service/reconcile"
	"github.com/Demma22/REMI-APP-sub000/internal/service/resync"
	"github.com/Demma22/REMI-APP-sub000/internal/service/trigger"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "reminder-scheduling"
	}
	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:  env,
		LogLevel:     cfg.LogLevel,
		SamplingRate: 1.0,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	auditRecorder, err := audit.NewRecorder(ctx, audit.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize plan audit recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := auditRecorder.Close(); err != nil {
			slog.Warn("failed to close plan audit recorder", slog.String("error", err.Error()))
		}
	}()

	var redisClient *redis.Client
	var notifier host.Notifier

	switch cfg.HostBackend {
	case config.HostBackendMemory:
		mem := host.NewMemoryHost()
		// Registered once at startup; the handler itself holds no state.
		mem.SetReceivedHandler(func(r domain.ScheduledReminder) {
			slog.Info("reminder delivered",
				slog.String("category", r.Content.Data.Type.String()),
				slog.String("source_id", r.Content.Data.SourceID),
				slog.String("title", r.Content.Title),
			)
		})
		notifier = mem
		slog.Info("using in-memory notification host")

	default:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisotel.InstrumentTracing(redisClient); err != nil {
			slog.Error("failed to instrument redis tracing",
				slog.String("event", "redis.otel.tracing.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		if err := redisotel.InstrumentMetrics(redisClient); err != nil {
			slog.Error("failed to instrument redis metrics",
				slog.String("event", "redis.otel.metrics.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect redis",
				slog.String("event", "redis.connect.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()

		slog.Info("redis connected",
			slog.String("addr", cfg.Redis.Addr),
		)

		notifier = hoststore.New(redisClient)
	}

	triggerStrategy := trigger.NewStrategy(cfg.Trigger)
	reconciler := reconcile.NewReconciler(notifier, reminderMetrics)
	lecturePlanner := lecture.NewPlanner(notifier, triggerStrategy, reconciler, reminderMetrics)
	examPlanner := exam.NewPlanner(notifier, reconciler, reminderMetrics, cfg.Trigger.Location)

	remindersHandler := handler.NewRemindersHandler(lecturePlanner, examPlanner, reconciler, notifier, auditRecorder)

	var resyncService *resync.Service
	if cfg.StudentStoreURL != "" {
		storeClient := studentstore.NewClient(cfg.StudentStoreURL)
		resyncService = resync.NewService(storeClient, lecturePlanner, examPlanner, auditRecorder)
	}

	var cronRunner *cron.Cron
	if resyncService != nil && cfg.ResyncCron != "" {
		cronRunner = cron.New()
		_, err := cronRunner.AddFunc(cfg.ResyncCron, func() {
			resyncService.ResyncAll(ctx, cfg.ResyncUserIDs)
		})
		if err != nil {
			slog.Error("invalid resync cron expression",
				slog.String("spec", cfg.ResyncCron),
				slog.String("error", err.Error()),
			)
			return 1
		}
		cronRunner.Start()
		defer cronRunner.Stop()

		slog.Info("resync job scheduled",
			slog.String("spec", cfg.ResyncCron),
			slog.Int("user_count", len(cfg.ResyncUserIDs)),
		)
	}

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths: []string{"/health", "/health/live", "/health/ready"},
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/reminders/lectures", remindersHandler.HandleScheduleLectures)
		v1.POST("/reminders/exams", remindersHandler.HandleScheduleExams)
		v1.POST("/reminders/cancel", remindersHandler.HandleCancelByIdentities)
		v1.DELETE("/reminders", remindersHandler.HandleCancelAll)
		v1.GET("/reminders", remindersHandler.HandleListScheduled)

		if resyncService != nil {
			resyncHandler := handler.NewResyncHandler(resyncService)
			v1.POST("/reminders/resync", resyncHandler.HandleResync)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("platform", string(cfg.Trigger.Platform)),
			slog.String("host_backend", string(cfg.HostBackend)),
			slog.Int("horizon_weeks", cfg.Trigger.HorizonWeeks),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
