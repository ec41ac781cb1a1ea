package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "github.com/alumnet-dev/alumnet-api/api/swagger"
	"github.com/alumnet-dev/alumnet-api/internal/handler"
	"github.com/alumnet-dev/alumnet-api/internal/middleware"
	"github.com/alumnet-dev/alumnet-api/internal/models"
	"github.com/alumnet-dev/alumnet-api/internal/repository"
	"github.com/alumnet-dev/alumnet-api/internal/service"
	"github.com/alumnet-dev/alumnet-api/pkg/cache"
	"github.com/alumnet-dev/alumnet-api/pkg/config"
	"github.com/alumnet-dev/alumnet-api/pkg/database"
	"github.com/alumnet-dev/alumnet-api/pkg/jobs"
	"github.com/alumnet-dev/alumnet-api/pkg/logger"
	corsmiddleware "github.com/alumnet-dev/alumnet-api/pkg/middleware/cors"
	reqidmiddleware "github.com/alumnet-dev/alumnet-api/pkg/middleware/requestid"
	"github.com/alumnet-dev/alumnet-api/pkg/storage"
)

// @title AlumNet API
// @version 1.0.0
// @description Alumni network platform backend with admin analytics
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()
	client, db, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		logr.Sugar().Fatalw("mongo connection failed", "error", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = client.Disconnect(shutdownCtx)
	}()

	var cacheRepo service.CacheRepository
	cacheEnabled := false
	if cfg.Analytics.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, serving without cache", "error", err)
		} else {
			repo := repository.NewCacheRepository(redisClient)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
			cacheEnabled = true
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Analytics.CacheTTL, logr, cacheEnabled)

	userRepo := repository.NewUserRepository(db)
	alumniRepo := repository.NewAlumniRepository(db)
	eventRepo := repository.NewEventRepository(db)
	jobRepo := repository.NewJobRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	contactRepo := repository.NewContactRepository(db)
	loginRepo := repository.NewLoginRepository(db)

	userAnalytics := service.NewUserAnalyticsService(userRepo, cacheSvc, logr, cfg.Analytics.BatchFloor)
	alumniAnalytics := service.NewAlumniAnalyticsService(alumniRepo, userAnalytics, cacheSvc, logr, cfg.Analytics.TopLimit)
	eventAnalytics := service.NewEventAnalyticsService(eventRepo, cacheSvc, logr)
	jobAnalytics := service.NewJobAnalyticsService(jobRepo, userRepo, cacheSvc, logr, cfg.Analytics.TopLimit)
	referralAnalytics := service.NewReferralAnalyticsService(referralRepo, userRepo, cacheSvc, logr, cfg.Analytics.TopLimit)
	contactAnalytics := service.NewContactAnalyticsService(contactRepo, cacheSvc, logr)
	dashboard := service.NewDashboardService(service.DashboardServiceParams{
		Users:     userAnalytics,
		Events:    eventAnalytics,
		Referrals: referralAnalytics,
		Jobs:      jobAnalytics,
		Logins:    loginRepo,
		Cache:     cacheSvc,
		Metrics:   metricsSvc,
		Logger:    logr,
	})

	archiveStore, err := storage.NewLocalStore(cfg.Export.Dir)
	if err != nil {
		logr.Sugar().Fatalw("export storage init failed", "error", err)
	}
	signingSecret := cfg.Export.SigningSecret
	if signingSecret == "" {
		signingSecret = cfg.JWT.Secret
	}
	exportSigner := storage.NewTokenSigner(signingSecret, cfg.Export.SignedURLTTL)
	archiveWorker := service.NewExportArchiveWorker(archiveStore, logr)
	exportQueue := jobs.NewQueue("export-archive", archiveWorker.Handle, jobs.Config{
		Workers: cfg.Export.Workers,
		Logger:  logr,
	})
	exportQueue.Start(context.Background())
	defer exportQueue.Stop()

	exports := service.NewExportService(service.ExportServiceParams{
		Rollups:         userAnalytics,
		Queue:           exportQueue,
		Signer:          exportSigner,
		Archive:         archiveStore,
		RetentionTTL:    cfg.Export.RetentionTTL,
		CleanupInterval: cfg.Export.CleanupInterval,
		Logger:          logr,
	})
	exports.StartCleanup(context.Background())
	lists := service.NewListService(userRepo, eventRepo, jobRepo, service.ListConfig{
		DefaultPageSize: cfg.Lists.DefaultPageSize,
		MaxPageSize:     cfg.Lists.MaxPageSize,
	})
	tokens := service.NewTokenService(cfg.JWT.Secret)

	analyticsHandler := handler.NewAnalyticsHandler(handler.AnalyticsHandlerParams{
		Dashboard: dashboard,
		Users:     userAnalytics,
		Alumni:    alumniAnalytics,
		Events:    eventAnalytics,
		Jobs:      jobAnalytics,
		Referrals: referralAnalytics,
		Contacts:  contactAnalytics,
	})
	exportHandler := handler.NewExportHandler(exports)
	directoryHandler := handler.NewDirectoryHandler(lists)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, mongoPinger{client: client})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(tokens))
	{
		api.GET("/users", directoryHandler.Users)
		api.GET("/events", directoryHandler.Events)
		api.GET("/jobs", directoryHandler.Jobs)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/dashboard", analyticsHandler.Dashboard)
			admin.GET("/users-analytics", analyticsHandler.Users)
			admin.GET("/alumni-analytics", analyticsHandler.Alumni)
			admin.GET("/events-analytics", analyticsHandler.Events)
			admin.GET("/jobs-analytics", analyticsHandler.Jobs)
			admin.GET("/referrals-analytics", analyticsHandler.Referrals)
			admin.GET("/contacts-analytics", analyticsHandler.Contacts)
			admin.GET("/analytics-export", exportHandler.Export)
			admin.GET("/analytics-export/downloads/:token", exportHandler.Download)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
