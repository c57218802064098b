package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/db"
	httpadapter "github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/handlers"
	httpmiddleware "github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/middleware"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/remote"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/app/service"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/config"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/scheduler"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/pkg/translator"
)

// purgeHour is when the daily retention purge runs, in the configured
// timezone. Off-peak on purpose.
const (
	purgeHour   = 3
	purgeMinute = 0
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageVi, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskClient := remote.NewTaskClient(cfg.TaskServiceURL, cfg.RemoteTimeout)
	projectClient := remote.NewProjectClient(cfg.ProjectServiceURL, cfg.RemoteTimeout)
	teamClient := remote.NewTeamClient(cfg.TeamServiceURL, cfg.RemoteTimeout)
	authClient := remote.NewAuthClient(cfg.AuthServiceURL, cfg.RemoteTimeout)

	activityRepository := dbadapter.NewActivityRepository(db)
	activityService := service.NewActivityService(
		activityRepository,
		taskClient,
		projectClient,
		teamClient,
		authClient,
		time.Duration(cfg.ActivityRetentionDays)*24*time.Hour,
	)

	location, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC",
			zap.String("timezone", cfg.ReminderTimezone), zap.Error(err))
		location = time.UTC
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.NewDaily("activity-purge", purgeHour, purgeMinute, location, func(ctx context.Context) {
		deleted, err := activityService.PurgeExpired(ctx)
		if err != nil {
			zap.L().Error("activity purge failed", zap.Error(err))
			return
		}
		zap.L().Info("activity purge done", zap.Int64("deleted", deleted))
	}).Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	activityHandler := handlers.NewActivityHandler(activityService)
	httpadapter.RegisterActivityRoutes(r, cfg.JwtSecret, healthHandler, activityHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting activity service", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
