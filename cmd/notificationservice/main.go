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
	authClient := remote.NewAuthClient(cfg.AuthServiceURL, cfg.RemoteTimeout)
	mailClient := remote.NewMailClient(cfg.MailServiceURL, cfg.MailTimeout)

	notificationRepository := dbadapter.NewNotificationRepository(db)
	notificationService := service.NewNotificationService(notificationRepository, taskClient, authClient, mailClient)

	location, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		logger.Warn("unknown reminder timezone, falling back to UTC",
			zap.String("timezone", cfg.ReminderTimezone), zap.Error(err))
		location = time.UTC
	}

	reminderService := service.NewReminderService(taskClient, notificationRepository, notificationService, location)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.NewDaily("due-date-reminder", cfg.ReminderHour, cfg.ReminderMinute, location, func(ctx context.Context) {
		// Sweep logs its own failures; the scheduler only needs the signal.
		_ = reminderService.Sweep(ctx)
	}).Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	httpadapter.RegisterNotificationRoutes(r, cfg.JwtSecret, healthHandler, notificationHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting notification service", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
