package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/db"
	httpadapter "github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/handlers"
	httpmiddleware "github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/middleware"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/remote"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/app/service"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/config"
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

	projectClient := remote.NewProjectClient(cfg.ProjectServiceURL, cfg.RemoteTimeout)
	teamClient := remote.NewTeamClient(cfg.TeamServiceURL, cfg.RemoteTimeout)
	authClient := remote.NewAuthClient(cfg.AuthServiceURL, cfg.RemoteTimeout)
	activityClient := remote.NewActivityClient(cfg.ActivityServiceURL, cfg.RemoteTimeout)

	taskRepository := dbadapter.NewTaskRepository(db)
	taskService := service.NewTaskService(
		taskRepository,
		projectClient,
		teamClient,
		authClient,
		service.NewActivityLogger(activityClient),
	)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterTaskRoutes(r, cfg.JwtSecret, healthHandler, taskHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting task service", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
