package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "projectmanager/internal/adapter/db"
	"projectmanager/internal/config"
	"projectmanager/internal/server"
	"projectmanager/internal/server/handlers"
	servermiddleware "projectmanager/internal/server/middleware"
	"projectmanager/pkg/translator"
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

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.Translations,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguagePl},
	})

	db, err := dbadapter.ConnectDB(cfg.SQLitePath)
	if err != nil {
		logger.Fatal("failed to open sqlite database", zap.String("path", cfg.SQLitePath), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close sqlite database", zap.Error(err))
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery(), servermiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	server.RegisterRoutes(
		r,
		handlers.NewHealthHandler(db),
		handlers.NewUserHandler(dbadapter.NewUserRepository(db)),
		handlers.NewProjectHandler(dbadapter.NewProjectRepository(db)),
		handlers.NewTaskHandler(dbadapter.NewTaskRepository(db)),
	)

	addr := ":" + cfg.AppPort
	logger.Info("starting mock api", zap.String("addr", addr), zap.String("db", cfg.SQLitePath))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
