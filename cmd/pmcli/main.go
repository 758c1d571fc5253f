package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"projectmanager/internal/cli"
	"projectmanager/internal/config"
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

	app := cli.NewApp(cfg)
	root := cli.NewRootCmd(app)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
