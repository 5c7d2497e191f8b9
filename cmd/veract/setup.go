package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/veractbot/internal/config"
	"github.com/sandevgo/veractbot/internal/providers/llm"
	"github.com/sandevgo/veractbot/internal/service/command"
	"github.com/sandevgo/veractbot/internal/service/engine"
	"github.com/sandevgo/veractbot/internal/service/handler"
	"github.com/sandevgo/veractbot/internal/service/nlu"
	"github.com/sandevgo/veractbot/internal/storage/jsonfile"
	"github.com/sandevgo/veractbot/internal/transport/cli"
	"github.com/sandevgo/veractbot/internal/transport/telegram"
	"github.com/sandevgo/veractbot/pkg/log"
	"github.com/sandevgo/veractbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)

	// 2. Storage
	jsonfile.Seed(ctx, appCfg.GetProductsPath(), appCfg.GetSalesPath(), appCfg.GetVendorsPath())
	catalog := jsonfile.NewCatalog(appCfg.GetProductsPath())
	sales := jsonfile.NewSales(appCfg.GetSalesPath())
	vendors := jsonfile.NewVendors(appCfg.GetVendorsPath())

	// 3. LLM Provider
	aiProvider, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. NLU
	extractor := nlu.NewExtractor(aiProvider, llmCfg.ClassifierTemperature)

	// 5. Turn Engine
	eng := engine.New(extractor, engine.Handlers{
		Catalog:      handler.NewCatalog(catalog, appCfg),
		Sales:        handler.NewSales(sales, appCfg),
		Analytics:    handler.NewAnalytics(sales, catalog, appCfg),
		Vendor:       handler.NewVendor(vendors),
		General:      handler.NewGeneral(aiProvider, llmCfg.ChatTemperature),
		Confirmation: handler.NewConfirmation(catalog, sales),
	})
	sessions := engine.NewManager(eng)

	// 6. Slash Commands
	commands := command.New(command.NewCommands(sessions))

	// 7. Transports
	transports, err := initTransports(ctx, appCfg, sessions, commands)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	sessions *engine.Manager,
	commands *command.Router,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, sessions, commands)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(sessions, commands, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
