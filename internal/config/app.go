package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/veractbot/pkg/log"
)

// GetRuntimePath resolves the runtime directory before the env file is loaded,
// since the .env file itself lives inside it.
func GetRuntimePath() string {
	if p := os.Getenv("VERACT_RUNTIME_PATH"); p != "" {
		return p
	}
	return ".veract"
}

type AppConfig struct {
	RuntimePath string `env:"VERACT_RUNTIME_PATH" envDefault:".veract"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// How many records a search response lists before truncating.
	SearchResultLimit int `env:"SEARCH_RESULT_LIMIT" envDefault:"10"`

	// Default number of recommendations when the user does not ask for a
	// specific count.
	RecommendationLimit int `env:"RECOMMENDATION_LIMIT" envDefault:"5"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDataPath() string {
	return filepath.Join(c.RuntimePath, "data")
}

func (c AppConfig) GetProductsPath() string {
	return filepath.Join(c.GetDataPath(), "products.json")
}

func (c AppConfig) GetSalesPath() string {
	return filepath.Join(c.GetDataPath(), "sales.json")
}

func (c AppConfig) GetVendorsPath() string {
	return filepath.Join(c.GetDataPath(), "vendors.json")
}
