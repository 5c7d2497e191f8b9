package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/veractbot/pkg/log"
)

// TelegramConfig holds the credentials for the Telegram transport. The bot
// is single-tenant: it answers only the account named by TELEGRAM_OWNER_ID
// and ignores everyone else.
type TelegramConfig struct {
	Token   string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID int64  `env:"TELEGRAM_OWNER_ID,required"`
}

// NewTelegramConfig reads the Telegram settings from the environment. Both
// values are required when the Telegram transport is enabled, so a missing
// one is fatal.
func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("telegram config incomplete")
	}
	return c
}
