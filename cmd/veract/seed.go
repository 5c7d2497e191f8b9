package main

import (
	"github.com/sandevgo/veractbot/internal/config"
	"github.com/sandevgo/veractbot/internal/storage/jsonfile"
	"github.com/sandevgo/veractbot/pkg/log"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the data files with sample records",
	Long:  `Writes sample products, sales and vendors into the runtime data directory. Existing data is kept when it already meets the minimum record counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			logger.Fatal().Err(err).Msg("failed to init env")
		}

		cfg := config.NewAppConfig(ctx)
		jsonfile.Seed(ctx, cfg.GetProductsPath(), cfg.GetSalesPath(), cfg.GetVendorsPath())
		logger.Info().Str("path", cfg.GetDataPath()).Msg("sample data ready")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
