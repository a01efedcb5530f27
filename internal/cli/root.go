package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/hr-helper/internal/config"
	"alfredoptarigan/hr-helper/internal/logger"
)

type configKeyType struct{}

var configKey = configKeyType{}

var debug bool

var rootCmd = &cobra.Command{
	Use:   "screen",
	Short: "Score and rank CV PDFs against a hiring rubric",
	Long: `screen extracts contact details, education, experience and skills
from CV PDFs, scores every candidate against a rubric and prints a ranking.`,
	SilenceUsage: true,
}

// Execute runs the root command with cfg available to every subcommand.
func Execute(ctx context.Context, cfg *config.Config) error {
	rootCmd.SetContext(context.WithValue(ctx, configKey, cfg))
	return rootCmd.Execute()
}

func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.Load()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.JSON, debug || cfg.Log.Debug)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(newRankCmd())
}
