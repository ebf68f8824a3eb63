package main

import (
	"context"
	"io"
	"log/slog"

	rediscache "github.com/SscSPs/takehome_app/internal/adapters/cache/redis"
	"github.com/SscSPs/takehome_app/internal/adapters/ratesapi"
	portsrepo "github.com/SscSPs/takehome_app/internal/core/ports/repositories"
	"github.com/SscSPs/takehome_app/internal/platform/config"
	"github.com/SscSPs/takehome_app/pkg/cache"
	"github.com/spf13/cobra"
)

// All linker flags may be set at build time.
var (
	version = "dev"
	commit  = "none"
)

// newRootCmd is the command-line entrypoint for all other commands.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "takehome_backend",
		Short:         "Take-home pay calculator, exchange rates and profile completion scoring.",
		Version:       version + " (" + commit + ")",
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().Bool("no-color", false, "disable coloured output")

	root.AddCommand(
		newServeCmd(),
		newCalcCmd(),
		newScoreCmd(),
		newRatesCmd(),
	)
	return root
}

// newLogger creates the JSON logger shared by every command.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// buildRateSource returns the latest-rates client, fronted by the shared
// redis cache when REDIS_URL is configured. An unreachable redis is logged
// and skipped. The returned cleanup is never nil.
func buildRateSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RateSource, func()) {
	client := ratesapi.NewClient(cfg.RatesAPIURL, cfg.RatesFetchTimeout)
	if cfg.RedisURL == "" {
		return client, func() {}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("Shared rate cache unavailable, fetching directly", slog.String("error", err.Error()))
		return client, func() {}
	}
	source := rediscache.NewCachedRateSource(client, rediscache.NewRateCache(redisClient), cfg.RatesCacheTTL, logger)
	return source, func() { cache.CloseRedisClient(redisClient) }
}

func useColors(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return !noColor
}
