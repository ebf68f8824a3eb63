package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/cli"
	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/SscSPs/takehome_app/internal/core/services"
	"github.com/SscSPs/takehome_app/internal/dto"
	"github.com/SscSPs/takehome_app/internal/platform/config"
	"github.com/spf13/cobra"
)

// loadServices wires the service container for a one-shot command. Unless
// offline, rates are fetched once before returning.
func loadServices(cmd *cobra.Command, offline bool) (*portssvc.ServiceContainer, func(), error) {
	logger := newLogger(cmd.ErrOrStderr(), slog.LevelWarn)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	source, cleanup := buildRateSource(ctx, cfg, logger)
	container := services.NewServiceContainer(cfg, source, logger)
	if !offline {
		container.ExchangeRate.Refresh(ctx)
	}
	return container, cleanup, nil
}

func newCalcCmd() *cobra.Command {
	var (
		req     dto.CalculateRequest
		offline bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate take-home pay for one set of inputs.",
		Example: `  takehome_backend calc --rate 50 --hours 160 --fee 20 --tax 25
  takehome_backend calc --rate 4000 --from INR --to EUR --hours 160 --fee 10 --tax 30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, cleanup, err := loadServices(cmd, offline)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := container.Calculator.Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return cli.WriteCalculation(cmd.OutOrStdout(), resp, cli.NewPalette(useColors(cmd)))
		},
	}
	cmd.Flags().StringVar(&req.HourlyRate, "rate", "", "hourly rate in the input currency")
	cmd.Flags().StringVar(&req.HoursWorked, "hours", "", "hours worked")
	cmd.Flags().StringVar(&req.PlatformFee, "fee", "", "platform fee percent")
	cmd.Flags().StringVar(&req.Tax, "tax", "", "tax percent, applied after the fee")
	cmd.Flags().StringVar(&req.InputCurrency, "from", "USD", "currency of the hourly rate")
	cmd.Flags().StringVar(&req.OutputCurrency, "to", "USD", "currency of the results")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the built-in rates instead of fetching")
	return cmd
}

func newRatesCmd() *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the exchange rate table.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, cleanup, err := loadServices(cmd, offline)
			if err != nil {
				return err
			}
			defer cleanup()

			resp := dto.ToExchangeRatesResponse(container.ExchangeRate.Snapshot())
			return cli.WriteRates(cmd.OutOrStdout(), resp, cli.NewPalette(useColors(cmd)))
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "show the built-in rates instead of fetching")
	return cmd
}

func newScoreCmd() *cobra.Command {
	var (
		file     string
		reported int
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score the completion of a profile snapshot.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open profile: %w", err)
			}
			defer f.Close()

			profile, err := cli.ReadProfile(f)
			if err != nil {
				return err
			}

			req := dto.ScoreProfileRequest{Profile: profile}
			if cmd.Flags().Changed("reported") {
				if reported < 0 || reported > 100 {
					return fmt.Errorf("%w: --reported must be between 0 and 100", apperrors.ErrValidation)
				}
				req.ReportedCompletion = &reported
			}

			newLogger(cmd.ErrOrStderr(), slog.LevelWarn)
			resp, err := services.NewProfileService().ScoreProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			return cli.WriteCompletion(cmd.OutOrStdout(), resp, cli.NewPalette(useColors(cmd)))
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a profile JSON snapshot")
	cmd.Flags().IntVar(&reported, "reported", 0, "completion percentage reported by the profile backend")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
