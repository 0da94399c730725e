package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	trendline "github.com/aouyang1/go-trendline"
	"github.com/aouyang1/go-trendline/climate"
	"github.com/aouyang1/go-trendline/config"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	seed       uint64
	horizons   []float64
	variables  []string
	plotPath   string
	modelPath  string
	logLevel   string
	cpuProfile string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "climatetrend",
		Short: "Fit and extrapolate linear trends of synthetic yearly climate series",
		Example: `
  # Default run for Brno, 1900-2023, horizons of 10, 100 and 1000 years
  climatetrend

  # Temperature only with a fixed seed and an html chart page
  climatetrend --variables temperature --seed 42 --plot climate.html

  # Custom horizons and a json model dump
  climatetrend --horizons 5,50,500 --model model.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			if f.cpuProfile != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(f.cpuProfile), profile.Quiet).Stop()
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a yaml config file")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed for the synthetic series, 0 draws a random seed")
	cmd.Flags().Float64SliceVar(&f.horizons, "horizons", nil, "Comma-separated forward offsets in years (default 10,100,1000)")
	cmd.Flags().StringSliceVar(&f.variables, "variables", nil, "Comma-separated variables to forecast (temperature,precipitation,wind_speed)")
	cmd.Flags().StringVar(&f.plotPath, "plot", "", "Write an html chart page to this path")
	cmd.Flags().StringVar(&f.modelPath, "model", "", "Write the fitted models as json to this path")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.cpuProfile, "cpuprofile", "", "Write a cpu profile into this directory")
	return cmd
}

// resolveConfig applies flags that were explicitly set on top of the loaded configuration
func resolveConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	flagSet := cmd.Flags()
	if flagSet.Changed("seed") {
		cfg.Generate.Seed = f.seed
	}
	if flagSet.Changed("horizons") {
		cfg.Horizons = f.horizons
	}
	if flagSet.Changed("variables") {
		cfg.Variables = f.variables
	}
	if flagSet.Changed("plot") {
		cfg.PlotPath = f.plotPath
	}
	if flagSet.Changed("model") {
		cfg.ModelPath = f.modelPath
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration, %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, out, errOut io.Writer) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	vars, err := climate.SelectVariables(climate.DefaultVariables(), cfg.Variables)
	if err != nil {
		return err
	}

	ds, err := climate.Generate(&cfg.Generate, vars)
	if err != nil {
		return fmt.Errorf("unable to generate climate data, %w", err)
	}
	logger.Debug("generated climate data",
		"location", ds.Location,
		"years", len(ds.Years),
		"variables", len(vars),
		"seed", cfg.Generate.Seed,
	)

	e, err := trendline.New(cfg.ExtrapolatorOptions())
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	forecasts, err := climate.Forecast(ctx, ds, e, cfg.Horizons)
	if err != nil {
		return err
	}
	models := make([]trendline.Model, 0, len(forecasts))
	for _, fc := range forecasts {
		logger.Debug("fit trend line",
			"variable", fc.Variable.Name,
			"slope", fc.Results.Slope,
			"intercept", fc.Results.Intercept,
		)
		models = append(models, fc.Model(e))
	}
	if level <= slog.LevelDebug {
		for _, m := range models {
			if err := m.TablePrint(errOut, "", "  "); err != nil {
				return fmt.Errorf("unable to print model, %w", err)
			}
		}
	}

	if err := climate.Report(out, ds.Location, forecasts); err != nil {
		return fmt.Errorf("unable to write report, %w", err)
	}

	if cfg.PlotPath != "" {
		if err := writeFile(cfg.PlotPath, func(w io.Writer) error {
			return climate.PlotReport(w, ds, forecasts)
		}); err != nil {
			return fmt.Errorf("unable to write plot, %w", err)
		}
		logger.Info("wrote plot", "path", cfg.PlotPath)
	}

	if cfg.ModelPath != "" {
		if err := writeFile(cfg.ModelPath, func(w io.Writer) error {
			return trendline.WriteModels(w, models)
		}); err != nil {
			return fmt.Errorf("unable to write models, %w", err)
		}
		logger.Info("wrote models", "path", cfg.ModelPath)
	}
	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
