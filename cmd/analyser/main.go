package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Fasterbrick/CLI-Analyser/internal/analytics"
	"github.com/Fasterbrick/CLI-Analyser/internal/config"
	"github.com/Fasterbrick/CLI-Analyser/internal/dataset"
	"github.com/Fasterbrick/CLI-Analyser/internal/diag"
	"github.com/Fasterbrick/CLI-Analyser/internal/report"
	"github.com/Fasterbrick/CLI-Analyser/internal/scheduler"
	"github.com/Fasterbrick/CLI-Analyser/internal/source"
)

const (
	appName = "cli-analyser"
	version = "v1.1.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Descriptive analytics over OHLCV text files",
		Version: version,
		Long: `cli-analyser ingests time-ordered OHLCV records from delimited text
files, validates them line by line, and prints a combined analytics report:
price extremes, weekday/hour strength, volume distribution, momentum,
volatility, price zones, intraday stats and rule-based recommendations.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "path to config file")

	analyseCmd := &cobra.Command{
		Use:   "analyse [files...]",
		Short: "Analyse OHLCV files and print a report",
		Long:  "Parses the given OHLCV files (or the configured input pattern when no files are listed) and prints the combined analytics report.",
		RunE:  runAnalyse,
	}
	analyseCmd.Flags().Int("window", 0, "momentum window size (overrides config)")
	analyseCmd.Flags().Int("zones", 0, "price zone count (overrides config)")
	analyseCmd.Flags().String("format", "", "output format: text or json (overrides config)")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the analysis on a cron schedule",
		Long:  "Repeats the configured analysis on the watch cron schedule until interrupted.",
		RunE:  runWatch,
	}

	rootCmd.AddCommand(analyseCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetInt("window"); v > 0 {
		cfg.Analysis.MomentumWindow = v
	}
	if v, _ := cmd.Flags().GetInt("zones"); v > 0 {
		cfg.Analysis.ZoneCount = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Output.Format = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return analyseOnce(cfg, args)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sched := scheduler.New(func() error {
		return analyseOnce(cfg, nil)
	}, log.Logger)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	log.Info().Str("cron", cfg.Watch.Cron).Str("pattern", cfg.Input.Pattern).
		Msg("watching, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	return nil
}

// analyseOnce runs one full pass: discover sources, build the dataset,
// compute the report and write it to stdout.
func analyseOnce(cfg *config.Config, files []string) error {
	sources := files
	if len(sources) == 0 {
		var err error
		sources, err = source.Discover(cfg.Input.Pattern)
		if err != nil {
			return err
		}
		log.Info().Str("pattern", cfg.Input.Pattern).Int("sources", len(sources)).
			Msg("discovered input files")
	}

	started := time.Now()

	builder := dataset.NewBuilder(source.NewFileReader(), diag.NewLogSink(log.Logger))
	res, err := builder.Build(sources)
	if err != nil {
		return err
	}
	log.Info().
		Int("records", len(res.Records)).
		Int("parse_failures", len(res.ParseFailures)).
		Int("source_failures", len(res.SourceFailures)).
		Msg("dataset built")

	rep := analytics.Analyze(res.Records, analytics.Options{
		MomentumWindow: cfg.Analysis.MomentumWindow,
		ZoneCount:      cfg.Analysis.ZoneCount,
	})
	log.Info().Dur("elapsed", time.Since(started)).Msg("analysis complete")

	var out string
	if cfg.Output.Format == "json" {
		out, err = report.FormatJSON(rep)
		if err != nil {
			return err
		}
	} else {
		out = report.FormatText(rep)
	}

	_, err = fmt.Fprintln(os.Stdout, out)
	return err
}
