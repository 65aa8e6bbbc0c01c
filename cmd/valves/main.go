package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/valvenet/config"
	"github.com/katalvlaran/valvenet/metrics"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

var (
	cfg *config.Config
	log *logrus.Logger

	flagConfig      string
	flagLogLevel    string
	flagLogFormat   string
	flagMetricsFile string
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("valves version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("valves version %s-dev", version)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "valves",
		Short:   "Time-budgeted reward maximization over a valve network",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				loaded.LogFormat = flagLogFormat
			}
			cfg = loaded

			log, err = newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
			if err != nil {
				return err
			}
			log.AddHook(runIDHook(uuid.NewString()))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flagMetricsFile == "" {
				return nil
			}
			if err := metrics.WriteFile(flagMetricsFile); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
			log.WithField("path", flagMetricsFile).Debug("metrics written")
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file (env overrides: VALVES_*)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: trace|debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "auto", "Log format: auto|text|json")
	rootCmd.PersistentFlags().StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")

	rootCmd.AddCommand(newSingleCmd())
	rootCmd.AddCommand(newDualCmd())
	rootCmd.AddCommand(newDistancesCmd())

	return rootCmd
}

// newLogger builds a logrus logger. "auto" picks text on a terminal and
// JSON otherwise.
func newLogger(level, format string, out io.Writer, tty bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "auto":
		if tty {
			l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		} else {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
	default:
		return nil, fmt.Errorf("unsupported log format: %s (use auto, text or json)", format)
	}
	return l, nil
}

// runIDHook tags every entry with the run identifier.
type runIDHook string

func (h runIDHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h runIDHook) Fire(e *logrus.Entry) error {
	e.Data["run_id"] = string(h)
	return nil
}
