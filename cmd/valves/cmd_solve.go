package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/parser"
	"github.com/katalvlaran/valvenet/partition"
	"github.com/katalvlaran/valvenet/solver"
)

type solveFlags struct {
	start      string
	budget     uint32
	format     string
	strategy   string
	exactLimit int
	iterations int
	restarts   int
	seed       int64
	workers    int
}

func newSingleCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "single <input>",
		Short: "Best score for one agent",
		Long: `Find the activation order that releases the most pressure for a single agent.

Examples:
  valves single input.txt
  valves single input.txt --budget 30 --start AA --format json
  cat input.txt | valves single -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applySolveFlags(cmd, &f)
			s, err := loadSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rep, err := s.Single(cmd.Context(), cfg.Start, cfg.TimeBudget)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), rep, f.format)
		},
	}
	addCommonFlags(cmd, &f)
	return cmd
}

func newDualCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "dual <input>",
		Short: "Best combined score for two independent agents",
		Long: `Split the reward nodes between two agents that share a start node and
a per-agent budget, maximizing the summed score.

Examples:
  valves dual input.txt
  valves dual input.txt --strategy exact --workers 8
  valves dual input.txt --strategy improve --restarts 16 --iterations 5000 --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applySolveFlags(cmd, &f)
			opts, err := cfg.PartitionOptions()
			if err != nil {
				return err
			}
			s, err := loadSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rep, err := s.Dual(cmd.Context(), cfg.Start, cfg.DualBudget, opts...)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), rep, f.format)
		},
	}
	addCommonFlags(cmd, &f)
	cmd.Flags().StringVar(&f.strategy, "strategy", "auto", "Split strategy: auto|exact|improve")
	cmd.Flags().IntVar(&f.exactLimit, "exact-limit", partition.DefaultExactLimit, "Largest active set auto solves exactly")
	cmd.Flags().IntVar(&f.iterations, "iterations", partition.DefaultIterations, "Moves per restart (improve)")
	cmd.Flags().IntVar(&f.restarts, "restarts", partition.DefaultRestarts, "Random restarts (improve)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed (improve); 0 uses the fixed default")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Worker goroutines (default: config or GOMAXPROCS)")
	return cmd
}

func addCommonFlags(cmd *cobra.Command, f *solveFlags) {
	cmd.Flags().StringVar(&f.start, "start", "AA", "Start label")
	cmd.Flags().Uint32Var(&f.budget, "budget", 0, "Time budget per agent (default: config, 30 single / 26 dual)")
	cmd.Flags().StringVarP(&f.format, "format", "o", "text", "Output format: text|json|yaml")
}

// applySolveFlags copies explicitly set flags over the loaded config.
func applySolveFlags(cmd *cobra.Command, f *solveFlags) {
	changed := cmd.Flags().Changed
	if changed("start") {
		cfg.Start = f.start
	}
	if changed("budget") {
		if cmd.Name() == "dual" {
			cfg.DualBudget = f.budget
		} else {
			cfg.TimeBudget = f.budget
		}
	}
	if changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if changed("exact-limit") {
		cfg.ExactLimit = f.exactLimit
	}
	if changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if changed("restarts") {
		cfg.Restarts = f.restarts
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
}

// loadSession parses the input file ("-" for stdin) and builds a Session.
func loadSession(ctx context.Context, path string) (*solver.Session, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log.WithField("input", path).Debug("parsed input")
	return solver.NewSession(ctx, records, solver.WithLogger(log), solver.WithWorkers(cfg.Workers))
}

func readRecords(path string) ([]core.Record, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return parser.Parse(r)
}
