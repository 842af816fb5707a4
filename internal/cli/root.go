// SPDX-License-Identifier: Apache-2.0

// Package cli implements the edeval command tree.
package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/entitylink/edeval/internal/config"
	"github.com/entitylink/edeval/internal/logging"
	"github.com/entitylink/edeval/internal/scoring"
)

// NewRootCommand builds the edeval command with all subcommands. Flag
// defaults come from cfg.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "edeval",
		Short:         "Evaluate entity disambiguation predictions at the mention level",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.InitWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		},
	}

	root.PersistentFlags().StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format (console or json)")

	root.AddCommand(
		newScoreCommand(cfg),
		newEvaluateCommand(cfg),
		newCandidatesCommand(),
		newPlotCommand(cfg),
		newServeCommand(version),
	)
	return root
}

// Execute runs the command tree with arguments from os.Args.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(config.Load(), version).ExecuteContext(ctx)
}

// scorerFlags are shared by commands that run the mention scorer.
type scorerFlags struct {
	threshold   float64
	strictNames bool
	contiguous  bool
}

func (f *scorerFlags) register(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().Float64Var(&f.threshold, "threshold", cfg.Scoring.Threshold, "Logit decision boundary for the top candidate")
	cmd.Flags().BoolVar(&f.strictNames, "strict-names", cfg.Scoring.StrictNames, "Fail when candidate names do not cover every row")
	cmd.Flags().BoolVar(&f.contiguous, "contiguous", false, "Require rows of a mention to be adjacent")
}

func (f *scorerFlags) options() []scoring.Option {
	opts := []scoring.Option{
		scoring.WithThreshold(f.threshold),
		scoring.WithLogger(log.Logger),
	}
	if f.strictNames {
		opts = append(opts, scoring.WithStrictNames())
	}
	if f.contiguous {
		opts = append(opts, scoring.WithContiguousGroups())
	}
	return opts
}
