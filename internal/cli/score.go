// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/entitylink/edeval/internal/config"
	"github.com/entitylink/edeval/internal/report"
	"github.com/entitylink/edeval/internal/report/parsers"
	"github.com/entitylink/edeval/internal/scoring"
)

func newScoreCommand(cfg *config.Config) *cobra.Command {
	var (
		flags   scorerFlags
		trace   bool
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "Compute mention-level accuracy for a predictions file",
		Long: "Load predictions from a YAML/JSON dump or a semicolon report and compute the\n" +
			"mention-level accuracy. Candidate names in the input enable the audit trace.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline := parsers.NewDefaultPipeline()
			log.Debug().Strs("parsers", pipeline.RegisteredParsers()).Str("file", args[0]).Msg("loading predictions")
			run, err := pipeline.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			preds, err := run.Table.Predictions()
			if err != nil {
				return err
			}

			res, err := scoring.NewMentionScorer(flags.options()...).Score(preds)
			if err != nil {
				return fmt.Errorf("scoring %s: %w", args[0], err)
			}

			log.Info().
				Str("file", args[0]).
				Str("parser", run.ParserUsed).
				Int("rows", run.RowCount).
				Int("mentions", res.Mentions).
				Msg("scored predictions")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mention accuracy: %.4f (%d/%d)\n", res.Accuracy, res.Correct, res.Mentions)
			if trace {
				if !res.Verbose() {
					log.Warn().Msg("input has no candidate names for every row, no trace available")
				}
				fmt.Fprint(out, res.Trace)
			}
			if outPath != "" {
				if err := report.WriteFile(outPath, res); err != nil {
					return err
				}
				log.Info().Str("path", outPath).Msg("wrote report")
			}
			return nil
		},
	}

	flags.register(cmd, cfg)
	cmd.Flags().BoolVar(&trace, "trace", false, "Print the row-level audit trace")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the trace as a semicolon report to this path")
	return cmd
}
