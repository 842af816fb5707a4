// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/entitylink/edeval/internal/config"
	"github.com/entitylink/edeval/internal/report/parsers"
)

func newEvaluateCommand(cfg *config.Config) *cobra.Command {
	var flags scorerFlags

	cmd := &cobra.Command{
		Use:   "evaluate [FILE]",
		Short: "Re-score a persisted evaluation report",
		Long: "Read a report written by a previous test run and print its mention-level\n" +
			"accuracy without re-running the model. FILE defaults to " + cfg.Paths.Report + ".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Paths.Report
			if len(args) == 1 {
				path = args[0]
			}

			res, err := parsers.NewDefaultPipeline().Evaluate(cmd.Context(), path, flags.options()...)
			if err != nil {
				return err
			}
			log.Debug().Str("file", path).Int("mentions", res.Mentions).Msg("evaluated report")

			fmt.Fprintf(cmd.OutOrStdout(), "Test accuracy: %.4f\n", res.Accuracy)
			return nil
		},
	}

	flags.register(cmd, cfg)
	return cmd
}
