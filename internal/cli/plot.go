// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/entitylink/edeval/internal/config"
	"github.com/entitylink/edeval/internal/training"
)

func newPlotCommand(cfg *config.Config) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Plot loss and accuracy curves from per-epoch training statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := training.LoadStats(args[0])
			if err != nil {
				return err
			}
			figs, err := training.Render(stats)
			if err != nil {
				return err
			}

			saved, err := figs.Save(dir)
			if err != nil {
				return err
			}
			if !saved {
				log.Warn().Str("dir", dir).Msg("plot directory does not exist, figures not saved")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plotted %d epochs to %s\n", len(stats), dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", cfg.Paths.PlotDir, "Existing directory for "+training.LossesFile+" and "+training.AccuracyFile)
	return cmd
}
