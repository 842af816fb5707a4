// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entitylink/edeval/internal/report/parsers"
	"github.com/entitylink/edeval/internal/scoring"
)

func newCandidatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates FILE",
		Short: "Compute per-row top-1 accuracy without grouping by mention",
		Long: "Treat every row's score vector as class scores and its label as the class\n" +
			"index, and print the fraction of rows whose highest scoring class matches.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := parsers.NewDefaultPipeline().LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			acc, err := scoring.CandidateAccuracyRows(run.Table.ScoreVectors, run.Table.ClassLabels())
			if err != nil {
				return fmt.Errorf("scoring %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Candidate accuracy: %.4f\n", acc)
			return nil
		},
	}
}
