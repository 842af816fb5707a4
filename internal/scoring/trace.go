// SPDX-License-Identifier: Apache-2.0

package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// TraceHeader is the first line of a trace and of a persisted report.
const TraceHeader = "doc; mention_i; mention; accuracy; candidate; label; top_pred; prediction"

// NoGroundTruth is printed in the mention column when no candidate is labeled true.
const NoGroundTruth = "<none>"

// TraceRow is one audit line. Accuracy repeats the group outcome on every row
// of the group.
type TraceRow struct {
	DocID         int
	MentionID     int
	GroundTruth   string
	Accuracy      float64
	Candidate     string
	Label         float64
	TopPrediction float64
	Score         float64
}

// String renders the row with a 1-indexed document id.
func (r TraceRow) String() string {
	return fmt.Sprintf("%4d; %3d; %12s; %3.1f; %12s; %3.1f; %3.1f; %s",
		r.DocID+1, r.MentionID, r.GroundTruth, r.Accuracy,
		r.Candidate, r.Label, r.TopPrediction, FormatScores([]float64{r.Score}))
}

// FormatTrace renders the header followed by one line per row.
func FormatTrace(rows []TraceRow) string {
	var b strings.Builder
	b.WriteString(TraceHeader)
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatScores renders a score vector as a bracketed, space-separated sequence.
func FormatScores(scores []float64) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func appendTraceRows(rows []TraceRow, p Predictions, out MentionOutcome) []TraceRow {
	truth := NoGroundTruth
	if out.GroundTruth >= 0 {
		truth = p.CandidateNames[out.Rows[out.GroundTruth]]
	}
	for pos, row := range out.Rows {
		rows = append(rows, TraceRow{
			DocID:         p.DocIDs[row],
			MentionID:     p.MentionIDs[row],
			GroundTruth:   truth,
			Accuracy:      out.Score(),
			Candidate:     p.CandidateNames[row],
			Label:         p.Labels[row],
			TopPrediction: out.TopPrediction(pos),
			Score:         p.Scores[row],
		})
	}
	return rows
}
