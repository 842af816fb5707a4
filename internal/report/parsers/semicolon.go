// SPDX-License-Identifier: Apache-2.0

package parsers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/entitylink/edeval/internal/report"
)

// SemicolonParser parses the semicolon-delimited evaluation report written
// by report.Write. Reading stops at the first line with fewer than
// report.MinColumns columns, which covers the trailing blank line.
type SemicolonParser struct{}

// NewSemicolonParser creates a new SemicolonParser.
func NewSemicolonParser() *SemicolonParser {
	return &SemicolonParser{}
}

func (p *SemicolonParser) Name() string {
	return "report"
}

// CanHandle returns true for the "report", "csv" and "semicolon" format
// hints, or for content whose first line starts like the report header.
func (p *SemicolonParser) CanHandle(source report.Source) bool {
	switch strings.ToLower(source.Format) {
	case "report", "csv", "semicolon":
		return true
	}
	first := strings.SplitN(string(source.Content), "\n", 2)[0]
	return strings.HasPrefix(strings.TrimSpace(first), "doc;")
}

func (p *SemicolonParser) Parse(ctx context.Context, source report.Source) (*report.Table, error) {
	lines := strings.Split(string(source.Content), "\n")
	if err := report.CheckHeader(lines[0]); err != nil {
		return nil, err
	}

	table := &report.Table{}
	for i, line := range lines[1:] {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		cols := report.SplitLine(line)
		if len(cols) < report.MinColumns {
			break
		}
		row, err := parseRow(cols)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source.ID, i+2, err)
		}
		table.Append(row)
	}
	return table, nil
}

func parseRow(cols []string) (report.Row, error) {
	if len(cols) <= report.ColPrediction {
		return report.Row{}, fmt.Errorf("%w: missing prediction column", report.ErrReportFormat)
	}

	doc, err := strconv.Atoi(cols[report.ColDoc])
	if err != nil {
		return report.Row{}, fmt.Errorf("%w: doc %q", report.ErrReportFormat, cols[report.ColDoc])
	}
	mention, err := strconv.Atoi(cols[report.ColMention])
	if err != nil {
		return report.Row{}, fmt.Errorf("%w: mention_i %q", report.ErrReportFormat, cols[report.ColMention])
	}
	label, err := strconv.ParseFloat(cols[report.ColLabel], 64)
	if err != nil {
		return report.Row{}, fmt.Errorf("%w: label %q", report.ErrReportFormat, cols[report.ColLabel])
	}
	accuracy, err := strconv.ParseFloat(cols[report.ColAccuracy], 64)
	if err != nil {
		return report.Row{}, fmt.Errorf("%w: accuracy %q", report.ErrReportFormat, cols[report.ColAccuracy])
	}
	scores, err := report.ParseScoreVector(cols[report.ColPrediction])
	if err != nil {
		return report.Row{}, err
	}

	return report.Row{
		// reports carry 1-indexed document ids
		DocID:       doc - 1,
		MentionID:   mention,
		Label:       label,
		Scores:      scores,
		Candidate:   cols[report.ColCandidate],
		GroundTruth: cols[report.ColGroundTruth],
		Accuracy:    accuracy,
	}, nil
}
