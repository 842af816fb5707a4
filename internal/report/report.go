// SPDX-License-Identifier: Apache-2.0

// Package report loads persisted prediction reports back into scoring input.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/entitylink/edeval/internal/scoring"
)

var (
	// ErrReportFormat indicates a missing report file, a missing or unexpected
	// header, or an unparsable field.
	ErrReportFormat = errors.New("report: invalid report format")

	// ErrUnsupportedFormat indicates no registered parser accepts the source.
	ErrUnsupportedFormat = errors.New("report: unsupported format")
)

// Source describes the raw input to a Pipeline.
type Source struct {
	// Content is the raw file content.
	Content []byte
	Format  string
	ID      string
}

type Parser interface {
	CanHandle(source Source) bool
	Parse(ctx context.Context, source Source) (*Table, error)
	Name() string
}

// Row is one candidate line of a report.
type Row struct {
	DocID     int
	MentionID int
	Label     float64
	Scores    []float64
	Candidate string
	// GroundTruth and Accuracy are only present in persisted traces.
	GroundTruth string
	Accuracy    float64
}

// Table holds parsed rows as parallel columns. CandidateNames is kept as
// read: a batch whose candidate list does not cover its rows leaves it with a
// different length than the other columns.
type Table struct {
	DocIDs           []int
	MentionIDs       []int
	Labels           []float64
	ScoreVectors     [][]float64
	CandidateNames   []string
	GroundTruth      []string
	RecordedAccuracy []float64
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.DocIDs)
}

// Append adds a row to every column.
func (t *Table) Append(r Row) {
	t.appendColumns(r)
	t.CandidateNames = append(t.CandidateNames, r.Candidate)
}

// AppendBatch adds rows whose candidate names come as a separate list. The
// names are appended unchanged, whatever their count.
func (t *Table) AppendBatch(rows []Row, names []string) {
	for _, r := range rows {
		t.appendColumns(r)
	}
	t.CandidateNames = append(t.CandidateNames, names...)
}

func (t *Table) appendColumns(r Row) {
	t.DocIDs = append(t.DocIDs, r.DocID)
	t.MentionIDs = append(t.MentionIDs, r.MentionID)
	t.Labels = append(t.Labels, r.Label)
	t.ScoreVectors = append(t.ScoreVectors, r.Scores)
	t.GroundTruth = append(t.GroundTruth, r.GroundTruth)
	t.RecordedAccuracy = append(t.RecordedAccuracy, r.Accuracy)
}

// Predictions projects the table onto scoring input, using the first element
// of every score vector as the row logit. Candidate names are passed through
// only when at least one is non-empty; the scorer decides what a count that
// differs from the row count means.
func (t *Table) Predictions() (scoring.Predictions, error) {
	scores := make([]float64, t.Len())
	for i, v := range t.ScoreVectors {
		if len(v) == 0 {
			return scoring.Predictions{}, fmt.Errorf("%w: row %d has no scores", ErrReportFormat, i)
		}
		scores[i] = v[0]
	}

	p := scoring.Predictions{
		Scores:     scores,
		Labels:     t.Labels,
		DocIDs:     t.DocIDs,
		MentionIDs: t.MentionIDs,
	}
	for _, name := range t.CandidateNames {
		if name != "" {
			p.CandidateNames = t.CandidateNames
			break
		}
	}
	return p, nil
}

// ClassLabels returns the labels as integer class indices.
func (t *Table) ClassLabels() []int {
	labels := make([]int, len(t.Labels))
	for i, l := range t.Labels {
		labels[i] = int(l)
	}
	return labels
}
