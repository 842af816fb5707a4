// SPDX-License-Identifier: Apache-2.0

package parsers

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/entitylink/edeval/internal/report"
	"github.com/entitylink/edeval/internal/scoring"
)

// predictionDocument is one YAML or JSON document of predictions, either as
// parallel arrays or as a list of rows.
type predictionDocument struct {
	Scores     []float64       `yaml:"scores"`
	Logits     [][]float64     `yaml:"logits"`
	Labels     []float64       `yaml:"labels"`
	DocIDs     []int           `yaml:"doc_ids"`
	MentionIDs []int           `yaml:"mention_ids"`
	Candidates []string        `yaml:"candidates"`
	Rows       []predictionRow `yaml:"rows"`
}

type predictionRow struct {
	Doc       int       `yaml:"doc"`
	Mention   int       `yaml:"mention"`
	Candidate string    `yaml:"candidate"`
	Label     float64   `yaml:"label"`
	Score     *float64  `yaml:"score"`
	Logits    []float64 `yaml:"logits"`
}

// YAMLParser parses prediction dumps in YAML or JSON. Multi-document YAML
// (separated by '---') is read as consecutive batches.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Name() string {
	return "yaml"
}

func (p *YAMLParser) CanHandle(source report.Source) bool {
	switch strings.ToLower(source.Format) {
	case "yaml", "yml", "json":
		return true
	}
	content := strings.TrimSpace(string(source.Content))
	if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "---") {
		return true
	}
	first := strings.SplitN(content, "\n", 2)[0]
	return strings.Contains(first, ":") && !strings.Contains(first, ";")
}

func (p *YAMLParser) Parse(ctx context.Context, source report.Source) (*report.Table, error) {
	docs := strings.Split(string(source.Content), "\n---")
	table := &report.Table{}

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(doc), "---"))
		if doc == "" {
			continue
		}

		var pd predictionDocument
		if err := yaml.Unmarshal([]byte(doc), &pd); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal predictions document %d: %w", report.ErrReportFormat, i, err)
		}
		if err := appendDocument(table, pd); err != nil {
			return nil, fmt.Errorf("%s document %d: %w", source.ID, i, err)
		}
	}
	return table, nil
}

func appendDocument(table *report.Table, pd predictionDocument) error {
	for j, r := range pd.Rows {
		scores := r.Logits
		if r.Score != nil {
			scores = []float64{*r.Score}
		}
		if len(scores) == 0 {
			return fmt.Errorf("%w: row %d has neither score nor logits", report.ErrReportFormat, j)
		}
		table.Append(report.Row{
			DocID:     r.Doc,
			MentionID: r.Mention,
			Label:     r.Label,
			Scores:    scores,
			Candidate: r.Candidate,
		})
	}

	vectors := pd.Logits
	if len(pd.Scores) > 0 {
		vectors = make([][]float64, len(pd.Scores))
		for i, s := range pd.Scores {
			vectors[i] = []float64{s}
		}
	}
	n := len(vectors)
	if n == 0 && len(pd.Labels) == 0 && len(pd.DocIDs) == 0 && len(pd.MentionIDs) == 0 {
		return nil
	}
	if len(pd.Labels) != n || len(pd.DocIDs) != n || len(pd.MentionIDs) != n {
		return fmt.Errorf("%w: %w: scores=%d labels=%d doc_ids=%d mention_ids=%d",
			report.ErrReportFormat, scoring.ErrShapeMismatch, n, len(pd.Labels), len(pd.DocIDs), len(pd.MentionIDs))
	}

	rows := make([]report.Row, n)
	for i := range rows {
		rows[i] = report.Row{
			DocID:     pd.DocIDs[i],
			MentionID: pd.MentionIDs[i],
			Label:     pd.Labels[i],
			Scores:    vectors[i],
		}
	}
	table.AppendBatch(rows, pd.Candidates)
	return nil
}
