// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/entitylink/edeval/internal/scoring"
)

type Pipeline struct {
	parsers []Parser
}

// NewPipeline creates a new Pipeline with the provided parsers.
// Parsers are tried in registration order.
func NewPipeline(parsers ...Parser) *Pipeline {
	return &Pipeline{parsers: parsers}
}

// RunResult is the output of a successful pipeline run.
type RunResult struct {
	Table      *Table
	ParserUsed string
	RowCount   int
}

func (p *Pipeline) Run(ctx context.Context, source Source) (RunResult, error) {
	parser, err := p.selectParser(source)
	if err != nil {
		return RunResult{}, err
	}

	table, err := parser.Parse(ctx, source)
	if err != nil {
		return RunResult{}, fmt.Errorf("parser %q failed: %w", parser.Name(), err)
	}

	return RunResult{
		Table:      table,
		ParserUsed: parser.Name(),
		RowCount:   table.Len(),
	}, nil
}

// LoadFile reads path and runs it through the pipeline, using the file
// extension as the format hint.
func (p *Pipeline) LoadFile(ctx context.Context, path string) (RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RunResult{}, fmt.Errorf("%w: could not find file at %s: %w", ErrReportFormat, path, err)
		}
		return RunResult{}, fmt.Errorf("reading report: %w", err)
	}
	return p.Run(ctx, Source{
		Content: data,
		Format:  strings.TrimPrefix(filepath.Ext(path), "."),
		ID:      path,
	})
}

// Evaluate loads path and returns its mention-level accuracy. The result
// carries no trace.
func (p *Pipeline) Evaluate(ctx context.Context, path string, opts ...scoring.Option) (scoring.Result, error) {
	run, err := p.LoadFile(ctx, path)
	if err != nil {
		return scoring.Result{}, err
	}
	preds, err := run.Table.Predictions()
	if err != nil {
		return scoring.Result{}, err
	}
	preds.CandidateNames = nil
	return scoring.NewMentionScorer(opts...).Score(preds)
}

// selectParser returns the first registered parser that can handle the given source.
func (p *Pipeline) selectParser(source Source) (Parser, error) {
	for _, parser := range p.parsers {
		if parser.CanHandle(source) {
			return parser, nil
		}
	}
	return nil, fmt.Errorf("%w: no parser found for source %q (format hint: %q)", ErrUnsupportedFormat, source.ID, source.Format)
}

// RegisteredParsers returns the names of all currently registered parsers.
func (p *Pipeline) RegisteredParsers() []string {
	names := make([]string, len(p.parsers))
	for i, parser := range p.parsers {
		names[i] = parser.Name()
	}
	return names
}
