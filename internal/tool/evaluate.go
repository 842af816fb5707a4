// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/entitylink/edeval/internal/report"
	"github.com/entitylink/edeval/internal/report/parsers"
	"github.com/entitylink/edeval/internal/scoring"
)

// MetadataEvaluateReport describes the evaluate_report tool.
var MetadataEvaluateReport = &mcp.Tool{
	Name: "evaluate_report",
	Description: "Re-score a persisted evaluation report without re-running the model. " +
		"Accepts the semicolon-delimited report (header: doc; mention_i; mention; accuracy; " +
		"candidate; label; top_pred; prediction) or a YAML/JSON prediction dump, and returns " +
		"the mention-level accuracy.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw content of the report",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Format hint. One of: report, yaml, json. If omitted, auto-detection is used.",
				"enum":        []string{"report", "yaml", "json"},
			},
			"source_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional identifier for the report used in error messages.",
			},
		},
	},
}

// InputEvaluateReport is the input for the EvaluateReport tool.
type InputEvaluateReport struct {
	Content  string `json:"content"`
	Format   string `json:"format"`
	SourceID string `json:"source_id"`
}

// OutputEvaluateReport is the output for the EvaluateReport tool.
type OutputEvaluateReport struct {
	Accuracy   float64 `json:"accuracy"`
	Mentions   int     `json:"mentions"`
	ParserUsed string  `json:"parser_used"`
	// TotalRows is the number of candidate rows read before scoring.
	TotalRows int `json:"total_rows"`
}

// EvaluateReport parses the report content and returns its mention-level accuracy.
func EvaluateReport(ctx context.Context, _ *mcp.CallToolRequest, input InputEvaluateReport) (*mcp.CallToolResult, OutputEvaluateReport, error) {
	if input.Content == "" {
		return nil, OutputEvaluateReport{}, fmt.Errorf("content is required")
	}

	sourceID := input.SourceID
	if sourceID == "" {
		sourceID = "unknown"
	}

	run, err := parsers.NewDefaultPipeline().Run(ctx, report.Source{
		Content: []byte(input.Content),
		Format:  input.Format,
		ID:      sourceID,
	})
	if err != nil {
		return nil, OutputEvaluateReport{}, err
	}

	preds, err := run.Table.Predictions()
	if err != nil {
		return nil, OutputEvaluateReport{}, err
	}
	preds.CandidateNames = nil

	res, err := scoring.NewMentionScorer().Score(preds)
	if err != nil {
		return nil, OutputEvaluateReport{}, err
	}

	return nil, OutputEvaluateReport{
		Accuracy:   res.Accuracy,
		Mentions:   res.Mentions,
		ParserUsed: run.ParserUsed,
		TotalRows:  run.RowCount,
	}, nil
}
