// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/entitylink/edeval/internal/scoring"
)

// MetadataScoreMentions describes the score_mentions tool.
var MetadataScoreMentions = &mcp.Tool{
	Name: "score_mentions",
	Description: "Compute mention-level accuracy for entity disambiguation predictions. " +
		"Each row is one (mention, candidate) pair given as parallel arrays. Rows sharing " +
		"doc_ids and mention_ids form one mention. The highest scoring candidate of a mention " +
		"is predicted true when its logit is above the threshold (default 0), otherwise no " +
		"candidate is predicted. A mention is correct only if the prediction matches its labels " +
		"exactly. Supplying candidates (one name per row) returns a row-level audit trace.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"scores", "labels", "doc_ids", "mention_ids"},
		"properties": map[string]interface{}{
			"scores": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "number"},
				"description": "Raw classifier logit per row",
			},
			"labels": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "number"},
				"description": "1 for the true candidate, 0 otherwise",
			},
			"doc_ids": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "integer"},
				"description": "Document index per row",
			},
			"mention_ids": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "integer"},
				"description": "Mention index within the document per row",
			},
			"candidates": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Optional candidate name per row. Enables the trace.",
			},
			"threshold": map[string]interface{}{
				"type":        "number",
				"description": "Logit decision boundary. Defaults to 0.",
			},
			"strict_names": map[string]interface{}{
				"type":        "boolean",
				"description": "Fail when candidates does not have one entry per row instead of dropping the trace.",
			},
		},
	},
}

// InputScoreMentions is the input for the ScoreMentions tool.
type InputScoreMentions struct {
	Scores      []float64 `json:"scores"`
	Labels      []float64 `json:"labels"`
	DocIDs      []int     `json:"doc_ids"`
	MentionIDs  []int     `json:"mention_ids"`
	Candidates  []string  `json:"candidates,omitempty"`
	Threshold   *float64  `json:"threshold,omitempty"`
	StrictNames bool      `json:"strict_names,omitempty"`
}

// OutputScoreMentions is the output for the ScoreMentions tool.
type OutputScoreMentions struct {
	Accuracy float64 `json:"accuracy"`
	// Mentions is the number of distinct (doc, mention) pairs.
	Mentions int `json:"mentions"`
	Correct  int `json:"correct"`
	// Trace is the audit table, empty unless candidates were supplied.
	Trace string `json:"trace,omitempty"`
}

// ScoreMentions scores the supplied rows at the mention level.
func ScoreMentions(_ context.Context, _ *mcp.CallToolRequest, input InputScoreMentions) (*mcp.CallToolResult, OutputScoreMentions, error) {
	var opts []scoring.Option
	if input.Threshold != nil {
		opts = append(opts, scoring.WithThreshold(*input.Threshold))
	}
	if input.StrictNames {
		opts = append(opts, scoring.WithStrictNames())
	}

	res, err := scoring.NewMentionScorer(opts...).Score(scoring.Predictions{
		Scores:         input.Scores,
		Labels:         input.Labels,
		DocIDs:         input.DocIDs,
		MentionIDs:     input.MentionIDs,
		CandidateNames: input.Candidates,
	})
	if err != nil {
		return nil, OutputScoreMentions{}, err
	}

	return nil, OutputScoreMentions{
		Accuracy: res.Accuracy,
		Mentions: res.Mentions,
		Correct:  res.Correct,
		Trace:    res.Trace,
	}, nil
}
