// SPDX-License-Identifier: Apache-2.0

// Package scoring computes accuracy for entity disambiguation predictions.
//
// Each row is one (mention, candidate) pair carrying the classifier logit and
// a binary label. Rows sharing a document id and mention id form a mention
// group; MentionScorer picks at most one winner per group and scores the
// group as a whole. CandidateAccuracy is the plain per-row top-1 accuracy.
package scoring

import (
	"fmt"
	"math"
)

// Predictions holds the parallel per-row inputs of a scoring run.
// CandidateNames is optional; when it matches the row count the result
// carries an audit trace.
type Predictions struct {
	Scores         []float64
	Labels         []float64
	DocIDs         []int
	MentionIDs     []int
	CandidateNames []string
}

// Len returns the number of rows.
func (p Predictions) Len() int {
	return len(p.Scores)
}

func (p Predictions) key(i int) MentionKey {
	return MentionKey{DocID: p.DocIDs[i], MentionID: p.MentionIDs[i]}
}

func (p Predictions) validate() error {
	n := len(p.Scores)
	if n == 0 {
		return fmt.Errorf("%w: no prediction rows", ErrShapeMismatch)
	}
	if len(p.Labels) != n || len(p.DocIDs) != n || len(p.MentionIDs) != n {
		return fmt.Errorf("%w: scores=%d labels=%d doc_ids=%d mention_ids=%d",
			ErrShapeMismatch, n, len(p.Labels), len(p.DocIDs), len(p.MentionIDs))
	}
	for i, s := range p.Scores {
		if math.IsNaN(s) {
			return fmt.Errorf("%w: row %d", ErrInvalidScore, i)
		}
	}
	return nil
}

// MentionKey identifies a mention. Mention ids are only unique within a document.
type MentionKey struct {
	DocID     int
	MentionID int
}

// MentionOutcome is the decision taken for one mention group.
type MentionOutcome struct {
	Key MentionKey
	// Rows are the input row indices of the group, in input order.
	Rows []int
	// Top is the position within Rows of the highest score (first one on ties).
	Top int
	// Predicted reports whether the top score cleared the threshold.
	Predicted bool
	// GroundTruth is the position within Rows of the positive label, or -1.
	GroundTruth int
	Correct     bool
}

// Score returns 1 for a correct mention and 0 otherwise.
func (o MentionOutcome) Score() float64 {
	if o.Correct {
		return 1.0
	}
	return 0.0
}

// TopPrediction returns the one-hot prediction flag for position pos in the group.
func (o MentionOutcome) TopPrediction(pos int) float64 {
	if o.Predicted && pos == o.Top {
		return 1.0
	}
	return 0.0
}

// Result is the output of a mention scoring run.
type Result struct {
	// Accuracy is Correct / Mentions.
	Accuracy float64
	Mentions int
	Correct  int
	Outcomes []MentionOutcome

	// Rows and Trace are only set when candidate names were supplied.
	Rows  []TraceRow
	Trace string
}

// Verbose reports whether the result carries a trace.
func (r Result) Verbose() bool {
	return r.Rows != nil
}
