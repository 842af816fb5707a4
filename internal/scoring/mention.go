// SPDX-License-Identifier: Apache-2.0

package scoring

import "fmt"

// MentionScorer computes mention-level accuracy. It holds no state between
// calls and is safe for concurrent use.
type MentionScorer struct {
	cfg config
}

// NewMentionScorer creates a MentionScorer with the given options.
func NewMentionScorer(opts ...Option) *MentionScorer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MentionScorer{cfg: cfg}
}

// MentionAccuracy scores with default options and returns the accuracy and
// the trace text. The trace is empty unless names has one entry per row.
func MentionAccuracy(scores, labels []float64, docIDs, mentionIDs []int, names []string, opts ...Option) (float64, string, error) {
	res, err := NewMentionScorer(opts...).Score(Predictions{
		Scores:         scores,
		Labels:         labels,
		DocIDs:         docIDs,
		MentionIDs:     mentionIDs,
		CandidateNames: names,
	})
	if err != nil {
		return 0, "", err
	}
	return res.Accuracy, res.Trace, nil
}

// Score groups the rows into mentions, picks a winner per mention and returns
// the fraction of mentions whose prediction matches the labels exactly.
func (s *MentionScorer) Score(p Predictions) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}

	verbose := len(p.CandidateNames) == p.Len()
	if len(p.CandidateNames) > 0 && !verbose {
		if s.cfg.strictNames {
			return Result{}, fmt.Errorf("%w: %d candidate names for %d rows",
				ErrShapeMismatch, len(p.CandidateNames), p.Len())
		}
		s.cfg.logger.Debug().
			Int("names", len(p.CandidateNames)).
			Int("rows", p.Len()).
			Msg("candidate names do not match rows, trace disabled")
	}

	var (
		groups []group
		err    error
	)
	if s.cfg.contiguous {
		groups, err = groupContiguous(p)
	} else {
		groups = groupByKey(p)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Mentions: len(groups),
		Outcomes: make([]MentionOutcome, 0, len(groups)),
	}
	if verbose {
		res.Rows = make([]TraceRow, 0, p.Len())
	}

	for _, g := range groups {
		out, err := s.decide(p, g)
		if err != nil {
			return Result{}, err
		}
		if out.Correct {
			res.Correct++
		}
		res.Outcomes = append(res.Outcomes, out)
		if verbose {
			res.Rows = appendTraceRows(res.Rows, p, out)
		}
	}

	res.Accuracy = float64(res.Correct) / float64(res.Mentions)
	if verbose {
		res.Trace = FormatTrace(res.Rows)
	}

	s.cfg.logger.Debug().
		Int("rows", p.Len()).
		Int("mentions", res.Mentions).
		Int("correct", res.Correct).
		Float64("accuracy", res.Accuracy).
		Msg("scored mentions")

	return res, nil
}

// decide applies the top-candidate policy to one group.
func (s *MentionScorer) decide(p Predictions, g group) (MentionOutcome, error) {
	out := MentionOutcome{
		Key:         g.key,
		Rows:        g.rows,
		GroundTruth: -1,
	}

	for pos, row := range g.rows {
		if p.Labels[row] == 1.0 {
			if out.GroundTruth >= 0 {
				return MentionOutcome{}, fmt.Errorf("%w: doc %d mention %d",
					ErrMultipleGroundTruth, g.key.DocID, g.key.MentionID)
			}
			out.GroundTruth = pos
		}
		// strict comparison keeps the first maximum
		if p.Scores[row] > p.Scores[g.rows[out.Top]] {
			out.Top = pos
		}
	}

	out.Predicted = p.Scores[g.rows[out.Top]] > s.cfg.threshold

	out.Correct = true
	for pos, row := range g.rows {
		if out.TopPrediction(pos) != p.Labels[row] {
			out.Correct = false
			break
		}
	}
	return out, nil
}
