// SPDX-License-Identifier: Apache-2.0

package scoring_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entitylink/edeval/internal/scoring"
)

func TestMentionScorer_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		preds        scoring.Predictions
		wantAccuracy float64
		wantMentions int
	}{
		{
			name: "top candidate picked and all negative mention left empty",
			preds: scoring.Predictions{
				Scores:     []float64{0.5, -0.2, -0.1, -0.3},
				Labels:     []float64{1, 0, 0, 0},
				DocIDs:     []int{0, 0, 0, 0},
				MentionIDs: []int{0, 0, 1, 1},
			},
			wantAccuracy: 1.0,
			wantMentions: 2,
		},
		{
			name: "tie resolved by first occurrence",
			preds: scoring.Predictions{
				Scores:     []float64{0.9, 0.9, -1.0},
				Labels:     []float64{1, 0, 0},
				DocIDs:     []int{3, 3, 3},
				MentionIDs: []int{7, 7, 7},
			},
			wantAccuracy: 1.0,
			wantMentions: 1,
		},
		{
			name: "tie resolved against a later true candidate",
			preds: scoring.Predictions{
				Scores:     []float64{0.9, 0.9},
				Labels:     []float64{0, 1},
				DocIDs:     []int{0, 0},
				MentionIDs: []int{0, 0},
			},
			wantAccuracy: 0.0,
			wantMentions: 1,
		},
		{
			name: "true candidate not top scored",
			preds: scoring.Predictions{
				Scores:     []float64{0.3, 0.1},
				Labels:     []float64{0, 1},
				DocIDs:     []int{0, 0},
				MentionIDs: []int{0, 0},
			},
			wantAccuracy: 0.0,
			wantMentions: 1,
		},
		{
			name: "positive top score when no candidate is true",
			preds: scoring.Predictions{
				Scores:     []float64{0.2, -0.4},
				Labels:     []float64{0, 0},
				DocIDs:     []int{0, 0},
				MentionIDs: []int{0, 0},
			},
			wantAccuracy: 0.0,
			wantMentions: 1,
		},
		{
			name: "true candidate top scored but below threshold",
			preds: scoring.Predictions{
				Scores:     []float64{-0.2, -0.4},
				Labels:     []float64{1, 0},
				DocIDs:     []int{0, 0},
				MentionIDs: []int{0, 0},
			},
			wantAccuracy: 0.0,
			wantMentions: 1,
		},
		{
			name: "mention ids reused across documents",
			preds: scoring.Predictions{
				Scores:     []float64{1.2, 0.1, 0.4, 2.0, -3.0},
				Labels:     []float64{1, 0, 0, 1, 0},
				DocIDs:     []int{0, 0, 1, 1, 1},
				MentionIDs: []int{0, 0, 0, 0, 0},
			},
			wantAccuracy: 1.0,
			wantMentions: 2,
		},
		{
			name: "half right",
			preds: scoring.Predictions{
				Scores:     []float64{1.0, 0.0, 0.5, 0.7},
				Labels:     []float64{1, 0, 1, 0},
				DocIDs:     []int{0, 0, 0, 0},
				MentionIDs: []int{1, 1, 2, 2},
			},
			wantAccuracy: 0.5,
			wantMentions: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := scoring.NewMentionScorer().Score(tt.preds)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantAccuracy, res.Accuracy, 1e-12)
			assert.Equal(t, tt.wantMentions, res.Mentions)
			assert.Len(t, res.Outcomes, tt.wantMentions)
			assert.Empty(t, res.Trace)
			assert.False(t, res.Verbose())
		})
	}
}

func TestMentionScorer_ThresholdBoundary(t *testing.T) {
	base := scoring.Predictions{
		Scores:     []float64{0, -1},
		DocIDs:     []int{0, 0},
		MentionIDs: []int{0, 0},
	}

	noTruth := base
	noTruth.Labels = []float64{0, 0}
	res, err := scoring.NewMentionScorer().Score(noTruth)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Accuracy, "max score of exactly 0 predicts no candidate")
	assert.False(t, res.Outcomes[0].Predicted)

	withTruth := base
	withTruth.Labels = []float64{1, 0}
	res, err = scoring.NewMentionScorer().Score(withTruth)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Accuracy)
}

func TestMentionScorer_WithThreshold(t *testing.T) {
	preds := scoring.Predictions{
		Scores:     []float64{0.4, 0.1},
		Labels:     []float64{1, 0},
		DocIDs:     []int{0, 0},
		MentionIDs: []int{0, 0},
	}

	res, err := scoring.NewMentionScorer(scoring.WithThreshold(0.5)).Score(preds)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Accuracy)

	res, err = scoring.NewMentionScorer(scoring.WithThreshold(-1)).Score(preds)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Accuracy)
}

func TestMentionScorer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		preds   scoring.Predictions
		opts    []scoring.Option
		wantErr error
	}{
		{
			name: "fewer labels than scores",
			preds: scoring.Predictions{
				Scores:     []float64{0.1, 0.2, 0.3, 0.4, 0.5},
				Labels:     []float64{0, 0, 0, 1},
				DocIDs:     []int{0, 0, 0, 0, 0},
				MentionIDs: []int{0, 0, 0, 0, 0},
			},
			wantErr: scoring.ErrShapeMismatch,
		},
		{
			name: "mention ids short",
			preds: scoring.Predictions{
				Scores:     []float64{0.1, 0.2},
				Labels:     []float64{0, 1},
				DocIDs:     []int{0, 0},
				MentionIDs: []int{0},
			},
			wantErr: scoring.ErrShapeMismatch,
		},
		{
			name:    "no rows",
			preds:   scoring.Predictions{},
			wantErr: scoring.ErrShapeMismatch,
		},
		{
			name: "two positive labels in one mention",
			preds: scoring.Predictions{
				Scores:     []float64{0.1, 0.2, 0.3},
				Labels:     []float64{1, 1, 0},
				DocIDs:     []int{0, 0, 0},
				MentionIDs: []int{0, 0, 0},
			},
			wantErr: scoring.ErrMultipleGroundTruth,
		},
		{
			name: "strict names with wrong length",
			preds: scoring.Predictions{
				Scores:         []float64{0.1, 0.2},
				Labels:         []float64{0, 1},
				DocIDs:         []int{0, 0},
				MentionIDs:     []int{0, 0},
				CandidateNames: []string{"a"},
			},
			opts:    []scoring.Option{scoring.WithStrictNames()},
			wantErr: scoring.ErrShapeMismatch,
		},
		{
			name: "contiguous walk over interleaved mentions",
			preds: scoring.Predictions{
				Scores:     []float64{0.1, 0.2, 0.3, 0.4},
				Labels:     []float64{1, 0, 0, 1},
				DocIDs:     []int{0, 0, 0, 0},
				MentionIDs: []int{0, 1, 0, 1},
			},
			opts:    []scoring.Option{scoring.WithContiguousGroups()},
			wantErr: scoring.ErrNonContiguousGroup,
		},
		{
			name: "NaN leading its group",
			preds: scoring.Predictions{
				Scores:     []float64{math.NaN(), 0.9},
				Labels:     []float64{0, 1},
				DocIDs:     []int{0, 0},
				MentionIDs: []int{0, 0},
			},
			wantErr: scoring.ErrInvalidScore,
		},
		{
			name: "NaN after the maximum",
			preds: scoring.Predictions{
				Scores:     []float64{0.9, math.NaN()},
				Labels:     []float64{1, 0},
				DocIDs:     []int{0, 0},
				MentionIDs: []int{0, 0},
			},
			wantErr: scoring.ErrInvalidScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scoring.NewMentionScorer(tt.opts...).Score(tt.preds)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMentionScorer_NonContiguousMatchesSorted(t *testing.T) {
	interleaved := scoring.Predictions{
		Scores:     []float64{0.8, -0.5, 0.1, 0.9, -0.2, -0.7},
		Labels:     []float64{1, 0, 0, 0, 0, 0},
		DocIDs:     []int{0, 0, 0, 0, 1, 1},
		MentionIDs: []int{0, 1, 0, 1, 0, 0},
	}
	sorted := scoring.Predictions{
		Scores:     []float64{0.8, 0.1, -0.5, 0.9, -0.2, -0.7},
		Labels:     []float64{1, 0, 0, 0, 0, 0},
		DocIDs:     []int{0, 0, 0, 0, 1, 1},
		MentionIDs: []int{0, 0, 1, 1, 0, 0},
	}

	got, err := scoring.NewMentionScorer().Score(interleaved)
	require.NoError(t, err)
	want, err := scoring.NewMentionScorer(scoring.WithContiguousGroups()).Score(sorted)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Mentions)
	assert.Equal(t, want.Mentions, got.Mentions)
	assert.InDelta(t, want.Accuracy, got.Accuracy, 1e-12)
	assert.InDelta(t, 2.0/3.0, got.Accuracy, 1e-12)
	assert.Equal(t, []int{0, 2}, got.Outcomes[0].Rows)
	assert.Equal(t, []int{1, 3}, got.Outcomes[1].Rows)
}

func TestMentionScorer_DenominatorIsMentions(t *testing.T) {
	// one mention with five candidates and one with a single candidate
	preds := scoring.Predictions{
		Scores:     []float64{2, 1, 0, -1, -2, -0.5},
		Labels:     []float64{1, 0, 0, 0, 0, 1},
		DocIDs:     []int{0, 0, 0, 0, 0, 0},
		MentionIDs: []int{0, 0, 0, 0, 0, 1},
	}
	res, err := scoring.NewMentionScorer().Score(preds)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Mentions)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 0.5, res.Accuracy)
}

func TestMentionAccuracy_Trace(t *testing.T) {
	names := []string{"Paris", "Paris_Texas", "Bob", "Rob"}
	acc, trace, err := scoring.MentionAccuracy(
		[]float64{0.5, -0.2, -0.1, -0.3},
		[]float64{1, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 1, 1},
		names,
	)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)

	want := strings.Join([]string{
		scoring.TraceHeader,
		"   1;   0;        Paris; 1.0;        Paris; 1.0; 1.0; [0.5]",
		"   1;   0;        Paris; 1.0;  Paris_Texas; 0.0; 0.0; [-0.2]",
		"   1;   1;       <none>; 1.0;          Bob; 0.0; 0.0; [-0.1]",
		"   1;   1;       <none>; 1.0;          Rob; 0.0; 0.0; [-0.3]",
	}, "\n") + "\n"
	assert.Equal(t, want, trace)
}

func TestMentionAccuracy_NamesDoNotChangeAccuracy(t *testing.T) {
	scores := []float64{0.3, 0.1, 0.4, -0.2, -0.9}
	labels := []float64{0, 1, 1, 0, 0}
	docs := []int{0, 0, 1, 1, 2}
	mentions := []int{0, 0, 0, 0, 0}

	verboseAcc, trace, err := scoring.MentionAccuracy(scores, labels, docs, mentions, []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	require.NotEmpty(t, trace)

	plainAcc, plainTrace, err := scoring.MentionAccuracy(scores, labels, docs, mentions, nil)
	require.NoError(t, err)
	assert.Empty(t, plainTrace)
	assert.Equal(t, verboseAcc, plainAcc)

	shortAcc, shortTrace, err := scoring.MentionAccuracy(scores, labels, docs, mentions, []string{"a", "b"})
	require.NoError(t, err)
	assert.Empty(t, shortTrace, "mismatched names disable the trace")
	assert.Equal(t, verboseAcc, shortAcc)
}

func TestMentionScorer_Deterministic(t *testing.T) {
	preds := scoring.Predictions{
		Scores:         []float64{0.7, 0.7, 0.7, -0.1, 0.2},
		Labels:         []float64{0, 1, 0, 0, 1},
		DocIDs:         []int{4, 4, 4, 9, 9},
		MentionIDs:     []int{2, 2, 2, 5, 5},
		CandidateNames: []string{"x", "y", "z", "u", "v"},
	}
	scorer := scoring.NewMentionScorer()
	first, err := scorer.Score(preds)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := scorer.Score(preds)
		require.NoError(t, err)
		assert.Equal(t, first.Accuracy, again.Accuracy)
		assert.Equal(t, first.Trace, again.Trace)
	}
	assert.Equal(t, 0.5, first.Accuracy)
}

func TestMentionScorer_PerfectPrediction(t *testing.T) {
	// true candidate strictly highest and positive in every mention
	preds := scoring.Predictions{
		Scores:     []float64{-1, 3, 0.5, 0.2, 0.1, 9},
		Labels:     []float64{0, 1, 1, 0, 0, 1},
		DocIDs:     []int{0, 0, 1, 1, 1, 2},
		MentionIDs: []int{0, 0, 3, 3, 3, 1},
	}
	res, err := scoring.NewMentionScorer().Score(preds)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Accuracy)
	assert.GreaterOrEqual(t, res.Accuracy, 0.0)
	assert.LessOrEqual(t, res.Accuracy, 1.0)
}

func TestMentionScorer_TraceRows(t *testing.T) {
	preds := scoring.Predictions{
		Scores:         []float64{0.3, 0.1},
		Labels:         []float64{0, 1},
		DocIDs:         []int{2, 2},
		MentionIDs:     []int{4, 4},
		CandidateNames: []string{"Turing", "Alan_Turing"},
	}
	res, err := scoring.NewMentionScorer().Score(preds)
	require.NoError(t, err)
	require.True(t, res.Verbose())
	require.Len(t, res.Rows, 2)

	assert.Equal(t, "Alan_Turing", res.Rows[0].GroundTruth)
	assert.Equal(t, 0.0, res.Rows[0].Accuracy)
	assert.Equal(t, 1.0, res.Rows[0].TopPrediction)
	assert.Equal(t, 0.0, res.Rows[1].TopPrediction)
	assert.Equal(t, 2, res.Rows[1].DocID)
	assert.True(t, strings.HasPrefix(res.Rows[0].String(), "   3;   4;"))
}
