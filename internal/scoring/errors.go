// SPDX-License-Identifier: Apache-2.0

package scoring

import "errors"

// Sentinel errors for malformed scoring input. Callers match them with errors.Is.
var (
	// ErrShapeMismatch indicates the parallel input slices disagree in length,
	// or that no rows were supplied at all.
	ErrShapeMismatch = errors.New("scoring: input shape mismatch")

	// ErrMultipleGroundTruth indicates a mention group carries more than one
	// positive label.
	ErrMultipleGroundTruth = errors.New("scoring: multiple ground truth candidates in mention")

	// ErrNonContiguousGroup indicates that rows of one mention are not adjacent
	// while contiguous grouping was requested.
	ErrNonContiguousGroup = errors.New("scoring: mention rows are not contiguous")

	// ErrInvalidScore indicates a NaN score, which has no place in the ordering
	// used to pick the top candidate.
	ErrInvalidScore = errors.New("scoring: score is NaN")
)
