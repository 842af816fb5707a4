// SPDX-License-Identifier: Apache-2.0

package scoring

import "github.com/rs/zerolog"

// Option configures a MentionScorer.
type Option func(*config)

type config struct {
	threshold   float64
	strictNames bool
	contiguous  bool
	logger      zerolog.Logger
}

func defaultConfig() config {
	return config{
		threshold: 0,
		logger:    zerolog.Nop(),
	}
}

// WithThreshold sets the logit decision boundary (default: 0).
// The top candidate is predicted true only when its score is strictly greater.
func WithThreshold(t float64) Option {
	return func(c *config) {
		c.threshold = t
	}
}

// WithStrictNames makes a candidate name slice whose length differs from the
// row count an ErrShapeMismatch instead of silently disabling the trace.
func WithStrictNames() Option {
	return func(c *config) {
		c.strictNames = true
	}
}

// WithContiguousGroups walks the rows in fixed windows sized by the key count,
// which requires all rows of a mention to be adjacent. Windows spanning more
// than one key fail with ErrNonContiguousGroup.
func WithContiguousGroups() Option {
	return func(c *config) {
		c.contiguous = true
	}
}

// WithLogger sets the logger used for debug output (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
