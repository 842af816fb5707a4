// SPDX-License-Identifier: Apache-2.0

package parsers

import "github.com/entitylink/edeval/internal/report"

// NewDefaultPipeline builds a Pipeline with all parsers registered.
// The report parser is registered before the generic YAML parser.
func NewDefaultPipeline() *report.Pipeline {
	return report.NewPipeline(
		NewSemicolonParser(),
		NewYAMLParser(),
	)
}
