// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Column positions in a semicolon report line.
const (
	ColDoc = iota
	ColMention
	ColGroundTruth
	ColAccuracy
	ColCandidate
	ColLabel
	ColTopPrediction
	ColPrediction
)

// MinColumns is the column count below which a line ends the report.
const MinColumns = 7

// Columns is the fixed report header, in order.
var Columns = []string{"doc", "mention_i", "mention", "accuracy", "candidate", "label", "top_pred", "prediction"}

// SplitLine splits a report line on ';' and trims every field.
func SplitLine(line string) []string {
	cols := strings.Split(strings.TrimRight(line, "\r"), ";")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

// CheckHeader reports whether line is the report header.
func CheckHeader(line string) error {
	if strings.TrimSpace(line) == "" {
		return fmt.Errorf("%w: missing header", ErrReportFormat)
	}
	cols := SplitLine(line)
	if len(cols) != len(Columns) {
		return fmt.Errorf("%w: header has %d columns, want %d", ErrReportFormat, len(cols), len(Columns))
	}
	for i, want := range Columns {
		if cols[i] != want {
			return fmt.Errorf("%w: header column %d is %q, want %q", ErrReportFormat, i+1, cols[i], want)
		}
	}
	return nil
}

// ParseScoreVector tokenizes a bracketed score sequence such as
// "[ 0.25 -1.5]" into floats. Brackets, commas and runs of whitespace are
// delimiters; empty tokens are skipped.
func ParseScoreVector(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '[' || r == ']' || r == ',' || unicode.IsSpace(r)
	})
	scores := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: score %q: %w", ErrReportFormat, f, err)
		}
		scores = append(scores, v)
	}
	return scores, nil
}
