// SPDX-License-Identifier: Apache-2.0

package scoring

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CandidateAccuracy returns the fraction of rows whose highest scoring column
// equals the row label. Rows are not grouped into mentions.
func CandidateAccuracy(scores mat.Matrix, labels []int) (float64, error) {
	r, c := scores.Dims()
	if r == 0 || c == 0 {
		return 0, fmt.Errorf("%w: empty score matrix", ErrShapeMismatch)
	}
	if r != len(labels) {
		return 0, fmt.Errorf("%w: %d score rows for %d labels", ErrShapeMismatch, r, len(labels))
	}

	correct := 0
	for i := 0; i < r; i++ {
		best := 0
		for j := 0; j < c; j++ {
			v := scores.At(i, j)
			if math.IsNaN(v) {
				return 0, fmt.Errorf("%w: row %d column %d", ErrInvalidScore, i, j)
			}
			if v > scores.At(i, best) {
				best = j
			}
		}
		if best == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(r), nil
}

// CandidateAccuracyRows is CandidateAccuracy over a slice of equally long rows.
func CandidateAccuracyRows(rows [][]float64, labels []int) (float64, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, fmt.Errorf("%w: empty score matrix", ErrShapeMismatch)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return CandidateAccuracy(mat.NewDense(len(rows), cols, data), labels)
}
