// SPDX-License-Identifier: Apache-2.0

package scoring

import "fmt"

type group struct {
	key  MentionKey
	rows []int
}

// groupByKey collects row indices per mention in order of first appearance.
// Rows of one mention need not be adjacent.
func groupByKey(p Predictions) []group {
	index := make(map[MentionKey]int)
	var groups []group
	for i := 0; i < p.Len(); i++ {
		key := p.key(i)
		g, ok := index[key]
		if !ok {
			g = len(groups)
			index[key] = g
			groups = append(groups, group{key: key})
		}
		groups[g].rows = append(groups[g].rows, i)
	}
	return groups
}

// groupContiguous walks the rows in windows sized by the total count of the
// key at the window start.
func groupContiguous(p Predictions) ([]group, error) {
	counts := make(map[MentionKey]int)
	for i := 0; i < p.Len(); i++ {
		counts[p.key(i)]++
	}

	groups := make([]group, 0, len(counts))
	for i := 0; i < p.Len(); {
		key := p.key(i)
		n := counts[key]
		if i+n > p.Len() {
			return nil, fmt.Errorf("%w: doc %d mention %d needs %d rows from row %d",
				ErrNonContiguousGroup, key.DocID, key.MentionID, n, i)
		}
		rows := make([]int, 0, n)
		for j := i; j < i+n; j++ {
			if p.key(j) != key {
				return nil, fmt.Errorf("%w: doc %d mention %d interrupted at row %d",
					ErrNonContiguousGroup, key.DocID, key.MentionID, j)
			}
			rows = append(rows, j)
		}
		groups = append(groups, group{key: key, rows: rows})
		i += n
	}
	return groups, nil
}
