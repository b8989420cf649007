package exactcover

// VerifyCover checks whether the selected rows form a valid exact cover of
// rel: every column covered by exactly one selected row. It is independent
// of Solve and suitable for cross-checking externally produced answers.
//
// The empty selection is a valid exact cover of a zero-column relation.
//
// Returns nil when rows is an exact cover, otherwise the first applicable
// sentinel in this order:
//   - ErrNilRelation      — rel is nil.
//   - ErrOutOfRange       — a selected index is outside the relation.
//   - ErrDuplicateRow     — a row is selected more than once.
//   - ErrOverlappingRows  — two selected rows cover a common column.
//   - ErrUncoveredColumns — some column is covered by no selected row.
//
// Complexity: O(len(rows)·C) time, O(R+C) extra space.
func VerifyCover(rel *Relation, rows []int) error {
	if rel == nil {
		return ErrNilRelation
	}
	var (
		selected = make([]bool, rel.rows)
		covered  = make([]bool, rel.cols)
		r, c     int
	)
	for _, r = range rows {
		if r < 0 || r >= rel.rows {
			return ErrOutOfRange
		}
		if selected[r] {
			return ErrDuplicateRow
		}
		selected[r] = true
		for c = 0; c < rel.cols; c++ {
			if !rel.cells[r][c] {
				continue
			}
			if covered[c] {
				return ErrOverlappingRows
			}
			covered[c] = true
		}
	}
	for c = 0; c < rel.cols; c++ {
		if !covered[c] {
			return ErrUncoveredColumns
		}
	}

	return nil
}
