// Package exactcover defines core types, options, and sentinel errors
// for the exactcover package of github.com/katalvlaran/xcover.
package exactcover

import (
	"errors"
	"time"
)

// Sentinel errors for exactcover operations.
// All are matched via errors.Is; functions never panic on user input.
var (
	// ErrNilRelation indicates a nil *Relation was passed.
	ErrNilRelation = errors.New("exactcover: relation is nil")
	// ErrRaggedRelation indicates incidence rows of differing lengths.
	ErrRaggedRelation = errors.New("exactcover: all incidence rows must have the same length")
	// ErrBadShape indicates a negative row or column count was requested.
	ErrBadShape = errors.New("exactcover: relation dimensions must be non-negative")
	// ErrOutOfRange indicates a row or column index outside the relation bounds.
	ErrOutOfRange = errors.New("exactcover: index out of range")
	// ErrElementOutOfRange indicates a subset references an element outside the universe.
	ErrElementOutOfRange = errors.New("exactcover: subset element outside universe range")
	// ErrBadOptions indicates an invalid Options combination (e.g. negative TimeLimit).
	ErrBadOptions = errors.New("exactcover: invalid options")
	// ErrTimeLimit indicates a positive time budget was exhausted mid-search.
	ErrTimeLimit = errors.New("exactcover: time limit exceeded")
	// ErrDuplicateRow indicates a proposed cover selects the same row twice.
	ErrDuplicateRow = errors.New("exactcover: row selected more than once")
	// ErrOverlappingRows indicates two selected rows cover a common column.
	ErrOverlappingRows = errors.New("exactcover: selected rows overlap on a column")
	// ErrUncoveredColumns indicates at least one column is covered by no selected row.
	ErrUncoveredColumns = errors.New("exactcover: selected rows leave columns uncovered")
)

// Relation is a dense boolean incidence structure between candidate subsets
// (rows) and universe elements (columns): entry (i, j) == true means subset
// i contains universe element j. Indices are 0-based end-to-end; the row
// indices returned by Solve refer to construction order.
//
// Dimensions are stored explicitly, so degenerate shapes — zero rows over a
// non-empty universe, or zero columns — are representable and meaningful.
// Solve treats a Relation as immutable input; constructors deep-copy any
// caller-supplied storage.
type Relation struct {
	rows, cols int
	cells      [][]bool
}

// Rows returns the number of candidate subsets.
// Complexity: O(1).
func (rel *Relation) Rows() int { return rel.rows }

// Cols returns the number of universe elements.
// Complexity: O(1).
func (rel *Relation) Cols() int { return rel.cols }

// At reports whether subset i contains element j.
// Returns ErrOutOfRange for indices outside the relation bounds.
// Complexity: O(1).
func (rel *Relation) At(i, j int) (bool, error) {
	if i < 0 || i >= rel.rows || j < 0 || j >= rel.cols {
		return false, ErrOutOfRange
	}

	return rel.cells[i][j], nil
}

// Set records whether subset i contains element j. Intended for building a
// relation before handing it to Solve; a relation must not be mutated while
// a search over it is in flight.
// Returns ErrOutOfRange for indices outside the relation bounds.
// Complexity: O(1).
func (rel *Relation) Set(i, j int, member bool) error {
	if i < 0 || i >= rel.rows || j < 0 || j >= rel.cols {
		return ErrOutOfRange
	}
	rel.cells[i][j] = member

	return nil
}

// NewRelation allocates an all-false Relation with the given shape.
// Either dimension may be zero. Returns ErrBadShape for negative dimensions.
// Complexity: O(R×C) time and memory.
func NewRelation(rows, cols int) (*Relation, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}

	return &Relation{rows: rows, cols: cols, cells: cells}, nil
}

// RelationFromRows builds a Relation from a rectangular [][]bool, where
// rows[i][j] marks membership of element j in subset i. The input is
// deep-copied to ensure immutability. An empty input yields the 0×0 relation.
// Returns ErrRaggedRelation if any row length differs from the first.
// Complexity: O(R×C) time and memory.
func RelationFromRows(rows [][]bool) (*Relation, error) {
	if len(rows) == 0 {
		return &Relation{}, nil
	}
	width := len(rows[0])
	cells := make([][]bool, len(rows))
	var i int
	for i = range rows {
		if len(rows[i]) != width {
			return nil, ErrRaggedRelation
		}
		cells[i] = make([]bool, width)
		copy(cells[i], rows[i])
	}

	return &Relation{rows: len(rows), cols: width, cells: cells}, nil
}

// RelationFromSets builds a Relation from element-list subsets over a
// universe of `universe` elements numbered 0..universe-1. Row i of the
// result is the incidence vector of sets[i]; duplicate elements within one
// subset collapse into a single membership.
//
// Returns ErrBadShape for a negative universe and ErrElementOutOfRange for
// any element outside [0, universe).
// Complexity: O(R×C + Σ|sets[i]|).
func RelationFromSets(universe int, sets [][]int) (*Relation, error) {
	rel, err := NewRelation(len(sets), universe)
	if err != nil {
		return nil, err
	}
	var (
		i int // subset index
		e int // element under insertion
	)
	for i = range sets {
		for _, e = range sets[i] {
			if e < 0 || e >= universe {
				return nil, ErrElementOutOfRange
			}
			rel.cells[i][e] = true
		}
	}

	return rel, nil
}

// Options contains tunable parameters for the exact cover search.
type Options struct {
	// TimeLimit is an optional soft wall-clock budget for Solve.
	// The deadline is checked sparsely between branch attempts; when it
	// passes before the search concludes, Solve returns ErrTimeLimit.
	// Zero disables the budget. Negative values are rejected (ErrBadOptions).
	TimeLimit time.Duration
}

// DefaultOptions returns an Options with default settings: no time budget.
func DefaultOptions() Options {
	return Options{TimeLimit: 0}
}
