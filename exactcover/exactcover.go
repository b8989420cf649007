// Package exactcover — Algorithm X (recursive backtracking exact cover search).
//
// Solve enumerates candidate sub-collections depth-first and halts at the
// first exact cover found. The search is fully deterministic: branching order
// depends only on the input relation, never on wall-clock time or map order.
//
// Algorithm Outline:
//  1. Base case — success: a view with zero live columns means every universe
//     element is already covered; report success at this depth.
//  2. Column heuristic: order the live columns by covering-row count
//     ascending, breaking ties by original column index (stable). Branching
//     on the most-constrained column first minimizes the branching factor
//     and fails fast on dead ends; it affects speed, not correctness.
//  3. Base case — failure: if the least-covered column has zero covering
//     rows, no completion can ever cover it; report failure immediately.
//  4. Branch: for each column (heuristic order), for each live row covering
//     it (ascending original row order):
//     a. append the row's original index to the solution accumulator;
//     b. reduce the view — drop every column the row covers, then drop every
//     row that covers any dropped column (double coverage is forbidden);
//     c. recurse on the reduced view;
//     d. on success, short-circuit all the way up (first solution wins);
//     e. on failure, pop the appended index and continue.
//  5. All branches exhausted ⇒ failure, accumulator exactly as on entry.
//
// View discipline:
//
//	Each recursion level carries explicit ordered index sets of live
//	original row indices and live original column indices. All incidence
//	lookups go through these sets, so every surviving row/column maps back
//	to the original relation at any depth; nothing is renumbered or copied.
//
// Complexity:
//   - Worst case exponential in R (exhaustive backtracking).
//   - Per node: O(R·C) reduction + O(C·log C) column ordering.
//   - Memory: O(R+C) per level; recursion depth ≤ R (a selected row always
//     covers the branch column, so each commit consumes at least one row).
//
// Errors:
//   - ErrNilRelation    — rel is nil.
//   - ErrBadOptions     — negative TimeLimit.
//   - ErrTimeLimit      — positive time budget exhausted before conclusion.

package exactcover

import (
	"sort"
	"time"
)

// deadlineMask throttles deadline checks to one per 4096 node events.
const deadlineMask = 4095

// xEngine holds all search data and policies.
// A dedicated engine struct (instead of closures over Solve locals) keeps
// hot-path state predictable and the recursion signature minimal.
type xEngine struct {
	// Immutable input.
	cells [][]bool

	// Solution accumulator: original row indices along the current path.
	// Push on tentative selection, pop on backtrack; paired on every
	// failing branch so nothing leaks into siblings or the final result.
	chosen []int

	// Soft time budget.
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter
}

// colCount pairs a live column with its covering-row count within the view.
type colCount struct {
	col   int // original column index
	count int // number of live rows covering col
}

// deadlineCheck performs a rare deadline test (every 4096 node events).
func (e *xEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&deadlineMask) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// columnOrder counts covering rows per live column and returns the columns
// sorted by count ascending, ties by original column index.
// Complexity: O(R·C) counting + O(C·log C) sort.
func (e *xEngine) columnOrder(liveRows, liveCols []int) []colCount {
	order := make([]colCount, len(liveCols))
	var (
		i int // position within liveCols
		c int // original column index
		r int // original row index
		n int // covering-row count for column c
	)
	for i, c = range liveCols {
		n = 0
		for _, r = range liveRows {
			if e.cells[r][c] {
				n++
			}
		}
		order[i] = colCount{col: c, count: n}
	}
	sort.Slice(order, func(a, b int) bool {
		if order[a].count == order[b].count {
			return order[a].col < order[b].col
		}

		return order[a].count < order[b].count
	})

	return order
}

// reduce computes the child view after selecting row sel: live columns that
// sel covers are removed (now satisfied), and live rows covering any removed
// column are removed (they would double-cover). sel itself always covers the
// branch column, so it never survives into the child view.
// Complexity: O(R·C) over the current view.
func (e *xEngine) reduce(liveRows, liveCols []int, sel int) (subRows, subCols []int) {
	subCols = make([]int, 0, len(liveCols))
	var (
		c int // original column index
		r int // original row index
	)
	for _, c = range liveCols {
		if !e.cells[sel][c] {
			subCols = append(subCols, c)
		}
	}
	subRows = make([]int, 0, len(liveRows))
	for _, r = range liveRows {
		conflict := false
		for _, c = range liveCols {
			if e.cells[sel][c] && e.cells[r][c] {
				conflict = true

				break
			}
		}
		if !conflict {
			subRows = append(subRows, r)
		}
	}

	return subRows, subCols
}

// dfs performs the core search over the (liveRows, liveCols) view.
// Returns true exactly when an exact cover of the view was committed to
// e.chosen; on false, e.chosen is restored to its state on entry.
func (e *xEngine) dfs(liveRows, liveCols []int) bool {
	// Sparse time check (practically free). A timed-out search unwinds as
	// "not found"; Solve re-checks the clock before reporting no cover.
	if e.deadlineCheck() {
		return false
	}

	// All universe elements covered by previously selected rows.
	if len(liveCols) == 0 {
		return true
	}

	order := e.columnOrder(liveRows, liveCols)

	// The least-covered column has no covering row: this branch is dead.
	if order[0].count == 0 {
		return false
	}

	var (
		oc colCount
		r  int // original row index of the candidate selection
	)
	for _, oc = range order {
		// liveRows is kept ascending, so candidates arrive in original order.
		for _, r = range liveRows {
			if !e.cells[r][oc.col] {
				continue
			}
			e.chosen = append(e.chosen, r)
			subRows, subCols := e.reduce(liveRows, liveCols, r)
			if e.dfs(subRows, subCols) {
				return true
			}
			e.chosen = e.chosen[:len(e.chosen)-1]
		}
	}

	return false
}

// Solve searches rel for an exact cover and returns the 0-based original row
// indices of the first one found, in selection order.
//
// An empty result with a nil error means no exact cover exists. Note the
// deliberate coincidence with the zero-column case: a relation with no
// columns is exactly covered by selecting nothing, so Solve reports success
// with an empty result there too. Callers needing to tell the two apart
// should inspect rel.Cols() == 0 alongside the result.
//
// The input relation is never mutated; the returned slice is freshly
// allocated and owned by the caller.
//
// Errors:
//   - ErrNilRelation if rel is nil.
//   - ErrBadOptions if opts.TimeLimit is negative.
//   - ErrTimeLimit if a positive time budget ran out before the search
//     concluded (a cover found before the deadline is still returned).
//
// Example:
//
//	rel, _ := exactcover.RelationFromSets(7, [][]int{
//	    {0, 3, 6}, {0, 3}, {3, 4, 6}, {2, 4, 5}, {1, 2, 5, 6}, {1, 6},
//	})
//	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
//	// rows == [1, 3, 5]
func Solve(rel *Relation, opts Options) ([]int, error) {
	if rel == nil {
		return nil, ErrNilRelation
	}
	if opts.TimeLimit < 0 {
		return nil, ErrBadOptions
	}

	var e xEngine
	e.cells = rel.cells
	e.chosen = make([]int, 0, rel.rows)
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Root view: every original row and column is live.
	liveRows := make([]int, rel.rows)
	for i := range liveRows {
		liveRows[i] = i
	}
	liveCols := make([]int, rel.cols)
	for j := range liveCols {
		liveCols[j] = j
	}

	found := e.dfs(liveRows, liveCols)

	// A found cover wins even under a passed deadline (the search is over);
	// only an inconclusive timed-out search surfaces ErrTimeLimit.
	if !found && e.useDeadline && time.Now().After(e.deadline) {
		return nil, ErrTimeLimit
	}

	out := make([]int, len(e.chosen))
	copy(out, e.chosen)

	return out, nil
}
