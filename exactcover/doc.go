// Package exactcover solves the exact cover problem with Knuth's Algorithm X
// over a dense boolean incidence relation.
//
// What:
//
//   - Relation wraps a rectangular [][]bool: Relation[i][j] reports whether
//     candidate subset i contains universe element j.
//   - Solve returns the 0-based row indices of the first exact cover found —
//     a sub-collection of rows covering every column exactly once — or an
//     empty result when no cover exists.
//   - VerifyCover independently checks a proposed cover against a relation.
//
// Why:
//
//   - Tiling & packing: pentominoes, polyomino fits, rectangle dissections.
//   - Constraint puzzles: sudoku, n-queens and friends reduce to exact cover.
//   - Scheduling & selection: pick non-overlapping option sets that use
//     every resource exactly once.
//
// Algorithm:
//
//	Recursive backtracking over shrinking views of live row/column index
//	sets. Each level branches on the least-covered column first (fewest
//	covering rows, ties by original column order), selects a covering row,
//	removes the columns it satisfies plus every row that would double-cover
//	them, and recurses. The first success short-circuits the whole search.
//
// Complexity:
//
//   - Worst case exponential in R (exhaustive search). The min-count column
//     heuristic keeps practical instances tractable.
//   - Per node: O(R·C) view reduction + O(C·log C) column ordering.
//   - Memory: O(R+C) per recursion level, depth ≤ R.
//
// Options:
//
//   - Options.TimeLimit: optional soft wall-clock budget, checked sparsely
//     between branch attempts; 0 disables.
//
// Errors:
//
//   - ErrRaggedRelation: rows of differing lengths.
//   - ErrBadOptions: negative TimeLimit.
//   - ErrTimeLimit: a positive time budget was exhausted before the search
//     concluded.
//   - ErrBadShape / ErrElementOutOfRange: invalid constructor arguments.
//   - ErrRowOutOfRange / ErrOverlappingRows / ErrUncoveredColumns: cover
//     verification failures (VerifyCover only).
//
// Absence of a cover is NOT an error: Solve reports it as an empty result.
package exactcover
