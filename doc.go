// Package xcover solves the exact cover problem: given a universe of
// elements and a collection of candidate subsets, find a sub-collection
// whose members partition the universe exactly — each element covered by
// precisely one chosen subset — or report that none exists.
//
// 🚀 What is xcover?
//
//	A small, deterministic implementation of Knuth's Algorithm X over a
//	dense boolean incidence relation, useful for:
//	  • Tiling & packing puzzles (pentominoes, dissections)
//	  • Sudoku, n-queens and other constraint puzzles via reduction
//	  • Non-overlapping selection problems in scheduling and planning
//
// ✨ Key features:
//   - first-solution backtracking search with the min-count column heuristic
//   - explicit index-set views: returned indices always map to your input rows
//   - optional soft time budget (Options.TimeLimit)
//   - independent answer verification (VerifyCover)
//   - pure Go core — no cgo, no hidden deps
//
// Layout:
//
//	exactcover/ — Relation, Solve, VerifyCover: the entire solver core
//	cmd/xcover/ — CLI wrapper: parse a 0/1 matrix, solve, render the rows
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/xcover/exactcover"
//
//	rel, _ := exactcover.RelationFromSets(7, [][]int{
//	    {0, 3, 6}, {0, 3}, {3, 4, 6}, {2, 4, 5}, {1, 2, 5, 6}, {1, 6},
//	})
//	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
//	// rows == [1 3 5] — the unique exact cover
//
// See exactcover/doc.go for the algorithm outline, complexity and the full
// error set.
package xcover
