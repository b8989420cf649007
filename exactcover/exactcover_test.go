package exactcover_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/xcover/exactcover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knuthRelation builds Knuth's classic seven-element instance:
// universe {0..6}, subsets A={0,3,6} B={0,3} C={3,4,6} D={2,4,5}
// E={1,2,5,6} F={1,6}. Rows B, D, F (indices 1, 3, 5) form its unique
// exact cover.
func knuthRelation(t *testing.T) *exactcover.Relation {
	t.Helper()
	rel, err := exactcover.RelationFromSets(7, [][]int{
		{0, 3, 6},    // A
		{0, 3},       // B
		{3, 4, 6},    // C
		{2, 4, 5},    // D
		{1, 2, 5, 6}, // E
		{1, 6},       // F
	})
	require.NoError(t, err, "building the Knuth instance must not fail")

	return rel
}

// allPairsRelation builds the relation of every 2-element subset of an
// n-element universe. For odd n it has no exact cover (a perfect matching
// of an odd vertex set is impossible), yet the search space is non-trivial.
func allPairsRelation(t *testing.T, n int) *exactcover.Relation {
	t.Helper()
	sets := make([][]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sets = append(sets, []int{i, j})
		}
	}
	rel, err := exactcover.RelationFromSets(n, sets)
	require.NoError(t, err)

	return rel
}

// TestSolve_KnuthScenario verifies the classic instance resolves to its
// unique cover {1, 3, 5} and that the returned rows verify cleanly.
func TestSolve_KnuthScenario(t *testing.T) {
	rel := knuthRelation(t)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err, "well-formed instance must not error")
	assert.Equal(t, []int{1, 3, 5}, rows, "unique cover is rows B, D, F")
	assert.NoError(t, exactcover.VerifyCover(rel, rows), "returned cover must verify")
}

// TestSolve_SingleFullRow checks that one row covering the whole universe
// is selected alone.
func TestSolve_SingleFullRow(t *testing.T) {
	rel, err := exactcover.RelationFromSets(3, [][]int{{0, 1, 2}})
	require.NoError(t, err)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, rows, "the only row covers everything")
}

// TestSolve_TwoDisjointRows checks that two complementary rows are both
// selected when together they partition the universe.
func TestSolve_TwoDisjointRows(t *testing.T) {
	rel, err := exactcover.RelationFromSets(3, [][]int{{0, 1}, {2}})
	require.NoError(t, err)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, rows, "both rows are needed")
	assert.NoError(t, exactcover.VerifyCover(rel, rows))
}

// TestSolve_MissingElement checks the negative variant: a single row that
// leaves one universe element uncovered yields an empty result, not an error.
func TestSolve_MissingElement(t *testing.T) {
	rel, err := exactcover.RelationFromSets(3, [][]int{{0, 1}})
	require.NoError(t, err)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err, "absence of a cover is not an error")
	assert.Empty(t, rows, "element 2 can never be covered")
}

// TestSolve_NoRowsOverColumns checks R=0, C>0: with no candidate subsets no
// column can ever be covered, so the result is empty (failure).
func TestSolve_NoRowsOverColumns(t *testing.T) {
	rel, err := exactcover.NewRelation(0, 4)
	require.NoError(t, err)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, rows, "no rows means no cover over a non-empty universe")
}

// TestSolve_EmptyRelation checks R=0, C=0: the empty cover is the correct
// answer for an empty universe.
func TestSolve_EmptyRelation(t *testing.T) {
	rel, err := exactcover.NewRelation(0, 0)
	require.NoError(t, err)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, rows, "empty universe is covered by selecting nothing")
	assert.NoError(t, exactcover.VerifyCover(rel, rows), "empty cover of empty universe verifies")
}

// TestSolve_ZeroColumnsManyRows checks that a zero-column relation succeeds
// with the empty cover regardless of how many (necessarily empty) rows exist.
func TestSolve_ZeroColumnsManyRows(t *testing.T) {
	rel, err := exactcover.NewRelation(5, 0)
	require.NoError(t, err)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, rows, "zero columns means success with the empty cover")
	assert.NoError(t, exactcover.VerifyCover(rel, rows))
}

// TestSolve_UncoverableColumn checks immediate failure when some column has
// zero covering rows from the start.
func TestSolve_UncoverableColumn(t *testing.T) {
	rel, err := exactcover.RelationFromSets(3, [][]int{{0}, {1}})
	require.NoError(t, err)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, rows, "column 2 is covered by no row")
}

// TestSolve_InertAllFalseRow checks that a row covering no elements neither
// breaks the search nor shows up in the answer.
func TestSolve_InertAllFalseRow(t *testing.T) {
	rel, err := exactcover.RelationFromSets(7, [][]int{
		{0, 3, 6}, {0, 3}, {3, 4, 6}, {2, 4, 5}, {1, 2, 5, 6}, {1, 6},
		{}, // inert: covers nothing, can never be selected
	})
	require.NoError(t, err)

	rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, rows, "the all-false row must not disturb the cover")
}

// TestSolve_Determinism verifies repeated invocations on an instance with
// several valid covers return the identical one every time.
func TestSolve_Determinism(t *testing.T) {
	rel, err := exactcover.RelationFromSets(4, [][]int{
		{0, 1}, {2, 3}, {0, 2}, {1, 3}, {0, 1, 2, 3},
	})
	require.NoError(t, err)

	first, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, first, "instance has multiple covers, one must be found")
	require.NoError(t, exactcover.VerifyCover(rel, first))

	for i := 0; i < 5; i++ {
		again, aerr := exactcover.Solve(rel, exactcover.DefaultOptions())
		require.NoError(t, aerr)
		assert.Equal(t, first, again, "run %d must match the first run", i)
	}
}

// TestSolve_InputNotMutated snapshots every incidence entry before solving
// and confirms the relation is bit-identical afterwards.
func TestSolve_InputNotMutated(t *testing.T) {
	rel := knuthRelation(t)

	before := make([][]bool, rel.Rows())
	for i := 0; i < rel.Rows(); i++ {
		before[i] = make([]bool, rel.Cols())
		for j := 0; j < rel.Cols(); j++ {
			v, err := rel.At(i, j)
			require.NoError(t, err)
			before[i][j] = v
		}
	}

	_, err := exactcover.Solve(rel, exactcover.DefaultOptions())
	require.NoError(t, err)

	for i := 0; i < rel.Rows(); i++ {
		for j := 0; j < rel.Cols(); j++ {
			v, aerr := rel.At(i, j)
			require.NoError(t, aerr)
			assert.Equal(t, before[i][j], v, "cell (%d,%d) changed", i, j)
		}
	}
}

// TestSolve_NilRelation checks the nil-input sentinel.
func TestSolve_NilRelation(t *testing.T) {
	_, err := exactcover.Solve(nil, exactcover.DefaultOptions())
	assert.ErrorIs(t, err, exactcover.ErrNilRelation)
}

// TestSolve_NegativeTimeLimit checks that a negative budget is rejected.
func TestSolve_NegativeTimeLimit(t *testing.T) {
	rel := knuthRelation(t)
	opts := exactcover.DefaultOptions()
	opts.TimeLimit = -time.Second

	_, err := exactcover.Solve(rel, opts)
	assert.ErrorIs(t, err, exactcover.ErrBadOptions)
}

// TestSolve_TimeLimit_TinyBudget checks that an inconclusive search under an
// already-expired budget reports ErrTimeLimit instead of "no cover".
func TestSolve_TimeLimit_TinyBudget(t *testing.T) {
	rel := allPairsRelation(t, 7) // odd universe: genuinely unsatisfiable
	opts := exactcover.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	_, err := exactcover.Solve(rel, opts)
	assert.ErrorIs(t, err, exactcover.ErrTimeLimit, "expired budget must not masquerade as no-cover")
}

// TestSolve_TimeLimit_FoundWins checks that a cover found before the search
// concludes is returned even under the tiniest budget.
func TestSolve_TimeLimit_FoundWins(t *testing.T) {
	rel := knuthRelation(t)
	opts := exactcover.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	rows, err := exactcover.Solve(rel, opts)
	require.NoError(t, err, "a committed cover wins over the deadline")
	assert.Equal(t, []int{1, 3, 5}, rows)
}

// TestSolve_TimeLimit_GenerousBudget checks that a comfortable budget leaves
// the no-cover answer intact.
func TestSolve_TimeLimit_GenerousBudget(t *testing.T) {
	rel, err := exactcover.RelationFromSets(3, [][]int{{0, 1}})
	require.NoError(t, err)
	opts := exactcover.DefaultOptions()
	opts.TimeLimit = time.Minute

	rows, err := exactcover.Solve(rel, opts)
	require.NoError(t, err)
	assert.Empty(t, rows, "no-cover must survive an unexhausted budget")
}

// bruteForceHasCover exhaustively checks all 2^R row subsets for an exact
// cover. Only usable on tiny instances; the oracle for soundness testing.
func bruteForceHasCover(rel *exactcover.Relation) bool {
	var (
		nRows = rel.Rows()
		sub   []int
		mask  int
		i     int
	)
	for mask = 0; mask < 1<<uint(nRows); mask++ {
		sub = sub[:0]
		for i = 0; i < nRows; i++ {
			if mask&(1<<uint(i)) != 0 {
				sub = append(sub, i)
			}
		}
		if exactcover.VerifyCover(rel, sub) == nil {
			return true
		}
	}

	return false
}

// TestSolve_BruteForceCrossCheck compares Solve against the exhaustive
// oracle on a battery of small pseudo-random relations (fixed seed).
func TestSolve_BruteForceCrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		nRows := 1 + rng.Intn(7)
		nCols := 1 + rng.Intn(6)
		cells := make([][]bool, nRows)
		for i := range cells {
			cells[i] = make([]bool, nCols)
			for j := range cells[i] {
				cells[i][j] = rng.Intn(3) == 0
			}
		}
		rel, err := exactcover.RelationFromRows(cells)
		require.NoError(t, err)

		rows, err := exactcover.Solve(rel, exactcover.DefaultOptions())
		require.NoError(t, err, "trial %d", trial)

		if len(rows) > 0 {
			assert.NoError(t, exactcover.VerifyCover(rel, rows),
				"trial %d: non-empty answer must be a valid exact cover", trial)
		} else {
			assert.False(t, bruteForceHasCover(rel),
				"trial %d: empty answer but a cover exists", trial)
		}
	}
}
