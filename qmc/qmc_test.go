package qmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizeSingleMintermIsIdentity(t *testing.T) {
	solution := Minimize([]uint64{3}, 2)
	require.Len(t, solution, 1)
	assert.True(t, CheckSolution(solution, []uint64{3}, 2))
}

func TestMinimizeCombinesAdjacentMinterms(t *testing.T) {
	// f(a,b) = a'b + ab = b, minterms {01, 11} over 2 vars
	solution := Minimize([]uint64{1, 3}, 2)
	require.True(t, CheckSolution(solution, []uint64{1, 3}, 2))
	// the two terms should combine into a single don't-care cube
	assert.Len(t, solution, 1)
}

func TestMinimizeClassicThreeVariableExample(t *testing.T) {
	// f = sum of minterms 0,1,2,5,6,7 over 3 variables
	onSet := []uint64{0, 1, 2, 5, 6, 7}
	solution := Minimize(onSet, 3)
	assert.True(t, CheckSolution(solution, onSet, 3))
}

func TestMinimizeRequiresHeuristicFallback(t *testing.T) {
	// a cyclic prime chart with no essential primes forces the
	// most-columns-covered heuristic pick to terminate the loop.
	onSet := []uint64{8, 9, 10, 13, 14, 15}
	solution := Minimize(onSet, 4)
	assert.True(t, CheckSolution(solution, onSet, 4))
}

func TestEvalCoversMatchesDontCarePositions(t *testing.T) {
	solution := Minimize([]uint64{1, 3}, 2)
	assert.True(t, EvalCovers(solution, 1, 2))
	assert.True(t, EvalCovers(solution, 3, 2))
	assert.False(t, EvalCovers(solution, 0, 2))
	assert.False(t, EvalCovers(solution, 2, 2))
}

func TestMinimizeEmptyOnSet(t *testing.T) {
	solution := Minimize(nil, 2)
	assert.Empty(t, solution)
	assert.True(t, CheckSolution(solution, nil, 2))
}
