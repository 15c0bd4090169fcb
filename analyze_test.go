package cubesight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeSolved(t *testing.T) {
	a := Analyze(New())
	require.Equal(t, PhaseSolved, a.Phase)
	require.True(t, a.Solved)
	require.NotEqual(t, ColorNone, a.Base)
	require.Nil(t, a.Detail)
}

func TestAnalyzeFromEveryBaseSolved(t *testing.T) {
	c := New()
	for _, base := range baseColors {
		a, ok := AnalyzeFrom(c, base)
		require.True(t, ok, base.Name())
		require.Equal(t, PhaseSolved, a.Phase, base.Name())
		require.True(t, a.Solved, base.Name())
		require.Equal(t, base, a.Base)
	}
}

// A single face turn only rotates the last layer relative to the
// opposite base, so the analysis still reads solved from that base.
func TestAnalyzeSingleTurn(t *testing.T) {
	faces := map[string]Color{
		"R": Red, "L": Orange, "U": White,
		"D": Yellow, "F": Green, "B": Blue,
	}
	for letter, faceColor := range faces {
		m, err := ParseMove(letter)
		require.NoError(t, err)
		a := Analyze(New().Apply(m))
		require.Equal(t, PhaseSolved, a.Phase, letter)
		require.Equal(t, OppositeColor(faceColor), a.Base, letter)
	}
}

// Relative to the turned face's own base the same state reads as F2L
// with every middle-layer slot open.
func TestAnalyzeFromWhiteAfterU(t *testing.T) {
	a, ok := AnalyzeFrom(New().Apply(U), White)
	require.True(t, ok)
	require.Equal(t, PhaseF2L, a.Phase)
	require.Equal(t, F2LDetail{Stage: F2LSecondLayer, Missing: 4}, a.Detail)
}

// A middle-slice turn keeps every cross intact from the top and bottom
// bases but leaves all four of their middle-layer slots open, so no
// base may read solved.
func TestAnalyzeMiddleSliceTurn(t *testing.T) {
	a := Analyze(New().Apply(E))
	require.Equal(t, PhaseF2L, a.Phase)
	require.Equal(t, White, a.Base)
	require.False(t, a.Solved)
	require.Equal(t, F2LDetail{Stage: F2LSecondLayer, Missing: 4}, a.Detail)
}

// Two turns of adjacent faces leave no base with a complete cross.
func TestAnalyzeFallsBackToCross(t *testing.T) {
	a := Analyze(New().ApplyAll(R, U))
	require.Equal(t, PhaseCross, a.Phase)
	require.Equal(t, ColorNone, a.Base)
	require.False(t, a.Solved)
}

// With three pairs done the stage label is dropped and only the open
// slot count remains.
func TestAnalyzeFlippedMiddleEdge(t *testing.T) {
	c := flipEdge(New(), corner(1, 0, 1))
	a, ok := AnalyzeFrom(c, White)
	require.True(t, ok)
	require.Equal(t, PhaseF2L, a.Phase)
	require.Equal(t, F2LDetail{Missing: 1}, a.Detail)
}

func TestAnalyzeFirstLayerMissingThree(t *testing.T) {
	c := New()
	c = twistCorner(c, corner(1, 1, 1), 1)
	c = twistCorner(c, corner(1, 1, -1), 1)
	c = twistCorner(c, corner(-1, 1, 1), 1)
	a, ok := AnalyzeFrom(c, White)
	require.True(t, ok)
	require.Equal(t, PhaseF2L, a.Phase)
	require.Equal(t, F2LDetail{Stage: F2LFirstLayer, Missing: 3}, a.Detail)
}

func TestAnalyzePairsWithoutStage(t *testing.T) {
	c := New()
	c = twistCorner(c, corner(1, 1, 1), 1)
	c = flipEdge(c, corner(-1, 0, -1))
	a, ok := AnalyzeFrom(c, White)
	require.True(t, ok)
	require.Equal(t, PhaseF2L, a.Phase)
	require.Equal(t, F2LDetail{Stage: F2LPairs, Missing: 2}, a.Detail)
}

func TestAnalyzeIsPure(t *testing.T) {
	c := New().ApplyAll(SuneAlg...)
	first := Analyze(c)
	second := Analyze(c)
	require.Equal(t, first, second)
}

func TestPlacedRelativeToRotatedCenter(t *testing.T) {
	// A whole-cube rotation keeps every piece placed relative to every
	// center.
	full := Move{Axis: AxisX, Layers: []int{-1, 0, 1}, Turn: Quarter}
	c := New().Apply(full)
	for _, ctr := range c.centers() {
		for _, p := range c.Pieces() {
			if p.Kind() == KindCore {
				continue
			}
			require.True(t, placed(p, ctr))
		}
	}
}

func TestBetterRanking(t *testing.T) {
	oll := Analysis{Phase: PhaseOLL}
	f2lTwo := Analysis{Phase: PhaseF2L, Detail: F2LDetail{Missing: 2}}
	f2lThree := Analysis{Phase: PhaseF2L, Detail: F2LDetail{Missing: 3}}

	require.True(t, better(oll, f2lTwo))
	require.False(t, better(f2lTwo, oll))
	require.True(t, better(f2lTwo, f2lThree))
	require.False(t, better(f2lThree, f2lTwo))
}
