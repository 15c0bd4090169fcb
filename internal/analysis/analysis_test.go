package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cubesight/cubesight"
)

func mustMoves(t *testing.T, notation string) []cubesight.Move {
	t.Helper()
	moves, err := cubesight.ParseMoves(notation)
	require.NoError(t, err)
	return moves
}

func TestFindTriggersSexy(t *testing.T) {
	moves := mustMoves(t, "F R U R' U' R U R' U' F'")
	matches := FindTriggers(moves, AllTriggers)
	require.Len(t, matches, 2)
	require.Equal(t, "Sexy Move", matches[0].Name)
	require.Equal(t, 1, matches[0].StartIndex)
	require.Equal(t, 4, matches[0].EndIndex)
	require.Equal(t, 5, matches[1].StartIndex)
}

// Sune starts with the sexy move's first three turns; the longer
// trigger must win.
func TestFindTriggersPrefersLonger(t *testing.T) {
	moves := cubesight.SuneAlg
	matches := FindTriggers(moves, AllTriggers)
	require.Len(t, matches, 1)
	require.Equal(t, "Sune", matches[0].Name)
}

func TestFindTriggersNoOverlap(t *testing.T) {
	moves := mustMoves(t, "R U R' U' R U R' U'")
	matches := FindTriggers(moves, AllTriggers)
	require.Len(t, matches, 2)
	require.Equal(t, 0, matches[0].StartIndex)
	require.Equal(t, 4, matches[1].StartIndex)
}

func TestFindTriggersEmpty(t *testing.T) {
	require.Empty(t, FindTriggers(mustMoves(t, "R2 L2 D"), AllTriggers))
	require.Empty(t, FindTriggers(nil, AllTriggers))
}

func TestCountTriggers(t *testing.T) {
	moves := mustMoves(t, "R U R' U' F2 R U R' U'")
	counts := CountTriggers(FindTriggers(moves, AllTriggers))
	require.Equal(t, map[string]int{"Sexy Move": 2}, counts)
}

func TestAnalyzePauses(t *testing.T) {
	ts := []int64{0, 300, 2200, 2500, 6000}
	pauses := AnalyzePauses(ts, 1500)
	require.Len(t, pauses, 2)
	require.Equal(t, 1, pauses[0].AfterMoveIndex)
	require.Equal(t, int64(1900), pauses[0].DurationMs)
	require.Equal(t, int64(3500), pauses[1].DurationMs)
}

func TestCalculateTPS(t *testing.T) {
	require.InDelta(t, 2.0, CalculateTPS(20, 10000), 1e-9)
	require.Zero(t, CalculateTPS(20, 0))
}

func TestSummarize(t *testing.T) {
	moves := mustMoves(t, "R U R' U' F2")
	ts := []int64{0, 250, 500, 2200, 2400}

	s := Summarize("solve-1", moves, ts, 2400)
	require.Equal(t, 5, s.TotalMoves)
	require.Equal(t, int64(2400), s.DurationMs)
	require.Equal(t, 1, s.PauseCountOver1500)
	require.Equal(t, int64(1700), s.LongestPauseMs)
	require.Equal(t, map[string]int{"Sexy Move": 1}, s.TriggerCounts)
	require.InDelta(t, 600.0, s.AvgMoveDurationMs, 1e-9)
	require.InDelta(t, 5.0/2.4, s.TPSOverall, 1e-9)
}
