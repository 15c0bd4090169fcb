package analysis

import "github.com/cubesight/cubesight"

// SolveSummary contains statistics for a single solve.
type SolveSummary struct {
	SolveID            string         `json:"solve_id"`
	DurationMs         int64          `json:"duration_ms"`
	TotalMoves         int            `json:"total_moves"`
	TPSOverall         float64        `json:"tps_overall"`
	LongestPauseMs     int64          `json:"longest_pause_ms"`
	PauseCountOver1500 int            `json:"pause_count_over_1500ms"`
	AvgMoveDurationMs  float64        `json:"avg_move_duration_ms"`
	TriggerCounts      map[string]int `json:"trigger_counts,omitempty"`
	FinalPhase         string         `json:"final_phase,omitempty"`
	Solved             bool           `json:"solved"`
}

// PauseInfo represents a pause between two moves.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// pauseThresholdMs is the gap above which a pause counts as a stall.
const pauseThresholdMs = 1500

// Summarize builds a SolveSummary from the recorded moves and their
// millisecond timestamps (relative to solve start).
func Summarize(solveID string, moves []cubesight.Move, tsMs []int64, durationMs int64) SolveSummary {
	s := SolveSummary{
		SolveID:    solveID,
		DurationMs: durationMs,
		TotalMoves: len(moves),
		TPSOverall: CalculateTPS(len(moves), durationMs),
	}

	pauses := AnalyzePauses(tsMs, pauseThresholdMs)
	s.PauseCountOver1500 = len(pauses)
	s.LongestPauseMs = FindLongestPause(tsMs)
	s.AvgMoveDurationMs = CalculateAvgMoveDuration(tsMs)

	if matches := FindTriggers(moves, AllTriggers); len(matches) > 0 {
		s.TriggerCounts = CountTriggers(matches)
	}

	return s
}

// AnalyzePauses finds all gaps of at least thresholdMs between moves.
func AnalyzePauses(tsMs []int64, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(tsMs); i++ {
		gap := tsMs[i] - tsMs[i-1]
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           tsMs[i-1],
			})
		}
	}

	return pauses
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moveCount int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moveCount) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average gap between moves.
func CalculateAvgMoveDuration(tsMs []int64) float64 {
	if len(tsMs) < 2 {
		return 0
	}

	totalGap := tsMs[len(tsMs)-1] - tsMs[0]
	return float64(totalGap) / float64(len(tsMs)-1)
}

// FindLongestPause finds the longest gap between consecutive moves.
func FindLongestPause(tsMs []int64) int64 {
	var longest int64

	for i := 1; i < len(tsMs); i++ {
		if gap := tsMs[i] - tsMs[i-1]; gap > longest {
			longest = gap
		}
	}

	return longest
}
