// Package analysis computes statistics and trigger usage over recorded
// move sequences.
package analysis

import "github.com/cubesight/cubesight"

// Trigger is a named algorithm to look for in a solve.
type Trigger struct {
	Name     string
	Sequence []cubesight.Move
}

var (
	SexyTrigger = Trigger{
		Name:     "Sexy Move",
		Sequence: cubesight.SexyMove,
	}

	SuneTrigger = Trigger{
		Name:     "Sune",
		Sequence: cubesight.SuneAlg,
	}

	AntiSuneTrigger = Trigger{
		Name:     "Anti-Sune",
		Sequence: cubesight.AntiSuneAlg,
	}

	TPermTrigger = Trigger{
		Name:     "T Perm",
		Sequence: cubesight.TPermAlg,
	}
)

// AllTriggers lists the known triggers, longest first so overlapping
// matches prefer the more specific algorithm.
var AllTriggers = []Trigger{TPermTrigger, SuneTrigger, AntiSuneTrigger, SexyTrigger}

// TriggerMatch is a detected trigger usage within a move sequence.
type TriggerMatch struct {
	Name       string `json:"name"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// FindTriggers scans a move sequence for known triggers. Matches never
// overlap; scanning resumes after each match.
func FindTriggers(moves []cubesight.Move, triggers []Trigger) []TriggerMatch {
	var matches []TriggerMatch

	for i := 0; i < len(moves); {
		matched := false
		for _, tr := range triggers {
			if matchesAt(moves, i, tr.Sequence) {
				matches = append(matches, TriggerMatch{
					Name:       tr.Name,
					StartIndex: i,
					EndIndex:   i + len(tr.Sequence) - 1,
				})
				i += len(tr.Sequence)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}

	return matches
}

func matchesAt(moves []cubesight.Move, start int, seq []cubesight.Move) bool {
	if start+len(seq) > len(moves) {
		return false
	}
	for j, want := range seq {
		if moves[start+j].Notation() != want.Notation() {
			return false
		}
	}
	return true
}

// CountTriggers tallies matches by trigger name.
func CountTriggers(matches []TriggerMatch) map[string]int {
	counts := make(map[string]int)
	for _, m := range matches {
		counts[m.Name]++
	}
	return counts
}
