// Package cubesight models a 3x3x3 twisty puzzle as 27 pieces with
// explicit positions and orientations, and classifies the puzzle's solve
// state into the phases of the CFOP method (Cross, F2L, OLL, PLL,
// Solved), including the named OLL and PLL sub-cases recognized by a
// 2-look last layer.
//
// # Quick Start
//
// Apply moves to a snapshot and analyze it:
//
//	c := cubesight.New()
//	c = c.Apply(cubesight.R).Apply(cubesight.U)
//
//	a := cubesight.Analyze(c)
//	fmt.Println(a.Phase, a.Base)
//
// Or parse standard notation:
//
//	c, err := cubesight.New().ApplyNotation("R U R' U'")
//
// # Snapshots
//
// A Cube is an immutable snapshot: Apply returns a new snapshot and never
// mutates the receiver, so an analysis and a subsequent move can never
// race. Analyze is a pure function of the snapshot and is idempotent.
//
// # Phase detection
//
// The analyzer has no notion of which face the solver treats as the
// bottom. It evaluates all six centers as candidate base faces and
// reports the most advanced result:
//
//   - PhaseCross: no candidate base has a finished cross (fallback)
//   - PhaseF2L: cross done, first two layers in progress
//   - PhaseOLL: first two layers done, last layer not yet oriented
//   - PhasePLL: last layer oriented, not yet permuted
//   - PhaseSolved: every pair, orientation and permutation in place
//
// OLL and PLL states additionally carry the recognized sub-case name
// (Sune, Anti-Sune, H, Pi, T-style headlights, and so on) in the
// Analysis detail.
//
// # Tracking
//
// Tracker wraps a snapshot and fires a callback whenever a solve reaches
// a new highest phase:
//
//	t := cubesight.NewTracker()
//	t.SetPhaseCallback(func(a cubesight.Analysis) {
//	    fmt.Println("reached:", a.Phase.DisplayName())
//	})
//	t.ApplyMove(cubesight.RPrime)
package cubesight
