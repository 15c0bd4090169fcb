package cubesight

import "math/rand"

// scrambleFaces are the outer-face letters used when generating
// scrambles. Slice and wide turns are excluded on purpose: standard
// scramble notation sticks to face turns.
var scrambleFaces = []string{"R", "L", "U", "D", "F", "B"}

var scrambleSuffixes = []string{"", "'", "2"}

// Scramble generates n random face turns, never turning the same face
// twice in a row. The rand source is injected so sequences are
// reproducible in tests.
func Scramble(r *rand.Rand, n int) []Move {
	moves := make([]Move, 0, n)
	last := -1
	for len(moves) < n {
		f := r.Intn(len(scrambleFaces))
		if f == last {
			continue
		}
		last = f
		notation := scrambleFaces[f] + scrambleSuffixes[r.Intn(len(scrambleSuffixes))]
		m, err := ParseMove(notation)
		if err != nil {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}
