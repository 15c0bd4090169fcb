package cubesight

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrambleLengthAndFaces(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	moves := Scramble(r, 25)
	require.Len(t, moves, 25)

	last := ""
	for _, m := range moves {
		face := m.Notation()[:1]
		require.NotEqual(t, last, face, "consecutive turns of the same face")
		last = face
	}
}

func TestScrambleReproducible(t *testing.T) {
	a := Scramble(rand.New(rand.NewSource(42)), 20)
	b := Scramble(rand.New(rand.NewSource(42)), 20)
	require.Equal(t, FormatMoves(a), FormatMoves(b))
}

func TestScrambleRoundTrips(t *testing.T) {
	moves := Scramble(rand.New(rand.NewSource(7)), 25)
	parsed, err := ParseMoves(FormatMoves(moves))
	require.NoError(t, err)
	require.Equal(t, FormatMoves(moves), FormatMoves(parsed))

	c := New().ApplyAll(moves...)
	require.False(t, c.IsSolved())
	require.True(t, c.ApplyAll(InverseMoves(moves)...).IsSolved())
}
