package cubesight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMoveRoundTrip(t *testing.T) {
	tokens := []string{
		"R", "R'", "R2", "L", "L'", "U", "U'", "U2",
		"D", "F", "F2", "B'", "M", "M'", "E", "S", "S2",
		"r", "r'", "u2", "l", "d'", "f", "b2",
	}
	for _, tok := range tokens {
		m, err := ParseMove(tok)
		require.NoError(t, err, tok)
		require.Equal(t, tok, m.Notation(), "round trip of %q", tok)
	}
}

func TestParseMoveBacktickSuffix(t *testing.T) {
	m, err := ParseMove("R`")
	require.NoError(t, err)
	require.Equal(t, "R'", m.Notation())
}

func TestParseMoveInvalid(t *testing.T) {
	for _, tok := range []string{"", "X", "R3", "RU", "2", "'", "m"} {
		_, err := ParseMove(tok)
		require.ErrorIs(t, err, ErrInvalidNotation, "token %q", tok)
	}
}

func TestParseMovesSequence(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	require.NoError(t, err)
	require.Equal(t, []Move{R, U, RPrime, UPrime}, moves)

	_, err = ParseMoves("R U X")
	require.ErrorIs(t, err, ErrInvalidNotation)
}

func TestFormatMoves(t *testing.T) {
	require.Equal(t, "R U R' U'", FormatMoves(SexyMove))
	require.Equal(t, "", FormatMoves(nil))
}

func TestInverse(t *testing.T) {
	require.Equal(t, RPrime, R.Inverse())
	require.Equal(t, U, UPrime.Inverse())
	require.Equal(t, "R2", R2.Inverse().Notation())
}

func TestInverseMoves(t *testing.T) {
	inv := InverseMoves(SexyMove)
	require.Equal(t, "U R U' R'", FormatMoves(inv))
}

func TestMoveGeometry(t *testing.T) {
	// Face letters map onto the expected axis and layer.
	require.Equal(t, AxisX, R.Axis)
	require.Equal(t, []int{1}, R.Layers)
	require.Equal(t, AxisY, E.Axis)
	require.Equal(t, []int{0}, E.Layers, "E is the middle layer on Y")

	wide, err := ParseMove("r")
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 0}, wide.Layers)
}

func TestAffects(t *testing.T) {
	require.True(t, R.affects(1))
	require.False(t, R.affects(0))
	require.False(t, R.affects(-1))
	require.True(t, M.affects(0))
}
