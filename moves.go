package cubesight

// Predefined moves for convenience.
//
// Example:
//
//	c := cubesight.New().Apply(cubesight.R).Apply(cubesight.UPrime)
var (
	R      = mustMove("R")
	RPrime = mustMove("R'")
	R2     = mustMove("R2")

	L      = mustMove("L")
	LPrime = mustMove("L'")
	L2     = mustMove("L2")

	U      = mustMove("U")
	UPrime = mustMove("U'")
	U2     = mustMove("U2")

	D      = mustMove("D")
	DPrime = mustMove("D'")
	D2     = mustMove("D2")

	F      = mustMove("F")
	FPrime = mustMove("F'")
	F2     = mustMove("F2")

	B      = mustMove("B")
	BPrime = mustMove("B'")
	B2     = mustMove("B2")

	M = mustMove("M")
	E = mustMove("E")
	S = mustMove("S")
)

// SexyMove is R U R' U', the most common trigger.
var SexyMove = []Move{R, U, RPrime, UPrime}

// SuneAlg is R U R' U R U2 R', which solves the Sune OLL case.
var SuneAlg = []Move{R, U, RPrime, U, R, U2, RPrime}

// AntiSuneAlg is R U2 R' U' R U' R', which solves the Anti-Sune case.
var AntiSuneAlg = []Move{R, U2, RPrime, UPrime, R, UPrime, RPrime}

// TPermAlg swaps two adjacent corners and two edges of the last layer.
var TPermAlg = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

func mustMove(notation string) Move {
	m, err := ParseMove(notation)
	if err != nil {
		panic(err)
	}
	return m
}
