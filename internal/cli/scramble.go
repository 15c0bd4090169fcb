package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubesight/cubesight"
)

var (
	scrambleLength int
	scrambleSeed   int64
	scrambleShow   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence in standard notation. Use --seed
for a reproducible scramble and --show to preview the scrambled cube.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "number of moves (default from config, 25)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "print the scrambled cube")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	length := scrambleLength
	if length <= 0 {
		length = cfg.ScrambleLength
	}
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	moves := cubesight.Scramble(rand.New(rand.NewSource(seed)), length)
	fmt.Println(cubesight.FormatMoves(moves))

	if scrambleShow {
		fmt.Println()
		fmt.Print(renderNet(cubesight.New().ApplyAll(moves...)))
	}
	return nil
}
