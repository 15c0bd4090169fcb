package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubesight/cubesight"
)

var analyzeFromBase string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [moves...]",
	Short: "Analyze the cube state after a move sequence",
	Long: `Apply a move sequence to a solved cube and report the detected solve
phase. The sequence uses standard notation (R U R' U' F2 ...).

Examples:
  cubesight analyze "R U R' U'"
  cubesight analyze --base white R U R' U R U2 R'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFromBase, "base", "", "analyze from one base color only (white, yellow, ...)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	c, err := cubesight.New().ApplyNotation(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Print(renderNet(c))
	fmt.Println()

	if analyzeFromBase != "" {
		base, err := cubesight.ParseColor(analyzeFromBase)
		if err != nil {
			return err
		}
		a, ok := cubesight.AnalyzeFrom(c, base)
		if !ok {
			fmt.Printf("No complete cross on the %s base.\n", base.Name())
			return nil
		}
		fmt.Println(renderAnalysis(a))
		return nil
	}

	a := cubesight.Analyze(c)
	fmt.Println(renderAnalysis(a))
	if c.IsSolved() {
		fmt.Println("The cube is strictly solved.")
	}
	return nil
}
