package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubesight/cubesight"
	"github.com/cubesight/cubesight/internal/analysis"
	"github.com/cubesight/cubesight/internal/recorder"
	"github.com/cubesight/cubesight/internal/storage"
)

var (
	solveScramble string
	solveRandom   bool
	solveNotes    string
	solveLimit    int
	solveJSON     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Record and inspect solves",
}

var solveStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start recording a new solve",
	Long: `Start a new solve. The scramble (given with --scramble or generated
with --random) is applied to the internal cube; moves recorded afterwards
count toward the solve.`,
	RunE: runSolveStart,
}

var solveMoveCmd = &cobra.Command{
	Use:   "move [moves...]",
	Short: "Record moves for the active solve",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSolveMove,
}

var solveEndCmd = &cobra.Command{
	Use:   "end",
	Short: "Finish the active solve",
	RunE:  runSolveEnd,
}

var solveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runSolveList,
}

var solveShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show a solve summary (most recent when no ID is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSolveShow,
}

func init() {
	solveStartCmd.Flags().StringVar(&solveScramble, "scramble", "", "scramble notation to apply before the solve")
	solveStartCmd.Flags().BoolVar(&solveRandom, "random", false, "generate a random scramble")
	solveStartCmd.Flags().StringVar(&solveNotes, "notes", "", "free-form notes for the solve")
	solveListCmd.Flags().IntVar(&solveLimit, "limit", 20, "maximum number of solves to list")
	solveShowCmd.Flags().BoolVar(&solveJSON, "json", false, "print the summary as JSON")

	solveCmd.AddCommand(solveStartCmd, solveMoveCmd, solveEndCmd, solveListCmd, solveShowCmd)
	rootCmd.AddCommand(solveCmd)
}

// activeSession loads the state file and resumes the active solve.
func activeSession() (*recorder.Session, *storage.DB, error) {
	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	sf, err := openStateFile()
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	id := sf.State().ActiveSolveID
	if id == "" {
		db.Close()
		return nil, nil, fmt.Errorf("no active solve (use 'cubesight solve start')")
	}

	session := recorder.NewSession(db, sf, log)
	if err := session.Resume(id); err != nil {
		db.Close()
		return nil, nil, err
	}
	return session, db, nil
}

func runSolveStart(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sf, err := openStateFile()
	if err != nil {
		return err
	}
	if active := sf.State().ActiveSolveID; active != "" {
		return fmt.Errorf("solve %s is still active (use 'cubesight solve end' first)", active)
	}

	var scramble []cubesight.Move
	switch {
	case solveScramble != "":
		if scramble, err = cubesight.ParseMoves(solveScramble); err != nil {
			return err
		}
	case solveRandom:
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		scramble = cubesight.Scramble(r, cfg.ScrambleLength)
	}

	session := recorder.NewSession(db, sf, log)
	id, err := session.Start(scramble, solveNotes)
	if err != nil {
		return err
	}

	if len(scramble) > 0 {
		fmt.Println("Scramble:", cubesight.FormatMoves(scramble))
	}
	fmt.Println("Solve started:", id)
	return nil
}

func runSolveMove(cmd *cobra.Command, args []string) error {
	session, db, err := activeSession()
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := session.RecordNotation(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Print(renderNet(session.Tracker().Cube()))
	fmt.Println()
	fmt.Println(renderAnalysis(a))
	return nil
}

func runSolveEnd(cmd *cobra.Command, args []string) error {
	session, db, err := activeSession()
	if err != nil {
		return err
	}
	defer db.Close()

	solved := session.Tracker().IsSolved()
	id := session.SolveID()
	if err := session.End(); err != nil {
		return err
	}

	if solved {
		fmt.Println("Solve complete:", id)
	} else {
		fmt.Printf("Solve ended unfinished (%s): %s\n", session.Tracker().Current().Phase.DisplayName(), id)
	}
	return nil
}

func runSolveList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(solveLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("No solves recorded.")
		return nil
	}

	for _, s := range solves {
		status := "in progress"
		if s.EndedAt != nil {
			if s.Solved {
				status = fmt.Sprintf("solved in %.1fs", float64(*s.DurationMs)/1000)
			} else {
				status = "unfinished"
				if s.FinalPhase != nil {
					status += " (" + *s.FinalPhase + ")"
				}
			}
		}
		fmt.Printf("%s  %s  %s\n", s.SolveID, s.StartedAt.Format(time.RFC3339), status)
	}
	return nil
}

func runSolveShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)

	var solve *storage.Solve
	if len(args) == 1 {
		solve, err = solveRepo.Get(args[0])
	} else {
		solve, err = solveRepo.GetLast()
	}
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve not found")
	}

	records, err := storage.NewMoveRepository(db).GetBySolve(solve.SolveID)
	if err != nil {
		return err
	}

	moves := make([]cubesight.Move, 0, len(records))
	tsMs := make([]int64, 0, len(records))
	for _, rec := range records {
		m, err := cubesight.ParseMove(rec.Notation)
		if err != nil {
			return fmt.Errorf("stored move %d: %w", rec.MoveIndex, err)
		}
		moves = append(moves, m)
		tsMs = append(tsMs, rec.TsMs)
	}

	var durationMs int64
	if solve.DurationMs != nil {
		durationMs = *solve.DurationMs
	} else if len(tsMs) > 0 {
		durationMs = tsMs[len(tsMs)-1]
	}

	summary := analysis.Summarize(solve.SolveID, moves, tsMs, durationMs)
	summary.Solved = solve.Solved
	if solve.FinalPhase != nil {
		summary.FinalPhase = *solve.FinalPhase
	}

	if solveJSON {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println("Solve:", summary.SolveID)
	if solve.ScrambleText != nil {
		fmt.Println("Scramble:", *solve.ScrambleText)
	}
	fmt.Printf("Moves: %d  Duration: %.1fs  TPS: %.2f\n",
		summary.TotalMoves, float64(summary.DurationMs)/1000, summary.TPSOverall)
	if summary.LongestPauseMs > 0 {
		fmt.Printf("Longest pause: %.1fs  Pauses over 1.5s: %d\n",
			float64(summary.LongestPauseMs)/1000, summary.PauseCountOver1500)
	}
	for name, n := range summary.TriggerCounts {
		fmt.Printf("Trigger %s: %d\n", name, n)
	}

	marks, err := storage.NewPhaseMarkRepository(db).GetBySolve(solve.SolveID)
	if err != nil {
		return err
	}
	for _, m := range marks {
		line := fmt.Sprintf("Phase %s at move %d (%.1fs)", m.Phase, m.MoveIndex, float64(m.TsMs)/1000)
		if m.Detail != nil {
			line += ": " + *m.Detail
		}
		fmt.Println(line)
	}
	return nil
}
