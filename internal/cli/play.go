package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubesight/cubesight"
)

var playScrambled bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube playground",
	Long: `Open an interactive view of the cube. Type moves in standard notation
and press enter to apply them; the net and phase analysis update live.

Keyboard shortcuts:
  enter   - apply the typed moves
  ctrl+z  - undo the last applied move
  ctrl+r  - reset to a solved cube
  ctrl+s  - apply a fresh random scramble
  q/Esc   - quit`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playScrambled, "scrambled", false, "start from a scrambled cube")
	rootCmd.AddCommand(playCmd)
}

var (
	playTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	playInputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	playErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	playHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type playModel struct {
	cube    *cubesight.Cube
	history []cubesight.Move
	input   string
	err     error

	rng *rand.Rand
}

func newPlayModel() playModel {
	m := playModel{
		cube: cubesight.New(),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if playScrambled {
		m.applyMoves(cubesight.Scramble(m.rng, cfg.ScrambleLength))
	}
	return m
}

func (m *playModel) applyMoves(moves []cubesight.Move) {
	for _, mv := range moves {
		m.cube = m.cube.Apply(mv)
		m.history = append(m.history, mv)
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit

	case "enter":
		moves, err := cubesight.ParseMoves(m.input)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.input = ""
		m.applyMoves(moves)

	case "ctrl+z":
		if n := len(m.history); n > 0 {
			last := m.history[n-1]
			m.history = m.history[:n-1]
			m.cube = m.cube.Apply(last.Inverse())
		}

	case "ctrl+r":
		m.cube = cubesight.New()
		m.history = nil
		m.err = nil

	case "ctrl+s":
		m.applyMoves(cubesight.Scramble(m.rng, cfg.ScrambleLength))

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	default:
		if len(keyMsg.String()) == 1 || keyMsg.String() == " " {
			m.input += keyMsg.String()
		}
	}

	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(playTitleStyle.Render("cubesight playground"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.cube))
	b.WriteString("\n")
	b.WriteString(renderAnalysis(cubesight.Analyze(m.cube)))
	b.WriteString("\n\n")

	if n := len(m.history); n > 0 {
		start := 0
		if n > 20 {
			start = n - 20
		}
		b.WriteString(playHelpStyle.Render("Moves: " + cubesight.FormatMoves(m.history[start:])))
		b.WriteString("\n")
	}

	b.WriteString(playInputStyle.Render("> " + m.input))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(playErrStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(playHelpStyle.Render("enter apply · ctrl+z undo · ctrl+r reset · ctrl+s scramble · q quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
