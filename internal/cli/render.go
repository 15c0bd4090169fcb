package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubesight/cubesight"
)

// Sticker styles per face color.
var stickerStyles = map[cubesight.Color]lipgloss.Style{
	cubesight.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cubesight.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cubesight.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
	cubesight.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("255")),
	cubesight.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cubesight.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

var unknownSticker = lipgloss.NewStyle().Background(lipgloss.Color("240"))

func sticker(c cubesight.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		style = unknownSticker
	}
	return style.Render(" " + c.String() + " ")
}

// renderNet draws the cube as a colored flat net: U on top, the middle
// band L F R B, then D.
func renderNet(c *cubesight.Cube) string {
	var b strings.Builder

	writeFaceRow := func(face cubesight.Color, row int) {
		grid := c.FaceColors(face)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(grid[row][col]))
		}
	}

	indent := strings.Repeat(" ", 9)
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeFaceRow(cubesight.White, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cubesight.Color{cubesight.Orange, cubesight.Green, cubesight.Red, cubesight.Blue} {
			writeFaceRow(face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeFaceRow(cubesight.Yellow, row)
		b.WriteByte('\n')
	}

	return b.String()
}

var analysisStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

// renderAnalysis formats a phase analysis line.
func renderAnalysis(a cubesight.Analysis) string {
	return analysisStyle.Render(a.String())
}
