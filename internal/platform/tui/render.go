package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvendramini/geomerge/internal/geo"
	"github.com/vvendramini/geomerge/internal/world"
)

// cellWidth is the rendered width of one lattice cell.
const cellWidth = 5

// tokenStyles maps token values to foreground colors, roughly matching
// the classic 2048 palette progression.
var tokenStyles = map[int]lipgloss.Style{
	1:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	2:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	4:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	8:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	16:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	32:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	64:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	128: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

var (
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	collectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	playerStyle    = lipgloss.NewStyle().Background(lipgloss.Color("22")).Bold(true)
	cursorStyle    = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	bigTokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func tokenStyle(value int) lipgloss.Style {
	if style, ok := tokenStyles[value]; ok {
		return style
	}
	return bigTokenStyle
}

// cellText returns the unstyled fixed-width label for a cell.
func cellText(state world.CellState) string {
	switch {
	case state.Collected:
		return centerPad("·", cellWidth)
	case state.Value > 0:
		return centerPad(fmt.Sprintf("%d", state.Value), cellWidth)
	default:
		return centerPad(".", cellWidth)
	}
}

// centerPad pads s to the given display width. Width is measured in
// terminal columns, not bytes, so multi-byte markers stay aligned.
func centerPad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// renderCell styles one window cell. The player and cursor highlights
// override the token colors' backgrounds.
func renderCell(wc world.WindowCell, player, cursor geo.Cell) string {
	text := cellText(wc.State)

	var style lipgloss.Style
	switch {
	case wc.State.Collected:
		style = collectedStyle
	case wc.State.Value > 0:
		style = tokenStyle(wc.State.Value)
	default:
		style = emptyStyle
	}

	switch wc.Cell {
	case player:
		style = style.Inherit(playerStyle)
	case cursor:
		style = style.Inherit(cursorStyle)
	}

	return style.Render(text)
}

// renderGrid draws the visible window. Cells arrive in row-major order
// from the north-west corner, so rows map directly to screen lines.
func renderGrid(cells []world.WindowCell, player, cursor geo.Cell, radius int) string {
	side := 2*radius + 1
	var sb strings.Builder
	for row := 0; row < side; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < side; col++ {
			idx := row*side + col
			if idx >= len(cells) {
				break
			}
			sb.WriteString(renderCell(cells[idx], player, cursor))
		}
	}
	return sb.String()
}

// renderStatus draws the held-token line under the grid.
func renderStatus(held, target int, won bool, player geo.Cell, mode Mode) string {
	hand := "empty hand"
	if held > 0 {
		hand = fmt.Sprintf("holding %d", held)
	}
	line := fmt.Sprintf("%s · target %d · at %s · %s", hand, target, player, mode)
	if won {
		return statusStyle.Render(line) + "  " + wonStyle.Render("YOU WIN!")
	}
	return statusStyle.Render(line)
}
