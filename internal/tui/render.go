package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/isola/internal/game"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerMatchStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle)

	boardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 2)

	boardLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	freeCellStyle   = lipgloss.NewStyle().Foreground(colorFree)
	deadCellStyle   = lipgloss.NewStyle().Foreground(colorDead)
	playerAStyle    = lipgloss.NewStyle().Foreground(colorPlayerA).Bold(true)
	playerBStyle    = lipgloss.NewStyle().Foreground(colorPlayerB).Bold(true)

	legendStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	rulesTitleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	rulesBodyStyle  = lipgloss.NewStyle().Foreground(colorSubtext1)

	winnerStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	loserStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorSurface0).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}

	var body string
	switch m.phase {
	case phaseWelcome:
		body = m.renderRules()
	case phaseOver:
		body = m.renderBoardPane() + "\n\n" + m.renderResult()
	default:
		body = m.renderBoardPane()
	}

	statusLine := m.renderStatus()
	footer := m.renderFooter(m.footerBindings())
	return m.placeWithFooter(m.renderHeader()+"\n\n"+body, statusLine, footer)
}

func (m Model) renderHeader() string {
	name := headerAppStyle.Render(appName)
	id := m.matchID
	if len(id) > 8 {
		id = id[:8]
	}
	content := name + "  " + headerMatchStyle.Render("match "+id)
	if m.width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(m.width).Render(content)
}

// renderBoardPane draws the styled grid with the static numpad legend under
// it. The characters match the plain Render form: '+', 'A', player symbols.
func (m Model) renderBoardPane() string {
	board := m.match.Board()
	var sb strings.Builder

	sb.WriteString(boardLabelStyle.Render("  1234567"))
	sb.WriteByte('\n')
	for row := 0; row < game.BoardSize; row++ {
		sb.WriteString(boardLabelStyle.Render(fmt.Sprintf("%d ", row+1)))
		for col := 0; col < game.BoardSize; col++ {
			switch c := board.At(row, col); c.Kind {
			case game.CellEmpty:
				sb.WriteString(freeCellStyle.Render("+"))
			case game.CellDead:
				sb.WriteString(deadCellStyle.Render("A"))
			case game.CellOccupied:
				sym := string(m.match.Player(c.Owner).Symbol)
				if c.Owner == game.PlayerA {
					sb.WriteString(playerAStyle.Render(sym))
				} else {
					sb.WriteString(playerBStyle.Render(sym))
				}
			}
		}
		sb.WriteByte('\n')
	}

	pane := boardBoxStyle.Render(strings.TrimSuffix(sb.String(), "\n"))
	if m.cfg.UI.Legend {
		pane += "\n\n" + legendStyle.Render("7-8-9\n4---6\n1-2-3")
	}
	if m.width > 0 {
		pane = lipgloss.Place(m.width, lipgloss.Height(pane), lipgloss.Center, lipgloss.Top, pane)
	}
	return pane
}

func (m Model) renderRules() string {
	one, two := m.cfg.Players.Runes()
	body := fmt.Sprintf(`Each player has one piece (%c and %c).
The board has 7 by 7 positions, which initially contain
free spaces ('+') except for the starting positions of the players.
A turn consists of two subsequent actions:

1. Moving one's piece to a neighboring (horizontally, vertically,
   diagonally) field that contains a '+' but not the opponent's piece.
   The vacated field dies.

2. Shooting an arrow: removing any '+' with no piece on it
   (replacing it with an 'A').

If a player cannot move at the beginning of their turn,
that player loses the game.`, one, two)

	text := rulesTitleStyle.Render("********** Isola **********") + "\n\n" + rulesBodyStyle.Render(body)
	if m.width > 0 {
		text = lipgloss.Place(m.width, lipgloss.Height(text), lipgloss.Center, lipgloss.Top, text)
	}
	return text
}

func (m Model) renderResult() string {
	loser := string(m.match.Player(m.loser).Symbol)
	winner := string(m.match.Player(m.loser.Opponent()).Symbol)
	lines := loserStyle.Render(loser+" is no longer able to move.") + "\n" +
		winnerStyle.Render(winner+" is the winner!")
	if m.width > 0 {
		lines = lipgloss.Place(m.width, lipgloss.Height(lines), lipgloss.Center, lipgloss.Top, lines)
	}
	return lines
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (m Model) renderStatus() string {
	flat := strings.ReplaceAll(m.status, "\n", " ")
	style := statusBarStyle
	if m.statusErr {
		style = statusErrStyle
	}
	if m.width <= 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(flat)
}

func (m Model) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width <= 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m Model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Ensure every line is full-width to prevent ghosting from previous frames
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	main = strings.Join(lines, "\n")
	return main + "\n" + statusLine + "\n" + footer
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
