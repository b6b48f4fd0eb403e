package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/isola/internal/config"
	"github.com/jask/isola/internal/game"
)

const appName = "Isola"

// ---------------------------------------------------------------------------
// Turn phases
// ---------------------------------------------------------------------------

// phase is the per-turn input state. A full turn walks
// phaseMove -> phaseShotRow -> phaseShotCol, re-entering the same phase on
// every rejected input.
type phase int

const (
	phaseWelcome phase = iota
	phaseMove
	phaseShotRow
	phaseShotCol
	phaseOver
)

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Direction key.Binding
	Coord     key.Binding
	AnyKey    key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Direction: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "6", "7", "8", "9"),
			key.WithHelp("1-9", "move (not 5)"),
		),
		Coord: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "target"),
		),
		AnyKey: key.NewBinding(
			key.WithKeys(""),
			key.WithHelp("any key", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (m Model) footerBindings() []key.Binding {
	switch m.phase {
	case phaseWelcome, phaseOver:
		return []key.Binding{m.keys.AnyKey, m.keys.Quit}
	case phaseMove:
		return []key.Binding{m.keys.Direction, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Coord, m.keys.Quit}
	}
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the bubbletea model for one match.
type Model struct {
	match   *game.Match
	cfg     config.Config
	logger  *slog.Logger
	matchID string
	keys    keyMap

	phase     phase
	shotRow   int // 0-indexed, set while awaiting the column input
	turn      int
	status    string
	statusErr bool
	loser     game.PlayerID // valid in phaseOver
	quitting  bool

	width  int
	height int
}

// New builds the model for a fresh match. The logger may be nil, in which
// case log lines are discarded.
func New(cfg config.Config, logger *slog.Logger, matchID string) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	one, two := cfg.Players.Runes()
	m := Model{
		match:   game.NewMatch(one, two),
		cfg:     cfg,
		logger:  logger.With("match_id", matchID),
		matchID: matchID,
		keys:    newKeyMap(),
		phase:   phaseWelcome,
		turn:    1,
		status:  "Press any key to start...",
		width:   80,
		height:  24,
	}
	m.logger.Info("match started",
		"player_a", cfg.Players.One,
		"player_b", cfg.Players.Two,
	)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m Model) activeSymbol() string {
	return string(m.match.Player(m.match.Active()).Symbol)
}
