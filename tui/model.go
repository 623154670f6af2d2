// Package tui drives a rules.Game from a bubbletea program.
//
// bubbletea owns the terminal: it puts it in raw mode, reads keys without
// echo and repaints whatever View returns. Every state change happens in
// Update, one message at a time, so the game itself stays single threaded.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/termsnake/render"
	"github.com/brensch/termsnake/rules"
)

type TickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Model struct {
	game     *rules.Game
	canvas   *render.Canvas
	keys     *KeyQueue
	interval time.Duration
	quit     bool
}

// New wraps g, which must draw onto canvas. interval is the delay between
// ticks; zero or less means rules.TickInterval.
func New(g *rules.Game, canvas *render.Canvas, interval time.Duration) Model {
	if interval <= 0 {
		interval = rules.TickInterval
	}
	return Model{
		game:     g,
		canvas:   canvas,
		keys:     &KeyQueue{},
		interval: interval,
	}
}

// Init runs the first tick straight away so a frame is on screen before the
// first delay.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return TickMsg(time.Now())
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuitKey(msg) {
			m.quit = true
			return m, tea.Quit
		}
		if d, ok := keyDirection(msg); ok {
			m.keys.Push(d)
		}
		return m, nil
	case TickMsg:
		if m.game.Tick(m.keys) == rules.GameOver {
			m.game.DrawGameOver()
			return m, tea.Quit
		}
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m Model) View() string {
	return m.canvas.String() + "\n"
}

func (m Model) Game() *rules.Game {
	return m.game
}

// Quit reports whether the player left before the game ended.
func (m Model) Quit() bool {
	return m.quit
}
