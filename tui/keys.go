package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/termsnake/game"
)

// maxPendingKeys bounds how far ahead a player can type.
const maxPendingKeys = 8

// KeyQueue buffers direction keys between ticks. The game polls it once per
// tick and takes at most one key, oldest first.
type KeyQueue struct {
	pending []game.Direction
}

func (q *KeyQueue) Push(d game.Direction) {
	if len(q.pending) >= maxPendingKeys {
		return
	}
	q.pending = append(q.pending, d)
}

func (q *KeyQueue) Poll() (game.Direction, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	d := q.pending[0]
	q.pending = q.pending[1:]
	return d, true
}

func (q *KeyQueue) Len() int {
	return len(q.pending)
}

// keyDirection maps arrow keys and the wasd/hjkl aliases to a direction.
func keyDirection(msg tea.KeyMsg) (game.Direction, bool) {
	switch msg.String() {
	case "up", "w", "k":
		return game.Up, true
	case "down", "s", "j":
		return game.Down, true
	case "left", "a", "h":
		return game.Left, true
	case "right", "d", "l":
		return game.Right, true
	}
	return 0, false
}

func isQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}
