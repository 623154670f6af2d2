// Package rules runs a single game: it owns the snake, the berry and the
// current heading, and advances them one tick at a time.
//
// A Game is a two-state machine. It stays Running until a tick moves the
// head into a wall or into the body, after which it is GameOver for good.
// Pacing is the caller's job; TickInterval is the intended delay between
// ticks.
package rules

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/brensch/termsnake/game"
)

const (
	InitialSnakeLength = 5
	InitialDirection   = game.Right
	TickInterval       = 150 * time.Millisecond
)

type Status int

const (
	Running Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// Cause records what ended a game.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Input is polled once per tick. Poll must not block: it reports a pending
// direction key if there is one and consumes it.
type Input interface {
	Poll() (game.Direction, bool)
}

// NoInput never has a key pending.
var NoInput Input = noInput{}

type noInput struct{}

func (noInput) Poll() (game.Direction, bool) { return 0, false }

type Option func(*Game)

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithSnake starts the game from s instead of the default centred snake.
func WithSnake(s *game.Snake) Option {
	return func(g *Game) {
		if s != nil {
			g.snake = s
		}
	}
}

func WithDirection(d game.Direction) Option {
	return func(g *Game) {
		g.direction = d
	}
}

type Game struct {
	ID string

	board     *game.Board
	snake     *game.Snake
	berry     *game.Berry
	direction game.Direction
	status    Status
	cause     Cause
	ticks     int
	eaten     int
	log       *slog.Logger
}

// NewGame sets up a snake of InitialSnakeLength with its head at the board
// centre, heading right, and places the first berry using rng.
func NewGame(board *game.Board, rng *rand.Rand, opts ...Option) *Game {
	g := &Game{
		ID:        uuid.NewString(),
		board:     board,
		direction: InitialDirection,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.snake == nil {
		g.snake = game.NewSnake(board.Center(), InitialSnakeLength)
	}
	g.berry = game.NewBerry(board, rng)
	g.log = g.log.With("game_id", g.ID)

	g.log.Info("game started",
		"width", board.Width(),
		"height", board.Height(),
		"length", g.snake.Length(),
		"direction", g.direction.String(),
		"berry_x", g.berry.Position().X,
		"berry_y", g.berry.Position().Y,
	)
	return g
}

func (g *Game) Board() *game.Board        { return g.board }
func (g *Game) Snake() *game.Snake        { return g.snake }
func (g *Game) Berry() *game.Berry        { return g.berry }
func (g *Game) Direction() game.Direction { return g.direction }
func (g *Game) Status() Status            { return g.status }
func (g *Game) Cause() Cause              { return g.cause }
func (g *Game) Ticks() int                { return g.ticks }
func (g *Game) BerriesEaten() int         { return g.eaten }

// Score is the snake's length.
func (g *Game) Score() int {
	return g.snake.Length()
}

// Steer applies a requested heading. Reversals are ignored. It reports
// whether the heading changed.
func (g *Game) Steer(d game.Direction) bool {
	next := g.direction.Turn(d)
	if next == g.direction {
		return false
	}
	g.log.Debug("direction changed", "from", g.direction.String(), "to", next.String(), "tick", g.ticks)
	g.direction = next
	return true
}

// Tick advances the game by one frame and redraws the board:
// clear and border, one input poll, move, collision check, berry check,
// then berry and snake. A collision ends the game before anything but the
// border is drawn. Ticking a finished game does nothing.
func (g *Game) Tick(in Input) Status {
	if g.status == GameOver {
		return g.status
	}

	g.board.Clear()
	g.board.DrawBorder()

	if in != nil {
		if d, ok := in.Poll(); ok {
			g.Steer(d)
		}
	}

	g.snake.Move(g.direction)
	g.ticks++

	switch {
	case g.snake.HasCollidedWithWall(g.board):
		g.end(CauseWall)
		return g.status
	case g.snake.HasCollidedWithItself():
		g.end(CauseSelf)
		return g.status
	}

	if g.snake.Head().Point == g.berry.Position().Point {
		g.snake.Grow()
		g.berry.Respawn(g.board)
		g.eaten++
		g.log.Info("berry eaten",
			"tick", g.ticks,
			"length", g.snake.Length(),
			"berry_x", g.berry.Position().X,
			"berry_y", g.berry.Position().Y,
		)
	}

	g.board.DrawPixel(g.berry.Position())
	g.board.DrawSnake(g.snake)
	return g.status
}

func (g *Game) end(c Cause) {
	g.status = GameOver
	g.cause = c
	head := g.snake.Head()
	g.log.Info("game over",
		"cause", c.String(),
		"score", g.Score(),
		"ticks", g.ticks,
		"berries", g.eaten,
		"head_x", head.X,
		"head_y", head.Y,
	)
}

// GameOverMessage is the line shown once the game has ended.
func (g *Game) GameOverMessage() string {
	return fmt.Sprintf("Game over, Score: %d", g.Score())
}

// DrawGameOver writes the game-over line a fifth of the way across the
// board on its middle row.
func (g *Game) DrawGameOver() {
	g.board.DrawText(g.board.Width()/5, g.board.Height()/2, g.GameOverMessage(), game.ColorDefault)
}
