package rules

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/termsnake/game"
	"github.com/brensch/termsnake/logging"
	"github.com/brensch/termsnake/render"
)

// keys feeds one direction per poll, then reports nothing pending.
type keys []game.Direction

func (k *keys) Poll() (game.Direction, bool) {
	if len(*k) == 0 {
		return 0, false
	}
	d := (*k)[0]
	*k = (*k)[1:]
	return d, true
}

func newTestGame(t *testing.T, opts ...Option) (*Game, *render.Canvas) {
	t.Helper()
	canvas := render.NewCanvas(32, 16)
	board := game.NewBoard(32, 16, canvas)
	g := NewGame(board, rand.New(rand.NewSource(1)), opts...)
	// Keep the berry out of the way unless a test places it.
	g.Berry().MoveTo(game.Point{X: 1, Y: 1})
	return g, canvas
}

func logFrame(t *testing.T, label string, g *Game, c *render.Canvas) {
	t.Helper()
	t.Logf("%s (tick=%d dir=%s status=%s)\n%s", label, g.Ticks(), g.Direction(), g.Status(), c.Plain())
}

func TestNewGame_Defaults(t *testing.T) {
	g, _ := newTestGame(t)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, Running, g.Status())
	assert.Equal(t, game.Right, g.Direction())
	assert.Equal(t, InitialSnakeLength, g.Snake().Length())
	assert.Equal(t, game.Point{X: 16, Y: 8}, g.Snake().Head().Point)
	assert.Equal(t, game.Point{X: 12, Y: 8}, g.Snake().Tail().Point)
	assert.Equal(t, 5, g.Score())
}

func TestNewGame_FirstBerryIsInterior(t *testing.T) {
	board := game.NewBoard(32, 16, render.NewCanvas(32, 16))
	for seed := int64(0); seed < 50; seed++ {
		g := NewGame(board, rand.New(rand.NewSource(seed)))
		require.False(t, board.IsWall(g.Berry().Position().Point))
	}
}

func TestTick_NoInputKeepsHeading(t *testing.T) {
	g, c := newTestGame(t)

	status := g.Tick(NoInput)
	logFrame(t, "one tick", g, c)

	require.Equal(t, Running, status)
	assert.Equal(t, game.Point{X: 17, Y: 8}, g.Snake().Head().Point)
	assert.Equal(t, game.Point{X: 13, Y: 8}, g.Snake().Tail().Point)
	assert.Equal(t, 5, g.Snake().Length())
	assert.Equal(t, 1, g.Ticks())
}

func TestTick_NilInputIsNoInput(t *testing.T) {
	g, _ := newTestGame(t)
	require.Equal(t, Running, g.Tick(nil))
	assert.Equal(t, game.Point{X: 17, Y: 8}, g.Snake().Head().Point)
}

func TestTick_LengthUnchangedWithoutBerries(t *testing.T) {
	g, c := newTestGame(t)

	in := keys{}
	for i := 0; i < 5; i++ {
		in = append(in, game.Up, game.Right, game.Down, game.Right)
	}
	for i := 0; i < 20; i++ {
		require.Equalf(t, Running, g.Tick(&in), "tick %d", i+1)
		require.Equalf(t, 5, g.Snake().Length(), "tick %d", i+1)
	}
	logFrame(t, "staircase", g, c)
	assert.Equal(t, game.Point{X: 26, Y: 8}, g.Snake().Head().Point)
	assert.Equal(t, 0, g.BerriesEaten())
}

func TestTick_EatingGrowsOnTheNextTick(t *testing.T) {
	g, c := newTestGame(t)
	g.Berry().MoveTo(game.Point{X: 17, Y: 8})

	require.Equal(t, Running, g.Tick(NoInput))
	logFrame(t, "ate berry", g, c)
	assert.Equal(t, 5, g.Snake().Length(), "growth is deferred")
	assert.Equal(t, 1, g.BerriesEaten())

	berry := g.Berry().Position()
	assert.False(t, g.Board().IsWall(berry.Point), "respawned inside the walls")

	require.Equal(t, Running, g.Tick(NoInput))
	assert.Equal(t, 6, g.Snake().Length())
	assert.Equal(t, 6, g.Score())
	assert.Equal(t, game.Point{X: 13, Y: 8}, g.Snake().Tail().Point, "tail kept on the growing tick")
}

func TestTick_ReversalIsIgnored(t *testing.T) {
	g, _ := newTestGame(t)

	in := keys{game.Left}
	g.Tick(&in)

	assert.Equal(t, game.Right, g.Direction())
	assert.Equal(t, game.Point{X: 17, Y: 8}, g.Snake().Head().Point)
	assert.Empty(t, in, "key consumed even when rejected")
}

func TestTick_PerpendicularTurns(t *testing.T) {
	g, _ := newTestGame(t)

	in := keys{game.Up}
	g.Tick(&in)

	assert.Equal(t, game.Up, g.Direction())
	assert.Equal(t, game.Point{X: 16, Y: 7}, g.Snake().Head().Point)
}

func TestTick_OneKeyPerTick(t *testing.T) {
	g, _ := newTestGame(t)

	in := keys{game.Up, game.Left}
	g.Tick(&in)
	assert.Equal(t, game.Up, g.Direction())
	assert.Len(t, in, 1)

	g.Tick(&in)
	assert.Equal(t, game.Left, g.Direction())
	assert.Equal(t, game.Point{X: 15, Y: 7}, g.Snake().Head().Point)
}

func TestTick_LeftWallEndsGame(t *testing.T) {
	snake := game.NewSnakeFromBody(
		game.NewPixel(3, 5, game.BodyColor),
		game.NewPixel(2, 5, game.BodyColor),
		game.NewPixel(1, 5, game.BodyColor),
	)
	g, c := newTestGame(t, WithSnake(snake), WithDirection(game.Left))

	status := g.Tick(NoInput)
	logFrame(t, "hit left wall", g, c)

	require.Equal(t, GameOver, status)
	assert.Equal(t, CauseWall, g.Cause())
	assert.Equal(t, game.Point{X: 0, Y: 5}, g.Snake().Head().Point)
	assert.True(t, g.Snake().HasCollidedWithWall(g.Board()))

	// Only the border made it onto the final frame.
	for y := 1; y < 15; y++ {
		for x := 1; x < 31; x++ {
			glyph, _ := c.Cell(x, y)
			require.Equalf(t, ' ', glyph, "cell (%d,%d)", x, y)
		}
	}
}

func TestTick_SelfCollisionEndsGame(t *testing.T) {
	g, c := newTestGame(t)

	in := keys{game.Up, game.Left, game.Down}
	assert.Equal(t, Running, g.Tick(&in))
	assert.Equal(t, Running, g.Tick(&in))
	status := g.Tick(&in)
	logFrame(t, "bit itself", g, c)

	require.Equal(t, GameOver, status)
	assert.Equal(t, CauseSelf, g.Cause())
	assert.Equal(t, 3, g.Ticks())
}

func TestTick_FinishedGameStaysFinished(t *testing.T) {
	snake := game.NewSnakeFromBody(game.NewPixel(1, 5, game.BodyColor))
	g, _ := newTestGame(t, WithSnake(snake), WithDirection(game.Left))

	require.Equal(t, GameOver, g.Tick(NoInput))
	head := g.Snake().Head()

	in := keys{game.Up}
	assert.Equal(t, GameOver, g.Tick(&in))
	assert.Equal(t, 1, g.Ticks())
	assert.Equal(t, head, g.Snake().Head())
	assert.Len(t, in, 1, "no input read after game over")
}

func TestTick_DrawsBerryAndSnake(t *testing.T) {
	g, c := newTestGame(t)
	g.Berry().MoveTo(game.Point{X: 5, Y: 3})

	g.Tick(NoInput)

	glyph, col := c.Cell(5, 3)
	assert.Equal(t, game.Glyph, glyph)
	assert.Equal(t, game.BerryColor, col)

	_, col = c.Cell(17, 8)
	assert.Equal(t, game.HeadColor, col)
	_, col = c.Cell(13, 8)
	assert.Equal(t, game.BodyColor, col)
	_, col = c.Cell(0, 0)
	assert.Equal(t, game.WallColor, col)

	glyph, _ = c.Cell(12, 8)
	assert.Equal(t, ' ', glyph, "old tail cleared")
}

func TestDrawGameOver(t *testing.T) {
	snake := game.NewSnakeFromBody(game.NewPixel(1, 5, game.BodyColor))
	g, c := newTestGame(t, WithSnake(snake), WithDirection(game.Left))
	require.Equal(t, GameOver, g.Tick(NoInput))

	assert.Equal(t, "Game over, Score: 1", g.GameOverMessage())
	g.DrawGameOver()
	logFrame(t, "game over", g, c)

	rows := strings.Split(c.Plain(), "\n")
	require.Len(t, rows, 16)
	assert.Contains(t, rows[8], "Game over, Score: 1")
	glyph, _ := c.Cell(32/5, 8)
	assert.Equal(t, 'G', glyph)
}

func TestGame_LogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewPrettyJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g, _ := newTestGame(t, WithLogger(logger))
	g.Berry().MoveTo(game.Point{X: 17, Y: 8})

	in := keys{game.Right, game.Up}
	g.Tick(&in)
	g.Tick(&in)

	out := buf.String()
	assert.Contains(t, out, `"msg": "game started"`)
	assert.Contains(t, out, `"msg": "berry eaten"`)
	assert.Contains(t, out, `"msg": "direction changed"`)
	assert.Contains(t, out, g.ID)
}
