// Command snake plays Snake in the terminal.
//
// Steer with the arrow keys (or wasd / hjkl). The game ends when the snake
// runs into the wall or into itself; q, esc or ctrl+c leave early.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/brensch/termsnake/config"
	"github.com/brensch/termsnake/game"
	"github.com/brensch/termsnake/logging"
	"github.com/brensch/termsnake/render"
	"github.com/brensch/termsnake/rules"
	"github.com/brensch/termsnake/tui"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	cmd := &cli.Command{
		Name:  "snake",
		Usage: "play snake in the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Value:   config.DefaultWidth,
				Usage:   "board width in cells, walls included",
				Sources: cli.EnvVars("SNAKE_WIDTH"),
			},
			&cli.IntFlag{
				Name:    "height",
				Value:   config.DefaultHeight,
				Usage:   "board height in cells, walls included",
				Sources: cli.EnvVars("SNAKE_HEIGHT"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write JSON logs to this file",
				Sources: cli.EnvVars("SNAKE_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log direction changes and source locations",
				Sources: cli.EnvVars("SNAKE_DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Default()
			cfg.Width = int(cmd.Int("width"))
			cfg.Height = int(cmd.Int("height"))
			cfg.LogFile = cmd.String("log-file")
			cfg.Debug = cmd.Bool("debug")
			return run(ctx, cfg)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("snake: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := time.Now().UnixNano()
	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "seed", seed)

	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	board := game.NewBoard(cfg.Width, cfg.Height, canvas)
	g := rules.NewGame(board, rand.New(rand.NewSource(seed)), rules.WithLogger(logger))

	p := tea.NewProgram(tui.New(g, canvas, rules.TickInterval), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		logger.Error("terminal failed", "err", err)
		return fmt.Errorf("terminal: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Quit() {
		logger.Info("quit", "game_id", g.ID, "score", g.Score(), "ticks", g.Ticks())
	}
	return nil
}
