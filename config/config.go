// Package config holds the startup settings for a game.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/brensch/termsnake/rules"
)

const (
	DefaultWidth  = 32
	DefaultHeight = 16

	// MinWidth leaves room for the starting snake, which trails left from
	// the centre, plus its first step to the right.
	MinWidth  = 2 * rules.InitialSnakeLength
	MinHeight = 3
)

var ErrBoardTooSmall = errors.New("board too small")

type Config struct {
	Width  int
	Height int

	// LogFile receives structured logs. Empty discards them.
	LogFile string
	Debug   bool
}

func Default() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

func (c Config) Validate() error {
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBoardTooSmall, c.Width, c.Height, MinWidth, MinHeight)
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
