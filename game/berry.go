// berry.go implements berry placement.

package game

import (
	"math/rand"
	"time"
)

const BerryColor = ColorCyan

// Berry is the single piece of food on the board.
//
// Respawn picks any interior cell and does not look at the snake, so a berry
// can land on a body segment. It is eaten once the head reaches that cell.
type Berry struct {
	position Pixel
	rng      *rand.Rand
}

// NewBerry places a berry on b straight away so one exists before the first
// frame. A nil rng is replaced by one seeded from the clock.
func NewBerry(b *Board, rng *rand.Rand) *Berry {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	berry := &Berry{rng: rng}
	berry.Respawn(b)
	return berry
}

func (br *Berry) Position() Pixel {
	return br.position
}

// Respawn moves the berry to a uniformly random interior cell of b,
// x in [1, width-2] and y in [1, height-2].
func (br *Berry) Respawn(b *Board) {
	w, h := b.Width()-2, b.Height()-2
	if w < 1 || h < 1 {
		// No interior; park on the first cell inside the wall.
		br.position = NewPixel(1, 1, BerryColor)
		return
	}
	br.position = NewPixel(1+br.rng.Intn(w), 1+br.rng.Intn(h), BerryColor)
}

// MoveTo places the berry at p without consulting the random source.
func (br *Berry) MoveTo(p Point) {
	br.position = Pixel{Point: p, Color: BerryColor}
}
