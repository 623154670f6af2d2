package game

import "iter"

const (
	// BodyColor paints the segments the snake starts with.
	BodyColor = ColorGreen
	// HeadColor paints every segment created by a move.
	HeadColor = ColorRed
)

// Snake is an ordered body, tail first and head last.
type Snake struct {
	body        []Pixel
	growPending int
}

// NewSnake lays out a horizontal snake whose head is at start and whose tail
// trails to the left, so a first move to the right is always free.
// A length below 1 is treated as 1.
func NewSnake(start Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]Pixel, 0, length)
	for i := length - 1; i >= 0; i-- {
		body = append(body, NewPixel(start.X-i, start.Y, BodyColor))
	}
	return &Snake{body: body}
}

// NewSnakeFromBody builds a snake from explicit segments, tail first.
// It returns nil for an empty body.
func NewSnakeFromBody(body ...Pixel) *Snake {
	if len(body) == 0 {
		return nil
	}
	return &Snake{body: append([]Pixel(nil), body...)}
}

func (s *Snake) Head() Pixel {
	return s.body[len(s.body)-1]
}

func (s *Snake) Tail() Pixel {
	return s.body[0]
}

func (s *Snake) Length() int {
	return len(s.body)
}

// PendingGrowth is the number of moves that will keep their tail.
func (s *Snake) PendingGrowth() int {
	return s.growPending
}

// Body yields the segments from tail to head. The sequence can be ranged
// over any number of times; it reflects the body at the time it is ranged.
func (s *Snake) Body() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for _, p := range s.body {
			if !yield(p) {
				return
			}
		}
	}
}

// Move appends a new head one cell towards d. A pending grow credit keeps
// the tail in place; otherwise the tail is dropped.
func (s *Snake) Move(d Direction) {
	next := Pixel{Point: s.Head().Add(d.Delta()), Color: HeadColor}
	s.body = append(s.body, next)

	if s.growPending > 0 {
		s.growPending--
		return
	}
	s.body = s.body[1:]
}

// Grow defers one tail drop to the next move.
func (s *Snake) Grow() {
	s.growPending++
}

// HasCollidedWithWall reports whether the head sits on or past the border.
func (s *Snake) HasCollidedWithWall(b *Board) bool {
	return b.IsWall(s.Head().Point)
}

// HasCollidedWithItself reports whether the head shares a cell with any
// other segment.
func (s *Snake) HasCollidedWithItself() bool {
	head := s.Head()
	for _, p := range s.body[:len(s.body)-1] {
		if p.Equal(head) {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg.Point == p {
			return true
		}
	}
	return false
}
