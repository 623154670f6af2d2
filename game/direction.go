package game

// Direction is a heading on the board. The order matches the usual
// up/down/left/right move numbering.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return "unknown"
	}
	return directionNames[d]
}

// Delta is the one-cell step for d. Up decreases y.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Turn returns next, unless next would reverse d onto the snake's own neck,
// in which case d is kept.
func (d Direction) Turn(next Direction) Direction {
	if next < Up || next > Right || next == d.Opposite() {
		return d
	}
	return next
}
