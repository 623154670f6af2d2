// Package game defines the snake, the berry and the board they live on.
//
// Coordinates are terminal cells: (0,0) is the top-left corner, x grows to
// the right and y grows downward. The outer ring of the board is wall.
package game

// Point is a board coordinate.
type Point struct {
	X int
	Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Color is a foreground colour hint used only when drawing.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorGreen
	ColorRed
	ColorCyan
)

func (c Color) String() string {
	switch c {
	case ColorGray:
		return "gray"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorCyan:
		return "cyan"
	default:
		return "default"
	}
}

// Pixel is a single drawable cell.
// Two pixels are the same cell when their points match; Color never takes
// part in comparisons. Compare p.Point values (or use Equal), not whole
// Pixel structs.
type Pixel struct {
	Point
	Color Color
}

func NewPixel(x, y int, c Color) Pixel {
	return Pixel{Point: Point{X: x, Y: y}, Color: c}
}

// Equal reports whether p and o occupy the same cell.
func (p Pixel) Equal(o Pixel) bool {
	return p.Point == o.Point
}
