package game

// Glyph is drawn for every wall, snake and berry cell.
const Glyph = '■'

const WallColor = ColorGray

// Surface is the terminal drawing target: a fixed grid of character cells
// with a current foreground colour.
type Surface interface {
	Clear()
	SetColor(c Color)
	DrawAt(x, y int, glyph rune)
}

// Board fixes the play area and draws onto a Surface.
// Cells with x in [1, width-2] and y in [1, height-2] are interior; the rest
// is wall.
type Board struct {
	width   int
	height  int
	surface Surface
}

func NewBoard(width, height int, surface Surface) *Board {
	return &Board{width: width, height: height, surface: surface}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// IsWall reports whether p is on the border ring or outside the board.
func (b *Board) IsWall(p Point) bool {
	return p.X <= 0 || p.X >= b.width-1 || p.Y <= 0 || p.Y >= b.height-1
}

// Center is the cell a new game starts from.
func (b *Board) Center() Point {
	return Point{X: b.width / 2, Y: b.height / 2}
}

func (b *Board) Clear() {
	b.surface.Clear()
}

func (b *Board) DrawBorder() {
	b.surface.SetColor(WallColor)
	for x := 0; x < b.width; x++ {
		b.surface.DrawAt(x, 0, Glyph)
		b.surface.DrawAt(x, b.height-1, Glyph)
	}
	for y := 0; y < b.height; y++ {
		b.surface.DrawAt(0, y, Glyph)
		b.surface.DrawAt(b.width-1, y, Glyph)
	}
}

func (b *Board) DrawPixel(p Pixel) {
	b.surface.SetColor(p.Color)
	b.surface.DrawAt(p.X, p.Y, Glyph)
}

func (b *Board) DrawSnake(s *Snake) {
	for p := range s.Body() {
		b.DrawPixel(p)
	}
}

// DrawText writes text left to right starting at (x, y).
func (b *Board) DrawText(x, y int, text string, c Color) {
	b.surface.SetColor(c)
	for _, r := range text {
		b.surface.DrawAt(x, y, r)
		x++
	}
}
