package primitives

import "golang.org/x/exp/constraints"

// Pt2 is a 2D coordinate. X is the column and Y is the row, with Y growing
// downwards. Coordinates may be negative so that callers can probe past the
// edge of a grid.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Point is the coordinate type used to address grid cells.
type Point = Pt2[int]

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{X: p.X * k, Y: p.Y * k}
}

// MDist returns the manhattan distance between p and q.
func (p Pt2[T]) MDist(q Pt2[T]) T {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Unit vectors.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}

	UpLeft    = Point{X: -1, Y: -1}
	UpRight   = Point{X: 1, Y: -1}
	DownLeft  = Point{X: -1, Y: 1}
	DownRight = Point{X: 1, Y: 1}
)

// Orthogonal lists the four orthogonal unit vectors in the order up, down,
// left, right.
var Orthogonal = [4]Point{Up, Down, Left, Right}

// Diagonal lists the four diagonal unit vectors in the order up-left,
// up-right, down-left, down-right.
var Diagonal = [4]Point{UpLeft, UpRight, DownLeft, DownRight}

// Adjacent lists all eight neighbour offsets: Orthogonal followed by Diagonal.
var Adjacent = [8]Point{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
