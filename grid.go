package aoc

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"crosswarped.com/aoc/pkg/primitives"
)

// Sentinel is the byte used to fill cells that hold no data, e.g. the
// padding added to short rows. It lies outside the printable ASCII range, so
// it never collides with puzzle text.
const Sentinel byte = 0

// ErrJaggedInput is returned by FromLines when rows differ in length.
var ErrJaggedInput = errors.New("jagged input")

// OutOfBoundsError is the panic value raised by unchecked access outside the
// grid.
type OutOfBoundsError struct {
	Point         primitives.Point
	Width, Height int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("point (%d, %d) out of bounds for %dx%d grid", e.Point.X, e.Point.Y, e.Width, e.Height)
}

// Grid is a rectangular 2D grid of bytes, stored row-major.
//
// Every row holds exactly Width() cells. The zero Grid is an empty grid.
type Grid struct {
	grid   [][]byte
	width  int
	height int
}

func nonEmpty(lines []string) []string {
	return slices.DeleteFunc(slices.Clone(lines), func(l string) bool { return l == "" })
}

// FromLines builds a grid from text lines, one row per non-empty line. It
// fails with ErrJaggedInput if the retained lines differ in length.
func FromLines(lines []string) (*Grid, error) {
	lines = nonEmpty(lines)
	g := &Grid{grid: make([][]byte, len(lines)), height: len(lines)}
	if len(lines) > 0 {
		g.width = len(lines[0])
	}
	for y, line := range lines {
		if len(line) != g.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(line), g.width, ErrJaggedInput)
		}
		g.grid[y] = []byte(line)
	}
	return g, nil
}

// FromLinesPadded builds a grid from text lines, one row per non-empty line.
// The grid is as wide as the longest line and shorter rows are padded with
// Sentinel.
func FromLinesPadded(lines []string) *Grid {
	lines = nonEmpty(lines)
	g := &Grid{grid: make([][]byte, len(lines)), height: len(lines)}
	for _, line := range lines {
		g.width = max(g.width, len(line))
	}
	for y, line := range lines {
		row := make([]byte, g.width)
		copy(row, line)
		g.grid[y] = row
	}
	return g
}

// Parse builds a grid from newline separated text.
func Parse(s string) (*Grid, error) {
	return FromLines(strings.Split(strings.ReplaceAll(s, "\r", ""), "\n"))
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p primitives.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the cell at (x, y), or false if the coordinate lies outside
// the grid. Negative coordinates are outside, never wrapped.
func (g *Grid) Get(x, y int) (byte, bool) {
	return g.GetPoint(primitives.Pt(x, y))
}

func (g *Grid) GetPoint(p primitives.Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.grid[p.Y][p.X], true
}

func (g *Grid) mustBeIn(p primitives.Point) {
	if !g.InBounds(p) {
		panic(OutOfBoundsError{Point: p, Width: g.width, Height: g.height})
	}
}

// At returns the cell at p. It panics with an OutOfBoundsError if p is
// outside the grid.
func (g *Grid) At(p primitives.Point) byte {
	g.mustBeIn(p)
	return g.grid[p.Y][p.X]
}

// Set stores v at p. It panics with an OutOfBoundsError if p is outside the
// grid.
func (g *Grid) Set(p primitives.Point, v byte) {
	g.mustBeIn(p)
	g.grid[p.Y][p.X] = v
}

// Row returns row y itself, not a copy: writes to it change the grid.
func (g *Grid) Row(y int) []byte {
	if y < 0 || y >= g.height {
		panic(OutOfBoundsError{Point: primitives.Pt(0, y), Width: g.width, Height: g.height})
	}
	return g.grid[y]
}

// Rows returns a copy of every row, top to bottom.
func (g *Grid) Rows() [][]byte {
	rows := make([][]byte, g.height)
	for y, row := range g.grid {
		rows[y] = slices.Clone(row)
	}
	return rows
}

// Columns returns a copy of every column, left to right, each read top to
// bottom.
func (g *Grid) Columns() [][]byte {
	cols := make([][]byte, g.width)
	for x := range g.width {
		cols[x] = make([]byte, g.height)
		for y := range g.height {
			cols[x][y] = g.grid[y][x]
		}
	}
	return cols
}

// Transpose swaps rows and columns in place: the cell at (x, y) moves to
// (y, x). Cells missing from short rows are filled with Sentinel.
func (g *Grid) Transpose() {
	oldHeight := len(g.grid)
	oldWidth := 0
	for _, row := range g.grid {
		oldWidth = max(oldWidth, len(row))
	}

	transposed := make([][]byte, oldWidth)
	for x := range oldWidth {
		transposed[x] = make([]byte, oldHeight)
		for y, row := range g.grid {
			if x < len(row) {
				transposed[x][y] = row[x]
			} else {
				transposed[x][y] = Sentinel
			}
		}
	}

	g.grid = transposed
	g.width, g.height = oldHeight, oldWidth
}

// All iterates over every cell in row-major order.
func (g *Grid) All() iter.Seq2[primitives.Point, byte] {
	return func(yield func(primitives.Point, byte) bool) {
		for y, row := range g.grid {
			for x, b := range row {
				if !yield(primitives.Pt(x, y), b) {
					return
				}
			}
		}
	}
}

// Count returns the number of cells holding a byte in set.
func (g *Grid) Count(set *primitives.ByteSet) int {
	n := 0
	for _, b := range g.All() {
		if set.Contains(b) {
			n++
		}
	}
	return n
}

func (g *Grid) Clone() *Grid {
	return &Grid{grid: g.Rows(), width: g.width, height: g.height}
}

// Equal reports whether g and other have the same dimensions and cells. A nil
// other is never equal.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.width == other.width && g.height == other.height &&
		slices.EqualFunc(g.grid, other.grid, slices.Equal[[]byte])
}

// Repr renders the rows as text, one line per row. Sentinel cells render as
// spaces.
func (g *Grid) Repr() string {
	lines := make([]string, g.height)
	for y, row := range g.grid {
		line := slices.Clone(row)
		for x, b := range line {
			if b == Sentinel {
				line[x] = ' '
			}
		}
		lines[y] = string(line)
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d}\n%s", g.width, g.height, g.Repr())
}

func (g *Grid) String() string {
	return g.DebugString()
}
