package days

import (
	"crosswarped.com/aoc"
	"crosswarped.com/aoc/internal/puzzle"
	"crosswarped.com/aoc/pkg/primitives"
)

func init() {
	puzzle.Register(4, day4Part1, day4Part2)
}

const (
	roll  = '@'
	floor = '.'
)

// accessible reports whether the roll at p has fewer than four rolls around
// it.
func accessible(g *aoc.Grid, p primitives.Point) bool {
	neighbours := 0
	for _, dir := range primitives.Adjacent {
		if b, ok := g.GetPoint(p.Add(dir)); ok && b == roll {
			neighbours++
		}
	}
	return neighbours < 4
}

func day4Part1(lines []string) (int, error) {
	g, err := aoc.FromLines(lines)
	if err != nil {
		return 0, err
	}
	count := 0
	for p, b := range g.All() {
		if b == roll && accessible(g, p) {
			count++
		}
	}
	return count, nil
}

func day4Part2(lines []string) (int, error) {
	g, err := aoc.FromLines(lines)
	if err != nil {
		return 0, err
	}
	removed := 0
	for {
		prev := removed
		for y := range g.Height() {
			for x := range g.Width() {
				p := primitives.Pt(x, y)
				if g.At(p) == roll && accessible(g, p) {
					g.Set(p, floor)
					removed++
				}
			}
		}
		if removed == prev {
			return removed, nil
		}
	}
}
