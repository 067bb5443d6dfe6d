package days

import (
	"errors"

	"crosswarped.com/aoc"
	"crosswarped.com/aoc/internal/puzzle"
	"crosswarped.com/aoc/pkg/primitives"
)

func init() {
	puzzle.Register(7, day7Part1, day7Part2)
}

const (
	source   = 'S'
	splitter = '^'
	beam     = '|'
)

var errNoSource = errors.New("manifold has no beam source")

// day7Part1 traces the beams down the manifold, drawing them into the grid,
// and counts the splitters they hit.
func day7Part1(lines []string) (int, error) {
	g, err := aoc.FromLines(lines)
	if err != nil {
		return 0, err
	}
	if g.Count(primitives.ByteSetOf(source)) == 0 {
		return 0, errNoSource
	}

	mark := func(p primitives.Point) {
		if b, ok := g.GetPoint(p); ok && b != splitter {
			g.Set(p, beam)
		}
	}

	splits := 0
	for y := range g.Height() {
		for x := range g.Width() {
			p := primitives.Pt(x, y)
			above, ok := g.GetPoint(p.Add(primitives.Up))
			if !ok {
				continue
			}
			switch {
			case above == source:
				mark(p)
			case above == beam && g.At(p) == splitter:
				mark(p.Add(primitives.Left))
				mark(p.Add(primitives.Right))
				splits++
			case above == beam:
				mark(p)
			}
		}
	}
	return splits, nil
}

// day7Part2 counts the timelines a single particle can take, where every
// splitter sends it both left and right.
func day7Part2(lines []string) (int, error) {
	g, err := aoc.FromLines(lines)
	if err != nil {
		return 0, err
	}

	timelines := make([]int, g.Width())
	started := false
	for y := range g.Height() {
		if !started {
			for x, b := range g.Row(y) {
				if b == source {
					timelines[x] = 1
					started = true
				}
			}
			continue
		}

		next := make([]int, g.Width())
		for x, n := range timelines {
			if n == 0 {
				continue
			}
			p := primitives.Pt(x, y)
			if g.At(p) != splitter {
				next[x] += n
				continue
			}
			for _, dir := range []primitives.Point{primitives.Left, primitives.Right} {
				if q := p.Add(dir); g.InBounds(q) {
					next[q.X] += n
				}
			}
		}
		timelines = next
	}
	if !started {
		return 0, errNoSource
	}

	total := 0
	for _, n := range timelines {
		total += n
	}
	return total, nil
}
