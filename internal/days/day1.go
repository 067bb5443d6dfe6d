// Package days holds the daily solutions. Each file registers its parts with
// the puzzle registry.
package days

import (
	"fmt"
	"strconv"

	"crosswarped.com/aoc/internal/puzzle"
)

func init() {
	puzzle.Register(1, day1Part1, day1Part2)
}

const (
	dialStart = 50
	dialSize  = 100
)

// dial is a combination-lock knob with positions 0 to dialSize-1.
type dial struct {
	pos int
	// zeroPasses counts every click that lands on 0, including during a turn.
	zeroPasses int
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}

func (d *dial) left(step int) {
	switch {
	case d.pos == 0:
		d.zeroPasses += step / dialSize
	case step >= d.pos:
		d.zeroPasses += 1 + (step-d.pos)/dialSize
	}
	d.pos = mod(d.pos-step, dialSize)
}

func (d *dial) right(step int) {
	dist := (dialSize - d.pos) % dialSize
	switch {
	case dist == 0:
		d.zeroPasses += step / dialSize
	case step >= dist:
		d.zeroPasses += 1 + (step-dist)/dialSize
	}
	d.pos = mod(d.pos+step, dialSize)
}

func (d *dial) turn(instr string) error {
	if len(instr) < 2 {
		return fmt.Errorf("invalid rotation %q", instr)
	}
	step, err := strconv.Atoi(instr[1:])
	if err != nil {
		return fmt.Errorf("invalid rotation %q: %w", instr, err)
	}
	if step < 0 {
		return fmt.Errorf("invalid rotation %q: negative step", instr)
	}
	switch instr[0] {
	case 'L':
		d.left(step)
	case 'R':
		d.right(step)
	default:
		return fmt.Errorf("invalid rotation direction in %q", instr)
	}
	return nil
}

func day1Part1(lines []string) (int, error) {
	d := dial{pos: dialStart}
	zeros := 0
	for _, l := range lines {
		if l == "" {
			continue
		}
		if err := d.turn(l); err != nil {
			return 0, err
		}
		if d.pos == 0 {
			zeros++
		}
	}
	return zeros, nil
}

func day1Part2(lines []string) (int, error) {
	d := dial{pos: dialStart}
	for _, l := range lines {
		if l == "" {
			continue
		}
		if err := d.turn(l); err != nil {
			return 0, err
		}
	}
	return d.zeroPasses, nil
}
