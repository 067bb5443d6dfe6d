// Package puzzle holds the registry of daily solvers and the helpers used to
// feed them input.
package puzzle

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrUnknownDay  = errors.New("unknown day")
	ErrUnknownPart = errors.New("unknown part")
)

// Solver computes the answer for one part of a day from the input lines.
type Solver func(lines []string) (int, error)

var solvers = map[int][]Solver{}

// Register adds the solvers for day, part 1 first. It is meant to be called
// from init functions and panics if the day is registered twice.
func Register(day int, parts ...Solver) {
	if _, ok := solvers[day]; ok {
		panic(fmt.Sprintf("day %d registered twice", day))
	}
	solvers[day] = parts
}

// Lookup returns the solver for the given day and part (1-based).
func Lookup(day, part int) (Solver, error) {
	parts, ok := solvers[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	if part < 1 || part > len(parts) {
		return nil, fmt.Errorf("day %d part %d: %w", day, part, ErrUnknownPart)
	}
	return parts[part-1], nil
}

// Parts returns the number of parts registered for day.
func Parts(day int) int {
	return len(solvers[day])
}

// Days returns every registered day in ascending order.
func Days() []int {
	return slices.Sorted(maps.Keys(solvers))
}

// Latest returns the highest registered day, or 0 if there is none.
func Latest() int {
	days := Days()
	if len(days) == 0 {
		return 0
	}
	return days[len(days)-1]
}
