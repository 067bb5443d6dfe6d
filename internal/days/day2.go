package days

import (
	"fmt"
	"strconv"
	"strings"

	"crosswarped.com/aoc/internal/puzzle"
)

func init() {
	puzzle.Register(2, day2Part1, day2Part2)
}

type idRange struct {
	lo, hi int
}

func parseRange(s string) (idRange, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return idRange{}, fmt.Errorf("invalid id range %q", s)
	}
	l, err := strconv.Atoi(lo)
	if err != nil {
		return idRange{}, fmt.Errorf("invalid id range %q: %w", s, err)
	}
	h, err := strconv.Atoi(hi)
	if err != nil {
		return idRange{}, fmt.Errorf("invalid id range %q: %w", s, err)
	}
	if h < l {
		return idRange{}, fmt.Errorf("invalid id range %q: end before start", s)
	}
	return idRange{lo: l, hi: h}, nil
}

func parseRanges(lines []string) ([]idRange, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no id ranges")
	}
	var ranges []idRange
	for _, part := range strings.Split(lines[0], ",") {
		if part == "" {
			continue
		}
		r, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// repeatedTwice reports whether s is some sequence of digits written twice.
func repeatedTwice(s string) bool {
	n := len(s)
	return n%2 == 0 && s[:n/2] == s[n/2:]
}

// repeated reports whether s is some sequence of digits written at least
// twice.
func repeated(s string) bool {
	n := len(s)
	for k := 1; k <= n/2; k++ {
		if n%k == 0 && strings.Repeat(s[:k], n/k) == s {
			return true
		}
	}
	return false
}

func sumInvalid(lines []string, invalid func(string) bool) (int, error) {
	ranges, err := parseRanges(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range ranges {
		for id := r.lo; id <= r.hi; id++ {
			if invalid(strconv.Itoa(id)) {
				sum += id
			}
		}
	}
	return sum, nil
}

func day2Part1(lines []string) (int, error) {
	return sumInvalid(lines, repeatedTwice)
}

func day2Part2(lines []string) (int, error) {
	return sumInvalid(lines, repeated)
}
