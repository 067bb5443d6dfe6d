package days

import (
	"fmt"

	"crosswarped.com/aoc/internal/puzzle"
	"crosswarped.com/aoc/pkg/primitives"
)

func init() {
	puzzle.Register(3,
		func(lines []string) (int, error) { return totalJoltage(lines, 2) },
		func(lines []string) (int, error) { return totalJoltage(lines, 12) },
	)
}

// maxJoltage picks k digits from bank, keeping their order, so that the
// number they form is as large as possible.
func maxJoltage(bank string, k int) int {
	result := 0
	start := 0
	for remaining := k - 1; remaining >= 0; remaining-- {
		end := len(bank) - remaining
		best := start
		for i := start; i < end; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		result = result*10 + int(bank[best]-'0')
		start = best + 1
	}
	return result
}

func totalJoltage(lines []string, k int) (int, error) {
	digits := primitives.Digits()
	sum := 0
	for _, bank := range lines {
		if bank == "" {
			continue
		}
		if len(bank) < k {
			return 0, fmt.Errorf("bank %q has fewer than %d batteries", bank, k)
		}
		for i := range len(bank) {
			if !digits.Contains(bank[i]) {
				return 0, fmt.Errorf("bank %q has non-digit %q", bank, bank[i])
			}
		}
		sum += maxJoltage(bank, k)
	}
	return sum, nil
}
