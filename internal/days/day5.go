package days

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"crosswarped.com/aoc/internal/puzzle"
)

func init() {
	puzzle.Register(5, day5Part1, day5Part2)
}

// parseInventory splits the input into the fresh ranges before the first
// blank line and the ingredient ids after it.
func parseInventory(lines []string) ([]idRange, []int, error) {
	var ranges []idRange
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		r, err := parseRange(line)
		if err != nil {
			return nil, nil, err
		}
		ranges = append(ranges, r)
	}

	var ids []int
	for _, line := range lines[i:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid ingredient id %q: %w", line, err)
		}
		ids = append(ids, id)
	}
	return ranges, ids, nil
}

func day5Part1(lines []string) (int, error) {
	ranges, ids, err := parseInventory(lines)
	if err != nil {
		return 0, err
	}
	fresh := 0
	for _, id := range ids {
		if slices.ContainsFunc(ranges, func(r idRange) bool { return id >= r.lo && id <= r.hi }) {
			fresh++
		}
	}
	return fresh, nil
}

// mergeRanges returns the union of ranges as sorted, disjoint, non-adjacent
// ranges.
func mergeRanges(ranges []idRange) []idRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := slices.SortedFunc(slices.Values(ranges), func(a, b idRange) int { return cmp.Compare(a.lo, b.lo) })
	merged := []idRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.lo <= last.hi+1 {
			last.hi = max(last.hi, r.hi)
		} else {
			merged = append(merged, r)
		}
	}
	return merged
}

func day5Part2(lines []string) (int, error) {
	ranges, _, err := parseInventory(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range mergeRanges(ranges) {
		total += r.hi - r.lo + 1
	}
	return total, nil
}
