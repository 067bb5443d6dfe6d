package days

import (
	"fmt"
	"strconv"
	"strings"

	"crosswarped.com/aoc"
	"crosswarped.com/aoc/internal/puzzle"
	"crosswarped.com/aoc/pkg/primitives"
)

func init() {
	puzzle.Register(6, day6Part1, day6Part2)
}

var operators = primitives.ByteSetOf('+', '*')

func apply(op byte, nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, fmt.Errorf("operator %q has no operands", op)
	}
	switch op {
	case '+':
		sum := 0
		for _, n := range nums {
			sum += n
		}
		return sum, nil
	case '*':
		product := 1
		for _, n := range nums {
			product *= n
		}
		return product, nil
	}
	return 0, fmt.Errorf("unknown operator %q", op)
}

func worksheetRows(lines []string) []string {
	var rows []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			rows = append(rows, l)
		}
	}
	return rows
}

// day6Part1 reads each problem as a column of whitespace separated numbers,
// with the operator on the last line.
func day6Part1(lines []string) (int, error) {
	rows := worksheetRows(lines)
	if len(rows) < 2 {
		return 0, fmt.Errorf("worksheet needs numbers and operators, got %d lines", len(rows))
	}

	ops := strings.Fields(rows[len(rows)-1])
	problems := make([][]int, len(ops))
	for _, row := range rows[:len(rows)-1] {
		fields := strings.Fields(row)
		if len(fields) != len(ops) {
			return 0, fmt.Errorf("row %q has %d numbers, want %d", row, len(fields), len(ops))
		}
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return 0, fmt.Errorf("invalid number %q: %w", f, err)
			}
			problems[i] = append(problems[i], n)
		}
	}

	total := 0
	for i, op := range ops {
		if len(op) != 1 {
			return 0, fmt.Errorf("invalid operator %q", op)
		}
		v, err := apply(op[0], problems[i])
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func blank(b byte) bool {
	return b == ' ' || b == aoc.Sentinel
}

// day6Part2 reads every grid column as one number, digits top to bottom.
// Problems are separated by columns that are entirely blank and the operator
// sits in the last row under one of the problem's columns.
func day6Part2(lines []string) (int, error) {
	g := aoc.FromLinesPadded(worksheetRows(lines))
	if g.Height() < 2 {
		return 0, fmt.Errorf("worksheet needs numbers and operators, got %d lines", g.Height())
	}
	digits := primitives.Digits()

	total := 0
	var (
		nums []int
		op   byte
	)
	flush := func() error {
		if len(nums) == 0 && op == 0 {
			return nil
		}
		v, err := apply(op, nums)
		if err != nil {
			return err
		}
		total += v
		nums, op = nil, 0
		return nil
	}

	for x, col := range g.Columns() {
		last := col[len(col)-1]
		if operators.Contains(last) {
			op = last
		} else if !blank(last) {
			return 0, fmt.Errorf("unexpected %q in operator row at column %d", last, x)
		}

		n, seen := 0, false
		for _, b := range col[:len(col)-1] {
			switch {
			case digits.Contains(b):
				n = n*10 + int(b-'0')
				seen = true
			case !blank(b):
				return 0, fmt.Errorf("unexpected %q at column %d", b, x)
			}
		}

		if seen {
			nums = append(nums, n)
		} else if blank(last) {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}
	if err := flush(); err != nil {
		return 0, err
	}
	return total, nil
}
