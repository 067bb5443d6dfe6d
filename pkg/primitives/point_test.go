package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPoint_Add(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		dir  Point
		want Point
	}{
		{"up from origin goes negative", Pt(0, 0), Up, Pt(0, -1)},
		{"down", Pt(2, 3), Down, Pt(2, 4)},
		{"left", Pt(2, 3), Left, Pt(1, 3)},
		{"right", Pt(2, 3), Right, Pt(3, 3)},
		{"up-left", Pt(2, 3), UpLeft, Pt(1, 2)},
		{"down-right", Pt(2, 3), DownRight, Pt(3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Add(tt.dir); got != tt.want {
				t.Errorf("Add() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(4, -2)
	if got := p.Sub(Pt(1, 1)); got != Pt(3, -3) {
		t.Errorf("Sub() = %v, want (3,-3)", got)
	}
	if got := Right.Scale(3); got != Pt(3, 0) {
		t.Errorf("Scale() = %v, want (3,0)", got)
	}
	if got := p.MDist(Pt(0, 0)); got != 6 {
		t.Errorf("MDist() = %d, want 6", got)
	}

	small := Pt2[int8]{X: -3, Y: 4}
	if got := small.MDist(Pt2[int8]{}); got != 7 {
		t.Errorf("int8 MDist() = %d, want 7", got)
	}
}

func TestDirections(t *testing.T) {
	if diff := cmp.Diff([4]Point{Pt(-1, -1), Pt(1, -1), Pt(-1, 1), Pt(1, 1)}, Diagonal); diff != "" {
		t.Errorf("Diagonal mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([4]Point{Pt(0, -1), Pt(0, 1), Pt(-1, 0), Pt(1, 0)}, Orthogonal); diff != "" {
		t.Errorf("Orthogonal mismatch (-want +got):\n%s", diff)
	}

	seen := make(map[Point]bool)
	for _, d := range Adjacent {
		if d == (Point{}) {
			t.Errorf("Adjacent contains the zero vector")
		}
		if seen[d] {
			t.Errorf("Adjacent contains %v twice", d)
		}
		seen[d] = true
		if d.MDist(Point{}) > 2 {
			t.Errorf("Adjacent contains non-unit vector %v", d)
		}
	}
	if len(seen) != 8 {
		t.Errorf("Adjacent has %d distinct vectors, want 8", len(seen))
	}
}
