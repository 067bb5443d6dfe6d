package primitives

import "fmt"

// ByteSet represents a set of byte values drawn from a contiguous range.
type ByteSet struct {
	present []bool
	min     byte
	count   int
}

func NewByteSet(min, max byte) *ByteSet {
	if max < min {
		panic(fmt.Sprintf("byte set range is inverted: %q > %q", min, max))
	}
	return &ByteSet{
		present: make([]bool, int(max)-int(min)+1),
		min:     min,
	}
}

// ByteSetOf returns a set holding exactly the given bytes, sized to the
// smallest range that covers them.
func ByteSetOf(bs ...byte) *ByteSet {
	if len(bs) == 0 {
		return NewByteSet(0, 0)
	}
	lo, hi := bs[0], bs[0]
	for _, b := range bs[1:] {
		lo = min(lo, b)
		hi = max(hi, b)
	}
	s := NewByteSet(lo, hi)
	for _, b := range bs {
		s.Add(b)
	}
	return s
}

// Digits is the set '0' to '9'.
func Digits() *ByteSet {
	s := NewByteSet('0', '9')
	for b := byte('0'); b <= '9'; b++ {
		s.Add(b)
	}
	return s
}

func (s *ByteSet) inRange(b byte) bool {
	return b >= s.min && int(b-s.min) < len(s.present)
}

// Add adds a byte to the set.
func (s *ByteSet) Add(b byte) error {
	if !s.inRange(b) {
		return fmt.Errorf("byte %q is out of range", b)
	}

	if s.present[b-s.min] {
		return nil
	}

	s.count++
	s.present[b-s.min] = true
	return nil
}

// AddAll adds all bytes from another set to this set. Both sets must cover
// the same range.
func (s *ByteSet) AddAll(other *ByteSet) {
	if s.min != other.min {
		panic(fmt.Sprintf("cannot add all: byte sets have different min, %q != %q", s.min, other.min))
	}
	if len(s.present) != len(other.present) {
		panic(fmt.Sprintf("cannot add all: byte sets have different lengths, %d != %d", len(s.present), len(other.present)))
	}

	if s.IsFull() {
		return
	}

	for i, ok := range other.present {
		if !ok || s.present[i] {
			continue
		}
		s.present[i] = true
		s.count++
	}
}

// Contains reports whether b is in the set. Bytes outside the set's range
// are never contained.
func (s *ByteSet) Contains(b byte) bool {
	return s.inRange(b) && s.present[b-s.min]
}

func (s *ByteSet) IsFull() bool {
	return s.count == len(s.present)
}

// Capacity returns the number of distinct bytes the set can hold.
func (s *ByteSet) Capacity() int {
	return len(s.present)
}

func (s *ByteSet) Count() int {
	return s.count
}
