package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"border", NewRect(2, 3, 10, 6), 1, NewRect(3, 4, 8, 4)},
		{"zero", NewRect(2, 3, 10, 6), 0, NewRect(2, 3, 10, 6)},
		{"collapses", NewRect(0, 0, 3, 1), 1, NewRect(1, 1, 1, 0)},
		{"never negative", NewRect(0, 0, 2, 2), 5, NewRect(5, 5, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{7, 5, 2},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestInputFrameSequence(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Set(ActionRight)
	f.Set(ActionConfirm)
	f.Set(ActionNone)

	seq := f.Sequence()
	if len(seq) != 3 {
		t.Fatalf("Sequence() length = %d, expected 3", len(seq))
	}
	if seq[0] != ActionConfirm || seq[1] != ActionRight || seq[2] != ActionConfirm {
		t.Errorf("Sequence() = %v", seq)
	}
	if !f.Has(ActionRight) || f.Has(ActionLeft) {
		t.Error("Has() should reflect pressed actions")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() || f.Has(ActionConfirm) {
		t.Error("Clear() should empty the frame")
	}
	if len(clone.Sequence()) != 3 {
		t.Error("Clone() should be independent of the original")
	}
}
