package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected X/green", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorRed)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected to start with '  Hello'", got)
	}

	// Clipped at the right edge
	s.DrawText(17, 0, "abcdef")
	if got := s.Row(0); !strings.HasSuffix(got, "abc") {
		t.Errorf("Row(0) = %q, expected clipped 'abc' suffix", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorCyan)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
	if s.GetCell(4, 0).Color != ColorCyan {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorDefault)

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'Z')

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("Resize(2, 2) gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'Z' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 3)
	if s.Get(1, 1) != 'Z' || s.Get(5, 2) != ' ' {
		t.Error("Growing should keep content and blank the new area")
	}
}

func TestScreenNegativeSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"negative width", -3, 2},
		{"negative height", 2, -1},
		{"both negative", -5, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			if s.Width() < 0 || s.Height() < 0 {
				t.Fatalf("NewScreen(%d, %d) gave %dx%d", tc.w, tc.h, s.Width(), s.Height())
			}
			if s.Width() != max(tc.w, 0) || s.Height() != max(tc.h, 0) {
				t.Errorf("NewScreen(%d, %d) gave %dx%d", tc.w, tc.h, s.Width(), s.Height())
			}

			s = NewScreen(3, 3)
			s.Set(0, 0, 'A')
			s.Resize(tc.w, tc.h)
			if s.Width() != max(tc.w, 0) || s.Height() != max(tc.h, 0) {
				t.Errorf("Resize(%d, %d) gave %dx%d", tc.w, tc.h, s.Width(), s.Height())
			}
		})
	}
}
