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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, '*', ColorOrange)

	cell := s.GetCell(1, 1)
	if cell.Rune != '*' || cell.Color != ColorOrange {
		t.Errorf("GetCell(1, 1) = %+v, expected orange '*'", cell)
	}

	s.Clear()
	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cell, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}

	// Clipped at right edge
	s.DrawText(17, 2, "World")
	if got := s.Row(2); !strings.HasSuffix(got, "Wor") {
		t.Errorf("Row(2) = %q, expected clipped suffix %q", got, "Wor")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical", 1, 0, 1, 2, [][2]int{{1, 0}, {1, 1}, {1, 2}}},
		{"diagonal", 0, 0, 2, 2, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"reversed", 3, 3, 1, 1, [][2]int{{3, 3}, {2, 2}, {1, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 5)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '.', ColorDefault)
			for _, c := range tc.cells {
				if s.Get(c[0], c[1]) != '.' {
					t.Errorf("expected line cell at (%d, %d)", c[0], c[1])
				}
			}
		})
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Set(3, 3, 'Y')

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("Resize dimensions = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("Resize should preserve content inside new bounds")
	}

	s.Resize(6, 6)
	if s.Get(1, 1) != 'X' {
		t.Error("Growing should preserve content")
	}
	if s.Get(3, 3) != ' ' {
		t.Error("Content dropped by shrinking should not reappear")
	}
}
