package core

import (
	"strings"
	"testing"
)

// assertBlank fails if any cell of s is not a blank space.
func assertBlank(t *testing.T, s *Screen) {
	t.Helper()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", s.Width(), s.Height())
	}
	if s.Bounds() != NewRect(0, 0, 80, 24) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}
	assertBlank(t, s)
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 5)
	if s.Width() != 0 || s.Height() != 5 {
		t.Errorf("size = %dx%d, want 0x5", s.Width(), s.Height())
	}
	s.Set(0, 0, 'X')
	if s.String() != "\n\n\n\n" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenSetOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 10)

	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.Set(p[0], p[1], 'A')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, want space", p[0], p[1], got)
		}
	}
	assertBlank(t, s)

	s.Set(9, 9, 'X')
	if s.Get(9, 9) != 'X' {
		t.Errorf("Get(9, 9) = %q, want 'X'", s.Get(9, 9))
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill(s.Bounds(), Cell{Rune: '#', Color: ColorRed})

	s.Clear()
	assertBlank(t, s)
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	s.DrawText(18, 0, "Hello")

	if got := s.Row(1); got != "  Hello             " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(0); !strings.HasSuffix(got, "He") {
		t.Errorf("Row(0) = %q, want clipped text at the end", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("Row(2) = %q, want Hi at column 9", s.Row(2))
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill(NewRect(2, 2, 3, 3), Cell{Rune: '#', Color: ColorBlue})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			got := s.GetCell(x, y)
			if inside && got != (Cell{Rune: '#', Color: ColorBlue}) {
				t.Errorf("(%d, %d) = %+v, want filled", x, y, got)
			}
			if !inside && got != blankCell {
				t.Errorf("(%d, %d) = %+v, want blank", x, y, got)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	want := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("box:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
	if s.GetCell(1, 1).Color != ColorGray || s.GetCell(3, 4).Color != ColorGray {
		t.Error("box outline should carry its color")
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawBox(NewRect(0, 0, 1, 3), ColorDefault)
	assertBlank(t, s)
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	assertBlank(t, s)

	s.DrawText(0, 0, "Keep")
	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "Keep") {
		t.Errorf("same-size resize should keep content, row 0 = %q", s.Row(0))
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '█', ColorCyan)
	s.DrawTextColored(4, 1, "ab", ColorRed)

	if got := s.GetCell(2, 1); got != (Cell{Rune: '█', Color: ColorCyan}) {
		t.Errorf("GetCell(2, 1) = %+v, want cyan block", got)
	}
	if got := s.GetCell(5, 1); got != (Cell{Rune: 'b', Color: ColorRed}) {
		t.Errorf("GetCell(5, 1) = %+v, want red b", got)
	}
	if s.GetCell(-1, -1) != blankCell {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}
