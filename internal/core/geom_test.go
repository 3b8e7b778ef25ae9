package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last cell", 29, 24, true},
		{"right edge", 30, 20, false},
		{"bottom edge", 20, 25, false},
		{"left of", 9, 15, false},
		{"above", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 10, 6)

	if got := r.Inset(1); got != NewRect(3, 4, 8, 4) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := r.Inset(4); got.W != 2 || got.H != 0 {
		t.Errorf("Inset(4) should collapse height, got %+v", got)
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)

	if got := outer.Centered(22, 22); got != NewRect(29, 1, 22, 22) {
		t.Errorf("Centered(22, 22) = %+v", got)
	}
	if got := NewRect(0, 0, 10, 4).Centered(20, 4); got.X != -5 {
		t.Errorf("oversized rect should overhang on the left, got X=%d", got.X)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestActionNames(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionMoveLeft, "move_left"},
		{ActionMoveRight, "move_right"},
		{ActionSoftDrop, "soft_drop"},
		{ActionHardDrop, "hard_drop"},
		{ActionRotate, "rotate_clockwise"},
		{ActionPause, "pause_toggle"},
		{ActionResume, "resume"},
		{ActionStart, "start"},
		{ActionReset, "reset"},
		{Action(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.action, got, tc.want)
		}
	}
}

func TestColorEmpty(t *testing.T) {
	if !ColorDefault.IsEmpty() {
		t.Error("ColorDefault should be the empty marker")
	}
	if ColorCyan.IsEmpty() {
		t.Error("ColorCyan should not be empty")
	}
	if ColorOrange.String() != "orange" {
		t.Errorf("ColorOrange.String() = %q", ColorOrange.String())
	}
	if Color(200).String() != "unknown" {
		t.Errorf("Color(200).String() = %q", Color(200).String())
	}
}

func TestRuntimeConfigNormalized(t *testing.T) {
	now := time.Unix(0, 42)

	got := RuntimeConfig{ScreenW: 100}.Normalized(now)
	if got.TickRate != 30 || got.Seed != 42 || got.ScreenW != 100 {
		t.Errorf("Normalized() = %+v", got)
	}

	kept := RuntimeConfig{TickRate: 60, Seed: 7}.Normalized(now)
	if kept.TickRate != 60 || kept.Seed != 7 {
		t.Errorf("Normalized() should keep set fields, got %+v", kept)
	}
}
