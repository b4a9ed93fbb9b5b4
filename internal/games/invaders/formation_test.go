package invaders

import (
	"math"
	"testing"

	"github.com/vovakirdan/space-station/internal/config"
)

func newTestFormation() *Formation {
	var id EntityID
	cfg := config.DefaultInvadersConfig().Aliens
	cfg.BobAmplitude = 0
	return NewFormation(cfg, 800, func() EntityID {
		id++
		return id
	})
}

func TestNewFormationLayout(t *testing.T) {
	f := newTestFormation()

	if f.Len() != 77 {
		t.Fatalf("Len() = %d, expected 77", f.Len())
	}
	if f.Direction != 1 {
		t.Errorf("Direction = %v, expected 1", f.Direction)
	}

	tests := []struct {
		idx      int
		x, y     float64
		color    AlienColor
		points   int
		row, col int
	}{
		{0, 70, 100, AlienYellow, 500, 0, 0},
		{10, 670, 100, AlienYellow, 500, 0, 10},
		{11, 70, 148, AlienGreen, 300, 1, 0},
		{33, 70, 244, AlienRed, 100, 3, 0},
		{76, 670, 388, AlienRed, 100, 6, 10},
	}

	for _, tt := range tests {
		a := f.Aliens[tt.idx]
		if a.X != tt.x || a.Y != tt.y {
			t.Errorf("alien %d at (%v, %v), expected (%v, %v)", tt.idx, a.X, a.Y, tt.x, tt.y)
		}
		if a.Color != tt.color || a.Points != tt.points {
			t.Errorf("alien %d is %s worth %d, expected %s worth %d", tt.idx, a.Color, a.Points, tt.color, tt.points)
		}
		if a.Row != tt.row || a.Col != tt.col {
			t.Errorf("alien %d at cell (%d, %d), expected (%d, %d)", tt.idx, a.Row, a.Col, tt.row, tt.col)
		}
	}

	seen := map[EntityID]bool{}
	for _, a := range f.Aliens {
		if seen[a.ID] {
			t.Fatalf("duplicate alien id %d", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestColorForRow(t *testing.T) {
	tests := []struct {
		row      int
		expected AlienColor
	}{
		{0, AlienYellow},
		{1, AlienGreen},
		{2, AlienGreen},
		{3, AlienRed},
		{6, AlienRed},
	}

	for _, tt := range tests {
		if got := colorForRow(tt.row); got != tt.expected {
			t.Errorf("colorForRow(%d) = %s, expected %s", tt.row, got, tt.expected)
		}
	}
}

func TestFormationAdvance(t *testing.T) {
	f := newTestFormation()
	f.Advance(1)
	if f.Aliens[0].X != 71 {
		t.Errorf("X = %v after advancing right, expected 71", f.Aliens[0].X)
	}

	f.Direction = -1
	f.Advance(3)
	if f.Aliens[0].X != 68 {
		t.Errorf("X = %v after advancing left, expected 68", f.Aliens[0].X)
	}
}

func TestFormationBob(t *testing.T) {
	f := newTestFormation()
	f.bob = bob{amplitude: 1, step: 0.1}
	f.Advance(0)

	first := f.Aliens[0].Y - 100
	for _, a := range f.Aliens {
		if got := a.Y - 100 - float64(a.Row)*48; math.Abs(got-first) > 1e-9 {
			t.Fatalf("alien %d bobbed %v, expected shared offset %v", a.ID, got, first)
		}
	}
	if first == 0 {
		t.Error("bob did not move the formation")
	}
}

func TestFormationCheckBounds(t *testing.T) {
	tests := []struct {
		name      string
		shift     float64
		direction float64
		flips     bool
	}{
		{"inside", 0, 1, false},
		{"touches right edge", 110, 1, true},
		{"past right edge", 150, 1, true},
		{"right edge moving left", 110, -1, false},
		{"touches left edge", -50, -1, true},
		{"left edge moving right", -50, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFormation()
			f.Direction = tt.direction
			ys := make([]float64, f.Len())
			for i, a := range f.Aliens {
				a.X += tt.shift
				ys[i] = a.Y
			}

			flipped := f.CheckBounds()

			if flipped != tt.flips {
				t.Fatalf("CheckBounds() = %v, expected %v", flipped, tt.flips)
			}
			expectedDir, expectedDY := tt.direction, 0.0
			if tt.flips {
				expectedDir, expectedDY = -tt.direction, 2
			}
			if f.Direction != expectedDir {
				t.Errorf("Direction = %v, expected %v", f.Direction, expectedDir)
			}
			for i, a := range f.Aliens {
				if a.Y-ys[i] != expectedDY {
					t.Fatalf("alien %d descended %v, expected %v", a.ID, a.Y-ys[i], expectedDY)
				}
			}

			if tt.flips && f.CheckBounds() {
				t.Error("second CheckBounds() flipped again without moving")
			}
		})
	}
}

func TestFormationCompact(t *testing.T) {
	f := newTestFormation()
	f.Aliens[0].dead = true
	f.Aliens[40].dead = true
	second := f.Aliens[1]

	f.Compact()

	if f.Len() != 75 {
		t.Errorf("Len() = %d, expected 75", f.Len())
	}
	if f.Aliens[0] != second {
		t.Error("Compact() did not keep grid order")
	}
	for _, a := range f.Aliens {
		if a.dead {
			t.Fatalf("dead alien %d kept", a.ID)
		}
	}
}
