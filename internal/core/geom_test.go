package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"contained", Box{0, 0, 10, 10}, Box{2, 2, 2, 2}, true},
		{"left of", Box{0, 0, 10, 10}, Box{-20, 0, 10, 10}, false},
		{"touching edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"below", Box{0, 0, 10, 10}, Box{0, 10.5, 10, 10}, false},
		{"thin laser through block", Box{2, -5, 4, 20}, Box{0, 0, 6, 6}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAt(t *testing.T) {
	b := BoxAt(100, 50, 40, 20)
	if b.X != 80 || b.Y != 40 {
		t.Errorf("BoxAt() origin = (%v, %v), expected (80, 40)", b.X, b.Y)
	}
	cx, cy := b.Center()
	if cx != 100 || cy != 50 {
		t.Errorf("Center() = (%v, %v), expected (100, 50)", cx, cy)
	}
	if b.Right() != 120 || b.Bottom() != 60 {
		t.Errorf("Right/Bottom = (%v, %v), expected (120, 60)", b.Right(), b.Bottom())
	}
}

func TestBoxRect(t *testing.T) {
	r := Box{X: 1.5, Y: 2.2, W: 2, H: 1}.Rect()
	expected := NewRect(1, 2, 3, 2)
	if r != expected {
		t.Errorf("Rect() = %+v, expected %+v", r, expected)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{15, 15, false},
		{9, 10, false},
		{12, 12, true},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
}
