package core

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(800, 600, 80, 24)

	tests := []struct {
		name   string
		cx, cy int
	}{
		{"origin", 0, 0},
		{"middle", 40, 12},
		{"bottom right", 79, 23},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wx, wy := v.ToWorld(tc.cx, tc.cy)
			gx, gy := v.ToScreen(wx, wy)
			if gx != tc.cx || gy != tc.cy {
				t.Errorf("ToScreen(ToWorld(%d, %d)) = (%d, %d)", tc.cx, tc.cy, gx, gy)
			}
		})
	}
}

func TestViewportBoxToRectMinimumCell(t *testing.T) {
	v := NewViewport(800, 600, 80, 24)

	// A laser is narrower than a cell but must still be visible.
	r := v.BoxToRect(Box{X: 401, Y: 300, W: 4, H: 20})
	if r.W < 1 || r.H < 1 {
		t.Errorf("BoxToRect() = %+v, expected at least one cell", r)
	}
	if r.X != 40 || r.Y != 12 {
		t.Errorf("BoxToRect() origin = (%d, %d), expected (40, 12)", r.X, r.Y)
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		ms, rate, expected int
	}{
		{700, 60, 42},
		{700, 30, 21},
		{1000, 60, 60},
		{1, 60, 1},
		{700, 0, 42},
	}

	for _, tc := range tests {
		if got := TicksFor(tc.ms, tc.rate); got != tc.expected {
			t.Errorf("TicksFor(%d, %d) = %d, expected %d", tc.ms, tc.rate, got, tc.expected)
		}
	}
}
