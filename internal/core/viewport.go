package core

import "math"

// Viewport maps world units onto terminal cells and back.
type Viewport struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// NewViewport creates a viewport that stretches the world over the screen.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, ScreenW: screenW, ScreenH: screenH}
}

func (v Viewport) scale() (float64, float64) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	return float64(v.ScreenW) / v.WorldW, float64(v.ScreenH) / v.WorldH
}

// ToScreen converts a world point to the cell containing it.
func (v Viewport) ToScreen(x, y float64) (int, int) {
	sx, sy := v.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// ToWorld converts a cell to the world point at its center.
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	sx, sy := v.scale()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return (float64(cx) + 0.5) / sx, (float64(cy) + 0.5) / sy
}

// BoxToRect converts a world box to the cells it covers.
// Anything with a positive size covers at least one cell.
func (v Viewport) BoxToRect(b Box) Rect {
	x0, y0 := v.ToScreen(b.X, b.Y)
	sx, sy := v.scale()
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
