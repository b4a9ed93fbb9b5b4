package invaders

import (
	"github.com/vovakirdan/space-station/internal/config"
)

// ShapeCell is the grid position of one block in an obstacle mask.
type ShapeCell struct {
	Col, Row int
}

// ParseShape returns every 'x' of the mask in row-major order.
// Any other character is empty space.
func ParseShape(rows []string) []ShapeCell {
	var cells []ShapeCell
	for row, line := range rows {
		col := 0
		for _, ch := range line {
			if ch == 'x' {
				cells = append(cells, ShapeCell{Col: col, Row: row})
			}
			col++
		}
	}
	return cells
}

// buildObstacles places cfg.Count copies of the shape evenly across the
// world, starting a fifteenth of the width in from the left edge.
func buildObstacles(cfg config.ObstaclesConfig, worldW float64, newID func() EntityID) []*Block {
	if cfg.Count <= 0 {
		return nil
	}

	cells := ParseShape(cfg.Shape)
	blocks := make([]*Block, 0, cfg.Count*len(cells))
	spacing := worldW / float64(cfg.Count)
	left := worldW / 15

	for n := 0; n < cfg.Count; n++ {
		originX := left + float64(n)*spacing
		for _, c := range cells {
			blocks = append(blocks, &Block{
				ID:       newID(),
				X:        originX + float64(c.Col)*cfg.BlockSize,
				Y:        cfg.Y + float64(c.Row)*cfg.BlockSize,
				Size:     cfg.BlockSize,
				Obstacle: n,
			})
		}
	}
	return blocks
}
