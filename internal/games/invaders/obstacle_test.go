package invaders

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/space-station/internal/config"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected []ShapeCell
	}{
		{"empty", nil, nil},
		{"single", []string{"x"}, []ShapeCell{{0, 0}}},
		{"gaps", []string{"x x", " x "}, []ShapeCell{{0, 0}, {2, 0}, {1, 1}}},
		{"other runes are empty", []string{"o.x"}, []ShapeCell{{2, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseShape(tt.rows); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseShape(%q) = %v, expected %v", tt.rows, got, tt.expected)
			}
		})
	}
}

func TestDefaultShapeBlockCount(t *testing.T) {
	if n := len(ParseShape(config.DefaultObstacleShape)); n != 59 {
		t.Errorf("default shape has %d blocks, expected 59", n)
	}
}

func TestBuildObstacles(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Obstacles
	var id EntityID
	blocks := buildObstacles(cfg, 800, func() EntityID {
		id++
		return id
	})

	if len(blocks) != 6*59 {
		t.Fatalf("blocks = %d, expected %d", len(blocks), 6*59)
	}

	first := blocks[0]
	expectedX := 800.0/15 + 2*cfg.BlockSize
	if first.X != expectedX || first.Y != cfg.Y {
		t.Errorf("first block at (%v, %v), expected (%v, %v)", first.X, first.Y, expectedX, cfg.Y)
	}

	second := blocks[59]
	if second.Obstacle != 1 {
		t.Errorf("block 59 belongs to obstacle %d, expected 1", second.Obstacle)
	}
	if dx := second.X - first.X; dx < 133.3 || dx > 133.4 {
		t.Errorf("obstacle spacing = %v, expected 800/6", dx)
	}

	for _, b := range blocks {
		if b.Size != cfg.BlockSize {
			t.Fatalf("block %d size = %v, expected %v", b.ID, b.Size, cfg.BlockSize)
		}
		box := b.Box()
		if box.X != b.X || box.Y != b.Y || box.W != b.Size || box.H != b.Size {
			t.Fatalf("block %d box = %+v, expected top-left anchored", b.ID, box)
		}
	}
}

func TestBuildObstaclesNone(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Obstacles
	cfg.Count = 0
	if blocks := buildObstacles(cfg, 800, func() EntityID { return 1 }); blocks != nil {
		t.Errorf("buildObstacles() = %d blocks, expected nil", len(blocks))
	}
}
