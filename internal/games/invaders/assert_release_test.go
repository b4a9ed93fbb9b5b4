//go:build !debug

package invaders

import "testing"

func TestDestroyTwiceIgnored(t *testing.T) {
	g := newActiveGame(quietConfig())
	alien := body{cat: CategoryAlien, idx: 0}
	g.destroy(alien, CauseCollision)
	g.destroy(alien, CauseCollision)

	if n := countEvents[EntityDestroyed](g.flush(), nil); n != 1 {
		t.Errorf("EntityDestroyed = %d, expected the duplicate ignored", n)
	}
}
