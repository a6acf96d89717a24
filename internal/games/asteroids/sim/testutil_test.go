package sim

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var testView = Viewport{HalfW: 400, HalfH: 400}

func newTestWorld(seed int64) *World {
	return NewWorld(config.DefaultAsteroidsConfig(), WithSeed(seed))
}

// startedWorld returns a Playing world with the opening wave removed,
// so tests control every asteroid themselves.
func startedWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w := newTestWorld(seed)
	w.Tick(Intent{Start: true}, testView)
	if w.Session().Top != StatePlaying {
		t.Fatalf("world did not start, state = %v", w.Session().Top)
	}
	w.arena.DespawnKind(KindAsteroid)
	return w
}

func placeAsteroid(w *World, size Size, pos core.Vec2) Handle {
	return w.spawnAsteroid(size, pos, core.Vec2{})
}

// placeBullet spawns a bullet that stays where it is.
func placeBullet(w *World, pos core.Vec2) Handle {
	return w.arena.Spawn(Entity{Kind: KindBullet, Pos: pos, Origin: pos})
}

func idle(w *World, n int) {
	for range n {
		w.Tick(Intent{}, testView)
	}
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}
