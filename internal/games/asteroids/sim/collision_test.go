package sim

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestDetectCollisions(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		half     float64
		pos      core.Vec2
		asteroid core.Vec2
		hit      bool
	}{
		{"ship overlapping", KindShip, 15, core.V(0, 0), core.V(34, 0), true},
		{"ship touching edge", KindShip, 15, core.V(0, 0), core.V(35, 0), false},
		{"ship diagonal corner", KindShip, 15, core.V(0, 0), core.V(34, -34), true},
		{"bullet inside", KindBullet, 0, core.V(19.5, 0), core.V(0, 0), true},
		{"bullet on edge", KindBullet, 0, core.V(20, 0), core.V(0, 0), false},
		{"bullet far", KindBullet, 0, core.V(0, 200), core.V(0, 0), false},
		{"wreck never collides", KindWreck, 15, core.V(0, 0), core.V(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a Arena
			h := a.Spawn(Entity{Kind: tc.kind, Pos: tc.pos, Half: tc.half})
			ah := a.Spawn(Entity{Kind: KindAsteroid, Pos: tc.asteroid, Half: 20, Size: SizeLarge})

			pairs := detectCollisions(&a)

			if got := len(pairs) == 1; got != tc.hit {
				t.Fatalf("pairs = %v, expected hit=%v", pairs, tc.hit)
			}
			if a.Get(h).Hit != tc.hit || a.Get(ah).Hit != tc.hit {
				t.Errorf("hit flags = %v/%v, expected %v", a.Get(h).Hit, a.Get(ah).Hit, tc.hit)
			}
		})
	}
}

func TestDetectCollisionsFlagsEveryPair(t *testing.T) {
	var a Arena
	b := a.Spawn(Entity{Kind: KindBullet, Pos: core.V(0, 0)})
	a1 := a.Spawn(Entity{Kind: KindAsteroid, Pos: core.V(-10, 0), Half: 20})
	a2 := a.Spawn(Entity{Kind: KindAsteroid, Pos: core.V(10, 0), Half: 20})
	a3 := a.Spawn(Entity{Kind: KindAsteroid, Pos: core.V(100, 0), Half: 20})

	pairs := detectCollisions(&a)

	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, expected 2", len(pairs))
	}
	for _, p := range pairs {
		if p.Kind != PairBulletAsteroid || p.A != b {
			t.Errorf("unexpected pair %+v", p)
		}
	}
	if !a.Get(a1).Hit || !a.Get(a2).Hit || a.Get(a3).Hit {
		t.Error("only the two overlapping asteroids should be flagged")
	}

	// Running the detector again keeps the flags as they are
	detectCollisions(&a)
	if !a.Get(b).Hit {
		t.Error("bullet flag should remain set")
	}
}
