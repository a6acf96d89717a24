package sim

// PairKind identifies which entity classes collided.
type PairKind uint8

const (
	PairShipAsteroid PairKind = iota + 1
	PairBulletAsteroid
)

// Pair is one overlapping (ship|bullet, asteroid) pair found in a tick.
type Pair struct {
	Kind     PairKind
	A        Handle // Ship or bullet
	Asteroid Handle
}

// detectCollisions tests ships and bullets against every asteroid with
// bounding boxes and flags both members of each overlapping pair.
// Flags are idempotent: an entity in several pairs is still handled once.
func detectCollisions(a *Arena) []Pair {
	asteroids := a.Handles(KindAsteroid)
	if len(asteroids) == 0 {
		return nil
	}

	var pairs []Pair
	a.Each(func(h Handle, e *Entity) {
		var kind PairKind
		switch e.Kind {
		case KindShip:
			kind = PairShipAsteroid
		case KindBullet:
			kind = PairBulletAsteroid
		default:
			return
		}

		box := e.Box()
		for _, ah := range asteroids {
			ast := a.Get(ah)
			if !box.Intersects(ast.Box()) {
				continue
			}
			e.Hit = true
			ast.Hit = true
			pairs = append(pairs, Pair{Kind: kind, A: h, Asteroid: ah})
		}
	})
	return pairs
}
