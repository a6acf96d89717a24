package sim

import (
	"errors"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Kind tags the variant held by an Entity.
type Kind uint8

const (
	KindShip Kind = iota + 1
	KindAsteroid
	KindBullet
	KindWreck // Marker left where the ship died, no collision
	KindTimer
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindWreck:
		return "wreck"
	case KindTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// Size is the asteroid size class.
type Size uint8

const (
	SizeLarge Size = iota + 1
	SizeMedium
	SizeSmall
)

func (s Size) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "none"
	}
}

// Smaller returns the size of the fragments a hit produces.
// Small asteroids are terminal.
func (s Size) Smaller() (Size, bool) {
	switch s {
	case SizeLarge:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return 0, false
	}
}

// TimerPurpose says what a Timer entity triggers when it elapses.
type TimerPurpose uint8

const (
	TimerShipRespawn TimerPurpose = iota + 1
	TimerWaveRespawn
)

// Entity is a closed tagged variant over everything the world simulates.
// Fields outside the Kind's group are zero.
type Entity struct {
	Kind Kind

	Pos     core.Vec2
	Vel     core.Vec2
	Heading core.Vec2 // Unit direction of last thrust (ship) or travel (bullet)
	Angle   float64   // Radians, 0 faces +y
	Half    float64   // Collision half extent
	Wraps   bool
	Hit     bool

	// Asteroid
	Size   Size
	Radius float64

	// Bullet
	Origin core.Vec2

	// Timer
	Purpose   TimerPurpose
	Remaining int    // Whole ticks left
	Link      Handle // Entity despawned together with the timer
}

// Box returns the collision box of the entity.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.Pos, e.Half)
}

// Handle is a generation-checked reference into an Arena.
// The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// ErrSingletonExists is returned when spawning a second ship or player.
var ErrSingletonExists = errors.New("sim: singleton already exists")

type slot struct {
	gen   uint32
	alive bool
	ent   Entity
}

// Arena stores entities in a flat slice with a free list.
// Iteration is always in slot order, which keeps ticks deterministic.
type Arena struct {
	slots []slot
	free  []uint32
	live  int
}

// Spawn stores e and returns its handle.
func (a *Arena) Spawn(e Entity) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots)) //#nosec G115 -- entity counts stay tiny
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[idx]
	s.gen++
	s.alive = true
	s.ent = e
	a.live++
	return Handle{index: idx, gen: s.gen}
}

// Get resolves h. Stale or zero handles return nil.
func (a *Arena) Get(h Handle) *Entity {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil
	}
	return &s.ent
}

// Despawn removes the entity behind h. Returns false for stale handles.
func (a *Arena) Despawn(h Handle) bool {
	if a.Get(h) == nil {
		return false
	}
	s := &a.slots[h.index]
	s.alive = false
	s.ent = Entity{}
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.live
}

// Each calls fn for every live entity in slot order.
// Spawning or despawning from fn is not allowed; collect handles instead.
func (a *Arena) Each(fn func(Handle, *Entity)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			fn(Handle{index: uint32(i), gen: s.gen}, &s.ent) //#nosec G115 -- bounded by slot count
		}
	}
}

// Handles returns the handles of all live entities of the given kind.
func (a *Arena) Handles(kind Kind) []Handle {
	var out []Handle
	a.Each(func(h Handle, e *Entity) {
		if e.Kind == kind {
			out = append(out, h)
		}
	})
	return out
}

// Count returns the number of live entities of the given kind.
func (a *Arena) Count(kind Kind) int {
	n := 0
	a.Each(func(_ Handle, e *Entity) {
		if e.Kind == kind {
			n++
		}
	})
	return n
}

// First returns the first live entity of the given kind.
func (a *Arena) First(kind Kind) (Handle, *Entity) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive && s.ent.Kind == kind {
			return Handle{index: uint32(i), gen: s.gen}, &s.ent //#nosec G115 -- bounded by slot count
		}
	}
	return Handle{}, nil
}

// DespawnKind removes every entity of the given kind and returns how many went.
func (a *Arena) DespawnKind(kind Kind) int {
	hs := a.Handles(kind)
	for _, h := range hs {
		a.Despawn(h)
	}
	return len(hs)
}
