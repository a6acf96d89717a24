package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// tickOutcome is what the lifecycle phase hands to scoring.
type tickOutcome struct {
	destroyed []Size
	shipHit   bool
}

// lifecycle counts timers down, reacts to the collision flags, expires
// bullets and finally spawns the bullet for this tick's fire intent.
// Everything spawned here is first tested for collisions next tick.
func (w *World) lifecycle(fire *FireIntent) tickOutcome {
	var out tickOutcome

	w.countdown()

	for _, h := range w.arena.Handles(KindAsteroid) {
		e := w.arena.Get(h)
		if !e.Hit {
			continue
		}
		size, pos := e.Size, e.Pos
		w.arena.Despawn(h)
		out.destroyed = append(out.destroyed, size)
		w.emit(AsteroidDestroyed{Size: size, Pos: pos})

		if next, ok := size.Smaller(); ok {
			for range 2 {
				vel := w.rng.Direction().Scale(w.rng.Range(w.cfg.Asteroids.FragmentMinSpeed, w.cfg.Asteroids.FragmentMaxSpeed))
				w.spawnAsteroid(next, pos, vel)
			}
		}
	}

	for _, h := range w.arena.Handles(KindBullet) {
		e := w.arena.Get(h)
		switch {
		case e.Hit:
			w.arena.Despawn(h)
		case e.Pos.Dist(e.Origin) > w.cfg.Bullets.MaxRange:
			w.emit(BulletExpired{Pos: e.Pos})
			w.arena.Despawn(h)
		}
	}

	if h, ship := w.arena.First(KindShip); ship != nil && ship.Hit {
		pos, angle := ship.Pos, ship.Angle
		w.arena.Despawn(h)
		wreck := w.arena.Spawn(Entity{Kind: KindWreck, Pos: pos, Angle: angle})
		w.startTimer(TimerShipRespawn, w.cfg.Ship.RespawnDelaySecs, wreck)
		w.emit(ShipDestroyed{Pos: pos})
		w.queue(TriggerShipHit)
		w.log.Debug("ship destroyed", "tick", w.tick, "x", pos.X, "y", pos.Y)
		out.shipHit = true
	}

	if w.session.Wave == WaveFlying && w.arena.Count(KindAsteroid) == 0 {
		w.queue(TriggerWaveCleared)
	}

	if fire != nil {
		w.spawnBullet(*fire)
	}

	return out
}

// countdown advances every timer spawned before this tick.
// A timer fires once when it reaches zero and is despawned with its link.
func (w *World) countdown() {
	for _, h := range w.arena.Handles(KindTimer) {
		t := w.arena.Get(h)
		if t.Remaining > 0 {
			t.Remaining--
		}
		if t.Remaining > 0 {
			continue
		}

		purpose, link := t.Purpose, t.Link
		w.arena.Despawn(h)
		w.arena.Despawn(link)
		switch purpose {
		case TimerShipRespawn:
			w.queue(TriggerShipRespawnElapsed)
		case TimerWaveRespawn:
			w.queue(TriggerWaveRespawnElapsed)
		}
	}
}

// ticksFor converts a delay in seconds into whole ticks, rounding up.
func ticksFor(secs float64, tickRate int) int {
	if secs <= 0 {
		return 0
	}
	return int(math.Ceil(secs*float64(tickRate) - 1e-9))
}

func (w *World) startTimer(purpose TimerPurpose, secs float64, link Handle) Handle {
	return w.arena.Spawn(Entity{
		Kind:      KindTimer,
		Purpose:   purpose,
		Remaining: ticksFor(secs, w.tickRate),
		Link:      link,
	})
}

func (w *World) radius(size Size) float64 {
	switch size {
	case SizeLarge:
		return w.cfg.Asteroids.RadiusLarge
	case SizeMedium:
		return w.cfg.Asteroids.RadiusMedium
	default:
		return w.cfg.Asteroids.RadiusSmall
	}
}

func (w *World) spawnAsteroid(size Size, pos, vel core.Vec2) Handle {
	return w.arena.Spawn(Entity{
		Kind:   KindAsteroid,
		Pos:    pos,
		Vel:    vel,
		Half:   w.cfg.Collision.AsteroidHalfExtent,
		Wraps:  true,
		Size:   size,
		Radius: w.radius(size),
	})
}

// spawnWave places a random number of large asteroids inside the viewport.
func (w *World) spawnWave() {
	a := w.cfg.Asteroids
	n := a.WaveMin + w.rng.Intn(a.WaveMax-a.WaveMin)
	for range n {
		pos := core.V(w.rng.Range(-w.vp.HalfW, w.vp.HalfW), w.rng.Range(-w.vp.HalfH, w.vp.HalfH))
		vel := w.rng.Direction().Scale(w.rng.Range(a.InitialMinSpeed, a.InitialMaxSpeed))
		w.spawnAsteroid(SizeLarge, pos, vel)
	}
	w.emit(WaveSpawned{Count: n})
	w.log.Info("wave spawned", "asteroids", n, "tick", w.tick)
}

// spawnShip puts a fresh ship at the origin.
func (w *World) spawnShip() error {
	if _, ship := w.arena.First(KindShip); ship != nil {
		return ErrSingletonExists
	}
	w.arena.Spawn(Entity{
		Kind:    KindShip,
		Heading: Facing(0),
		Half:    w.cfg.Collision.ShipHalfExtent,
		Wraps:   true,
	})
	w.emit(ShipSpawned{Pos: core.Vec2{}})
	return nil
}

func (w *World) spawnShipLogged() {
	if err := w.spawnShip(); err != nil {
		w.log.Warn("ship spawn ignored", "err", err)
	}
}

func (w *World) spawnBullet(fire FireIntent) {
	// No ship means nobody pulled the trigger
	if _, ship := w.arena.First(KindShip); ship == nil {
		return
	}
	w.arena.Spawn(Entity{
		Kind:    KindBullet,
		Pos:     fire.Origin,
		Origin:  fire.Origin,
		Heading: fire.Heading.Normalize(),
		Half:    w.cfg.Collision.BulletHalfExtent,
	})
	w.emit(BulletFired{Origin: fire.Origin, Heading: fire.Heading})
}
