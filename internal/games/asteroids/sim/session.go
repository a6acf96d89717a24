package sim

// TopState is the top-level game state.
type TopState uint8

const (
	StateMenu TopState = iota
	StatePlaying
)

func (s TopState) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "menu"
}

// ShipState is the ship sub-state, meaningful only while Playing.
type ShipState uint8

const (
	ShipFlying ShipState = iota
	ShipDown
)

func (s ShipState) String() string {
	if s == ShipDown {
		return "destroyed"
	}
	return "flying"
}

// WaveState is the wave sub-state, meaningful only while Playing.
type WaveState uint8

const (
	WaveFlying WaveState = iota
	WaveDone
)

func (s WaveState) String() string {
	if s == WaveDone {
		return "cleared"
	}
	return "flying"
}

// Session holds the nested state machine.
type Session struct {
	Top  TopState
	Ship ShipState
	Wave WaveState
}

// Trigger drives a state transition.
type Trigger uint8

const (
	TriggerStart Trigger = iota + 1
	TriggerShipHit
	TriggerShipRespawnElapsed
	TriggerWaveCleared
	TriggerWaveRespawnElapsed
	TriggerGameOver
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerShipHit:
		return "ship_hit"
	case TriggerShipRespawnElapsed:
		return "ship_respawn_elapsed"
	case TriggerWaveCleared:
		return "wave_cleared"
	case TriggerWaveRespawnElapsed:
		return "wave_respawn_elapsed"
	case TriggerGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type machine uint8

const (
	machineTop machine = iota
	machineShip
	machineWave
)

type transitionKey struct {
	machine machine
	from    uint8
	trigger Trigger
}

// transitions is the complete table. Pairs missing from it are ignored.
var transitions = map[transitionKey]func(*World){
	{machineTop, uint8(StateMenu), TriggerStart}:                   (*World).enterPlaying,
	{machineTop, uint8(StatePlaying), TriggerGameOver}:             (*World).enterMenu,
	{machineShip, uint8(ShipFlying), TriggerShipHit}:               (*World).enterShipDestroyed,
	{machineShip, uint8(ShipDown), TriggerShipRespawnElapsed}:      (*World).enterShipFlying,
	{machineWave, uint8(WaveFlying), TriggerWaveCleared}:           (*World).enterWaveCleared,
	{machineWave, uint8(WaveDone), TriggerWaveRespawnElapsed}:      (*World).enterWaveFlying,
}

// key returns the table key for t given the current session,
// or false when the owning machine is inactive.
func (s Session) key(t Trigger) (transitionKey, bool) {
	switch t {
	case TriggerStart, TriggerGameOver:
		return transitionKey{machineTop, uint8(s.Top), t}, true
	case TriggerShipHit, TriggerShipRespawnElapsed:
		if s.Top != StatePlaying {
			return transitionKey{}, false
		}
		return transitionKey{machineShip, uint8(s.Ship), t}, true
	case TriggerWaveCleared, TriggerWaveRespawnElapsed:
		if s.Top != StatePlaying {
			return transitionKey{}, false
		}
		return transitionKey{machineWave, uint8(s.Wave), t}, true
	}
	return transitionKey{}, false
}

// fire applies t if the table has an entry for the current state.
func (w *World) fire(t Trigger) bool {
	k, ok := w.session.key(t)
	if !ok {
		w.log.Debug("trigger ignored", "trigger", t, "state", w.session.Top)
		return false
	}
	apply, ok := transitions[k]
	if !ok {
		w.log.Debug("trigger ignored", "trigger", t, "state", w.session.Top)
		return false
	}
	apply(w)
	return true
}

func (w *World) enterPlaying() {
	if err := w.spawnPlayer(); err != nil {
		w.log.Warn("start ignored", "err", err)
		return
	}
	w.session = Session{Top: StatePlaying, Ship: ShipFlying, Wave: WaveFlying}
	w.emit(GameStarted{Lives: w.player.Lives})
	w.spawnWave()
	w.spawnShipLogged()
}

func (w *World) enterMenu() {
	for _, k := range []Kind{KindShip, KindAsteroid, KindBullet, KindWreck, KindTimer} {
		w.arena.DespawnKind(k)
	}
	w.player = nil
	w.session = Session{Top: StateMenu}
}

func (w *World) enterShipDestroyed() {
	w.session.Ship = ShipDown
}

func (w *World) enterShipFlying() {
	w.session.Ship = ShipFlying
	w.spawnShipLogged()
}

func (w *World) enterWaveCleared() {
	w.session.Wave = WaveDone
	w.emit(WaveCleared{})
	w.startTimer(TimerWaveRespawn, w.cfg.Asteroids.RespawnDelaySecs, Handle{})
	w.log.Debug("wave cleared", "tick", w.tick)
}

func (w *World) enterWaveFlying() {
	w.session.Wave = WaveFlying
	w.spawnWave()
}
