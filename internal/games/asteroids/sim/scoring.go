package sim

// Player is the score and lives aggregate. It exists only while Playing.
type Player struct {
	Score int
	Lives int
}

func (w *World) spawnPlayer() error {
	if w.player != nil {
		return ErrSingletonExists
	}
	w.player = &Player{Lives: w.cfg.Player.Lives}
	return nil
}

func (w *World) points(size Size) int {
	switch size {
	case SizeLarge:
		return w.cfg.Scoring.Large
	case SizeMedium:
		return w.cfg.Scoring.Medium
	case SizeSmall:
		return w.cfg.Scoring.Small
	default:
		return 0
	}
}

// score applies the tick's destroyed asteroids and ship hit to the player.
// It reports whether the game is over.
func (w *World) score(out tickOutcome) bool {
	p := w.player
	if p == nil {
		return false
	}

	delta := 0
	for _, size := range out.destroyed {
		delta += w.points(size)
	}
	if delta > 0 {
		p.Score += delta
		w.emit(ScoreChanged{Score: p.Score, Delta: delta})
	}

	// Only one ship exists, so a tick costs at most one life
	if !out.shipHit || p.Lives == 0 {
		return false
	}
	p.Lives--
	w.emit(LivesChanged{Lives: p.Lives})
	if p.Lives > 0 {
		return false
	}

	w.emit(GameOver{Score: p.Score})
	w.log.Info("game over", "score", p.Score, "tick", w.tick)
	return true
}
