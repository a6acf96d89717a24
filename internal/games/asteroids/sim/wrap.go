package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Viewport is the visible world area, centred on the origin.
type Viewport struct {
	HalfW, HalfH float64
}

// ViewportFromCells converts a terminal size into world half extents.
func ViewportFromCells(cols, rows int, cellW, cellH float64) Viewport {
	return Viewport{
		HalfW: float64(cols) * cellW / 2,
		HalfH: float64(rows) * cellH / 2,
	}
}

// Contains reports whether p lies inside the closed viewport bounds.
func (vp Viewport) Contains(p core.Vec2) bool {
	return p.X >= -vp.HalfW && p.X <= vp.HalfW && p.Y >= -vp.HalfH && p.Y <= vp.HalfH
}

// WrapPosition folds p back into the viewport.
// Crossing a vertical edge also mirrors y and crossing a horizontal edge
// mirrors x, so objects re-enter on the diagonally opposite side.
// The four checks run in this order and each sees the previous result.
func WrapPosition(p core.Vec2, vp Viewport) core.Vec2 {
	hw, hh := vp.HalfW, vp.HalfH
	if p.X > hw {
		p = core.V(p.X-2*hw, -p.Y)
	}
	if p.X < -hw {
		p = core.V(p.X+2*hw, -p.Y)
	}
	if p.Y > hh {
		p = core.V(-p.X, p.Y-2*hh)
	}
	if p.Y < -hh {
		p = core.V(-p.X, p.Y+2*hh)
	}
	return p
}

func (w *World) wrap() {
	w.arena.Each(func(_ Handle, e *Entity) {
		if e.Wraps {
			e.Pos = WrapPosition(e.Pos, w.vp)
		}
	})
}
