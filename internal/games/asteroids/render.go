package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Visual characters for rendering
const (
	BulletChar = '•'
	WreckChar  = 'X'
	FlameChar  = '·'
	HintChar   = '.'
	LifeChar   = '♥'
)

// Ship glyphs by octant, counter-clockwise from +x
var shipGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Hint arrows are drawn this many ticks of travel long
const hintLength = 100

// Sparks live this many ticks after a bang
const sparkTicks = 12

type spark struct {
	pos  core.Vec2
	size sim.Size
	ttl  int
}

func (g *Game) addSpark(pos core.Vec2, size sim.Size) {
	g.sparks = append(g.sparks, spark{pos: pos, size: size, ttl: sparkTicks})
}

func (g *Game) ageSparks() {
	live := g.sparks[:0]
	for _, s := range g.sparks {
		s.ttl--
		if s.ttl > 0 {
			live = append(live, s)
		}
	}
	g.sparks = live
}

// toCell maps a y-up world position centred on the origin to a screen cell.
// ok is false when p lies outside the viewport; the cell is then clamped to
// the nearest border.
func (g *Game) toCell(p core.Vec2, dst *core.Screen) (x, y int, ok bool) {
	x = int(math.Floor((p.X + g.view.HalfW) / g.cfg.Viewport.CellWidth))
	y = int(math.Floor((g.view.HalfH - p.Y) / g.cfg.Viewport.CellHeight))
	return core.Clamp(x, 0, dst.Width()-1), core.Clamp(y, 0, dst.Height()-1), g.view.Contains(p)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.world.Snapshot()

	if g.hints {
		g.renderHints(dst, &snap)
	}
	g.renderEntities(dst, snap.Entities)
	g.renderSparks(dst)
	g.renderHUD(dst, &snap)
	g.renderOverlay(dst, &snap)
}

// renderEntities draws every entity inside the viewport. Bullets do not wrap
// and keep flying past the edges until they expire.
func (g *Game) renderEntities(dst *core.Screen, entities []sim.EntityView) {
	for _, e := range entities {
		if !g.view.Contains(e.Pos) {
			continue
		}
		switch e.Kind {
		case sim.KindAsteroid:
			g.renderAsteroid(dst, e)
		case sim.KindBullet:
			x, y, _ := g.toCell(e.Pos, dst)
			dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
		case sim.KindWreck:
			x, y, _ := g.toCell(e.Pos, dst)
			dst.SetColored(x, y, WreckChar, core.ColorRed)
		case sim.KindShip:
			g.renderShip(dst, e)
		}
	}
}

func (g *Game) renderAsteroid(dst *core.Screen, e sim.EntityView) {
	var glyph rune
	var color core.Color
	switch e.Size {
	case sim.SizeLarge:
		glyph, color = '@', core.ColorGray
	case sim.SizeMedium:
		glyph, color = 'O', core.ColorWhite
	default:
		glyph, color = 'o', core.ColorYellow
	}

	cx, cy, _ := g.toCell(e.Pos, dst)
	rx := e.Radius / g.cfg.Viewport.CellWidth
	ry := e.Radius / g.cfg.Viewport.CellHeight
	if rx < 1.5 {
		dst.SetColored(cx, cy, glyph, color)
		return
	}

	// Outline only; the screen wraps nothing, edges just clip
	steps := int(rx * 6)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(rx*math.Cos(a)))
		y := cy + int(math.Round(ry*math.Sin(a)))
		dst.SetColored(x, y, glyph, color)
	}
}

func (g *Game) renderShip(dst *core.Screen, e sim.EntityView) {
	x, y, _ := g.toCell(e.Pos, dst)
	dir := sim.Facing(e.Angle)

	if g.thrusting() {
		if fx, fy, ok := g.toCell(e.Pos.Sub(dir.Scale(g.cfg.Viewport.CellHeight)), dst); ok {
			dst.SetColored(fx, fy, FlameChar, core.ColorOrange)
		}
	}

	a := math.Atan2(dir.Y, dir.X)
	octant := int(math.Round(a/(math.Pi/4))) & 7
	dst.SetColored(x, y, shipGlyphs[octant], core.ColorBrightCyan)
}

func (g *Game) thrusting() bool {
	for _, c := range g.cues {
		if c == core.CueThrust {
			return true
		}
	}
	return false
}

// renderHints draws the travel direction of every asteroid.
func (g *Game) renderHints(dst *core.Screen, snap *sim.Snapshot) {
	for _, e := range snap.Entities {
		if e.Kind != sim.KindAsteroid || e.Vel.IsZero() {
			continue
		}
		x0, y0, _ := g.toCell(e.Pos, dst)
		x1, y1, _ := g.toCell(e.Pos.Add(e.Vel.Scale(hintLength)), dst)
		dst.DrawLine(x0, y0, x1, y1, HintChar, core.ColorGray)
	}
}

func (g *Game) renderSparks(dst *core.Screen) {
	for _, s := range g.sparks {
		reach := float64(sparkTicks-s.ttl+1) * 4
		if s.size == sim.SizeLarge {
			reach *= 2
		}
		glyph := '*'
		if s.ttl < sparkTicks/2 {
			glyph = '+'
		}
		for i := range 8 {
			a := float64(i) * math.Pi / 4
			if x, y, ok := g.toCell(s.pos.Add(core.V(math.Cos(a), math.Sin(a)).Scale(reach)), dst); ok {
				dst.SetColored(x, y, glyph, core.ColorBrightRed)
			}
		}
	}
}

// renderHUD draws the score, lives and wave counter.
func (g *Game) renderHUD(dst *core.Screen, snap *sim.Snapshot) {
	if !snap.Playing {
		return
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	lives := "Lives: " + strings.Repeat(string(LifeChar), snap.Lives)
	dst.DrawTextColored((dst.Width()-len([]rune(lives)))/2, 0, lives, core.ColorRed)

	wave := fmt.Sprintf("Wave: %d", g.waves+1)
	dst.DrawText(dst.Width()-len(wave)-1, 0, wave)

	if snap.Session.Ship == sim.ShipDown {
		dst.DrawTextCentered(dst.Height()-1, "Ship destroyed - respawning...")
	} else if snap.Session.Wave == sim.WaveDone {
		dst.DrawTextCentered(dst.Height()-1, "Wave cleared!")
	}
}

// renderOverlay draws the menu and pause boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap *sim.Snapshot) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case !snap.Playing && g.gameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  ENTER to play again", g.finalScore))
	case !snap.Playing:
		g.drawCenteredBox(dst, strings.ToUpper(g.Title()), "Press ENTER to start")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
