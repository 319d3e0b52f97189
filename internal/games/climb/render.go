package climb

import (
	"fmt"
	"math"

	"github.com/vovakirdan/turbine-climb/internal/core"
)

// Minimum terminal size for a playable view.
const (
	minScreenW = 24
	minScreenH = 12
	hudHeight  = 1
	rungEvery  = 40.0 // world units between ladder rungs
)

// Visual characters for rendering
const (
	CloudChar     = '░'
	RailChar      = '│'
	RungChar      = '─'
	TurbineChar   = '█'
	FallingChar   = '▼'
	HeadChar      = '●'
	BodyCharLeft  = '┤'
	BodyCharRight = '├'
)

var (
	wingsRight = [2]rune{'>', '»'}
	wingsLeft  = [2]rune{'<', '«'}
)

// viewport maps world coordinates onto the screen area below the HUD.
type viewport struct {
	fieldW, fieldH float64
	w, top, rows   int
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.fieldW * float64(v.w)))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y/v.fieldH*float64(v.rows)))
}

func (v viewport) width(w float64) int {
	return max(1, int(math.Round(w/v.fieldW*float64(v.w))))
}

// Render draws the current climb to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.ensureSession()
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	vp := viewport{
		fieldW: snap.Field.Width,
		fieldH: snap.Field.Height,
		w:      w,
		top:    hudHeight,
		rows:   h - hudHeight,
	}

	g.renderClouds(dst, vp, snap.Clouds)
	g.renderLadders(dst, vp, snap.Lanes)
	g.renderGoal(dst, vp, snap.GoalY)
	g.renderActors(dst, vp, snap.Actors)
	g.renderPlayer(dst, vp, snap.Player)
	g.renderHUD(dst, snap)

	switch snap.Phase {
	case PhaseWon:
		g.drawOverlay(dst, "You Reached the Top!",
			fmt.Sprintf("Score: %d", g.score()), "Press R to restart")
	case PhaseLost:
		g.drawOverlay(dst, "GAME OVER",
			fmt.Sprintf("Height left: %.1f ft", snap.HeightRemaining), "Press R to restart")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderClouds(dst *core.Screen, vp viewport, clouds []Cloud) {
	for _, c := range clouds {
		cw := vp.width(c.W)
		x := vp.col(c.X) - cw/2
		y := vp.row(c.Y)
		if y < vp.top {
			continue
		}
		dst.DrawHLine(x, y, cw, CloudChar, core.ColorBrightWhite)
	}
}

// renderLadders draws two rails per lane with rungs at fixed world intervals.
func (g *Game) renderLadders(dst *core.Screen, vp viewport, lanes []float64) {
	for _, lane := range lanes {
		cx := vp.col(lane)
		dst.DrawVLine(cx-1, vp.top, vp.rows, RailChar, core.ColorWhite)
		dst.DrawVLine(cx+1, vp.top, vp.rows, RailChar, core.ColorWhite)
		for ry := rungEvery; ry < vp.fieldH; ry += rungEvery {
			dst.SetWithColor(cx, vp.row(ry), RungChar, core.ColorGray)
		}
	}
}

// renderGoal draws the turbine nacelle once it scrolls into view.
func (g *Game) renderGoal(dst *core.Screen, vp viewport, goalY float64) {
	const nacelleH = 70.0
	top := vp.row(goalY - nacelleH/2)
	bottom := vp.row(goalY + nacelleH/2)
	if bottom < vp.top {
		return
	}
	top = max(top, vp.top)
	dst.DrawRectColor(core.NewRect(0, top, vp.w, max(1, bottom-top)), TurbineChar, core.ColorGray)
}

func (g *Game) renderActors(dst *core.Screen, vp viewport, actors []ActorView) {
	for _, a := range actors {
		x, y := vp.col(a.X), vp.row(a.Y)
		if y < vp.top {
			continue
		}
		switch a.Kind {
		case ActorFalling:
			dst.SetWithColor(x, y, FallingChar, core.ColorBrown)
		case ActorFlying:
			frame := max(0, a.Frame-1) % 2
			glyph := wingsLeft[frame]
			if a.VX > 0 {
				glyph = wingsRight[frame]
			}
			dst.SetWithColor(x, y, glyph, core.ColorOrange)
		}
	}
}

// renderPlayer draws the climber as a head above a two-frame body.
func (g *Game) renderPlayer(dst *core.Screen, vp viewport, p PlayerView) {
	color := core.ColorBlue
	if p.Flashing {
		color = core.ColorBrightRed
	}
	body := BodyCharLeft
	if p.Frame == 1 {
		body = BodyCharRight
	}

	x, y := vp.col(p.X), vp.row(p.Y)
	if y-1 >= vp.top {
		dst.SetWithColor(x, y-1, HeadChar, color)
	}
	dst.SetWithColor(x, y, body, color)
}

// renderHUD draws height remaining and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	height := fmt.Sprintf("Height: %.1f ft", snap.HeightRemaining)
	dst.DrawTextColor(1, 0, height, core.ColorYellow)

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawTextColor(dst.Width()-len(lives)-1, 0, lives, core.ColorRed)
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
