package climb

import (
	"github.com/vovakirdan/turbine-climb/internal/config"
	"github.com/vovakirdan/turbine-climb/internal/core"
)

// Intent is the player's input for one tick. Up and Down are level-triggered,
// lane switches fire on the tick the flag goes from false to true.
type Intent struct {
	Up          bool
	Down        bool
	SwitchLeft  bool
	SwitchRight bool
}

// Player is the climber. X and Y are the hit-box centre in world units.
type Player struct {
	X, Y     float64
	Lane     int
	Lives    int
	Climbing bool // Up or Down held this tick
	Frame    int  // Climb animation frame, 0 or 1

	animTimer float64 // ms
	flash     float64 // ms of hit flash remaining

	cfg   config.PlayerConfig
	lanes []float64
	field config.FieldConfig
}

// NewPlayer creates a player at the start lane with full lives.
func NewPlayer(cfg *config.ClimbConfig) *Player {
	p := &Player{
		cfg:   cfg.Player,
		lanes: append([]float64(nil), cfg.Lanes...),
		field: cfg.Field,
	}
	p.Reset()
	return p
}

// Reset restores the start position, lives and animation state.
func (p *Player) Reset() {
	p.Lane = p.cfg.StartLane
	p.X = p.lanes[p.Lane]
	p.Y = p.cfg.StartY
	p.Lives = p.cfg.Lives
	p.Climbing = false
	p.Frame = 0
	p.animTimer = 0
	p.flash = 0
}

// SwitchLane snaps the player onto the given ladder. Y is unchanged.
func (p *Player) SwitchLane(lane int) {
	if lane < 0 || lane >= len(p.lanes) {
		return
	}
	p.Lane = lane
	p.X = p.lanes[lane]
}

// ClimbUp moves the player up by dist while below the scroll threshold.
// Once the threshold is reached the player stays put and the distance is
// returned so the world can scroll instead.
func (p *Player) ClimbUp(dist float64) float64 {
	if p.Y > p.cfg.ClimbThresholdY {
		p.Y -= dist
		p.clamp()
		return 0
	}
	return dist
}

// ClimbDown moves the player down by dist, stopping at the bottom edge.
func (p *Player) ClimbDown(dist float64) {
	p.Y += dist
	p.clamp()
}

// Animate toggles the climb frame every AnimFrameMs while moving and
// returns to the idle frame otherwise.
func (p *Player) Animate(dt float64, moving bool) {
	p.Climbing = moving
	if !moving {
		p.animTimer = 0
		p.Frame = 0
		return
	}
	p.animTimer += dt
	if p.cfg.AnimFrameMs > 0 && p.animTimer >= p.cfg.AnimFrameMs {
		p.animTimer = 0
		p.Frame = 1 - p.Frame
	}
}

// Hit removes one life and starts the hit flash. Lives never go below zero.
func (p *Player) Hit() {
	if p.Lives > 0 {
		p.Lives--
	}
	p.flash = p.cfg.HitFlashMs
}

// Tick counts down the hit flash.
func (p *Player) Tick(dt float64) {
	if p.flash > 0 {
		p.flash -= dt
		if p.flash < 0 {
			p.flash = 0
		}
	}
}

// Flashing reports whether the hit flash is visible.
func (p *Player) Flashing() bool {
	return p.flash > 0
}

// PlaceAt moves the player, keeping it inside the field.
func (p *Player) PlaceAt(x, y float64) {
	p.X = x
	p.Y = y
	p.clamp()
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.Box {
	return core.BoxAround(p.X, p.Y, p.cfg.HitboxW, p.cfg.HitboxH)
}

func (p *Player) clamp() {
	if !core.Finite(p.X) || !core.Finite(p.Y) {
		p.X = p.lanes[p.cfg.StartLane]
		p.Y = p.cfg.StartY
	}
	halfW := p.cfg.HitboxW / 2
	halfH := p.cfg.HitboxH / 2
	p.X = core.ClampF(p.X, halfW, p.field.Width-halfW)
	p.Y = core.ClampF(p.Y, halfH, p.field.Height-halfH)
}
