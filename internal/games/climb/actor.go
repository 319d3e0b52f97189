package climb

import (
	"github.com/vovakirdan/turbine-climb/internal/core"
)

// ActorKind distinguishes the two bird variants.
type ActorKind int

const (
	ActorFalling ActorKind = iota // Drops straight down from above the field
	ActorFlying                   // Crosses the field horizontally
)

// String returns a human-readable name for the kind.
func (k ActorKind) String() string {
	switch k {
	case ActorFalling:
		return "falling"
	case ActorFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Actor is a bird obstacle. Positions are hit-box centres in world units,
// velocities are units per second.
type Actor struct {
	ID     uint64 // Spawn sequence number, unique within a session
	Kind   ActorKind
	X, Y   float64
	VX, VY float64
	Size   float64 // Square hit-box edge length

	// Presentation-only state, never read by the simulation.
	Spin       float64 // Degrees per second
	Angle      float64 // Degrees
	Frame      int     // Wing frame for flying birds (1 or 2)
	frameTimer float64 // ms

	destroyed bool
}

// Rect returns the actor's collision box.
func (a *Actor) Rect() core.Box {
	return core.BoxAround(a.X, a.Y, a.Size, a.Size)
}

// Destroyed reports whether the actor has been removed from play.
func (a *Actor) Destroyed() bool {
	return a.destroyed
}

func (a *Actor) destroy() {
	a.destroyed = true
}

// update integrates position over dt milliseconds and advances cosmetic timers.
func (a *Actor) update(dt, wingFrameMs float64) {
	secs := dt / 1000
	a.X += a.VX * secs
	a.Y += a.VY * secs

	switch a.Kind {
	case ActorFalling:
		a.Angle += a.Spin * secs
	case ActorFlying:
		a.frameTimer += dt
		if wingFrameMs > 0 && a.frameTimer >= wingFrameMs {
			a.frameTimer = 0
			if a.Frame == 1 {
				a.Frame = 2
			} else {
				a.Frame = 1
			}
		}
	}
}
