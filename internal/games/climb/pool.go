package climb

import (
	"math/rand"

	"github.com/vovakirdan/turbine-climb/internal/config"
	"github.com/vovakirdan/turbine-climb/internal/core"
)

// SpawnTimer fires once per Interval of accumulated time.
type SpawnTimer struct {
	Interval float64 // ms
	elapsed  float64
}

// Advance adds dt milliseconds and returns how many times the timer fired.
func (t *SpawnTimer) Advance(dt float64) int {
	if t.Interval <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.Interval {
		t.elapsed -= t.Interval
		fired++
	}
	return fired
}

// Reset discards accumulated time.
func (t *SpawnTimer) Reset() {
	t.elapsed = 0
}

// ActorPool owns the live birds: it spawns them on two timers, moves them,
// and removes them once they leave the field or hit the player.
type ActorPool struct {
	actors    []Actor
	rng       *rand.Rand
	field     config.FieldConfig
	falling   config.FallingConfig
	flying    config.FlyingConfig
	fallTimer SpawnTimer
	flyTimer  SpawnTimer
	nextID    uint64
}

// NewActorPool creates an empty pool drawing randomness from rng.
func NewActorPool(cfg *config.ClimbConfig, rng *rand.Rand) *ActorPool {
	return &ActorPool{
		actors:    make([]Actor, 0, 16),
		rng:       rng,
		field:     cfg.Field,
		falling:   cfg.Falling,
		flying:    cfg.Flying,
		fallTimer: SpawnTimer{Interval: cfg.Falling.Spawn.Interval()},
		flyTimer:  SpawnTimer{Interval: cfg.Flying.Spawn.Interval()},
	}
}

// Spawn advances both spawn timers by dt and creates one actor per firing.
// Returns the number of actors created.
func (p *ActorPool) Spawn(dt float64) int {
	spawned := 0
	for range p.fallTimer.Advance(dt) {
		p.SpawnFalling()
		spawned++
	}
	for range p.flyTimer.Advance(dt) {
		p.SpawnFlying()
		spawned++
	}
	return spawned
}

// SpawnFalling adds a bird above the top edge at a random x.
func (p *ActorPool) SpawnFalling() *Actor {
	f := p.falling
	vy := between(p.rng, f.MinVY, f.MaxVY)
	x := between(p.rng, f.MarginX, int(p.field.Width)-f.MarginX)
	spin := f.SpinMin + p.rng.Float64()*(f.SpinMax-f.SpinMin)

	return p.Add(Actor{
		Kind: ActorFalling,
		X:    float64(x),
		Y:    f.SpawnY,
		VY:   float64(vy),
		Size: f.Size,
		Spin: spin,
	})
}

// SpawnFlying adds a bird just outside the left or right edge, heading across.
func (p *ActorPool) SpawnFlying() *Actor {
	f := p.flying
	fromLeft := p.rng.Float64() < 0.5
	y := between(p.rng, f.BandMinY, f.BandMaxY)
	speed := float64(between(p.rng, f.MinVX, f.MaxVX))

	x := p.field.Width + f.SpawnMargin
	vx := -speed
	if fromLeft {
		x = -f.SpawnMargin
		vx = speed
	}

	return p.Add(Actor{
		Kind:  ActorFlying,
		X:     x,
		Y:     float64(y),
		VX:    vx,
		Size:  f.Size,
		Frame: 1,
	})
}

// Add inserts an actor, assigning it the next ID, and returns the stored copy.
// The pointer is valid until the pool is next modified.
func (p *ActorPool) Add(a Actor) *Actor {
	p.nextID++
	a.ID = p.nextID
	a.destroyed = false
	if a.Size <= 0 {
		a.Size = p.falling.Size
	}
	p.actors = append(p.actors, a)
	return &p.actors[len(p.actors)-1]
}

// Advance moves every actor by dt milliseconds and culls those that left the field.
// Returns the number of actors removed.
func (p *ActorPool) Advance(dt float64) int {
	for i := range p.actors {
		p.actors[i].update(dt, p.flying.FrameMs)
	}
	return p.cull()
}

// Scroll shifts every actor down by amount and drops those pushed past the bottom edge.
// Returns the number of actors removed.
func (p *ActorPool) Scroll(amount float64) int {
	for i := range p.actors {
		p.actors[i].Y += amount
	}
	return p.cull()
}

// cull destroys out-of-field actors and compacts the slice.
func (p *ActorPool) cull() int {
	for i := range p.actors {
		if p.outOfField(&p.actors[i]) {
			p.actors[i].destroy()
		}
	}
	return p.compact()
}

// outOfField reports whether a has left the field in its direction of travel.
// Anything past the bottom edge is gone regardless of kind, since scrolling
// can carry flying birds there too.
func (p *ActorPool) outOfField(a *Actor) bool {
	if !core.Finite(a.X) || !core.Finite(a.Y) {
		return true
	}
	if a.Y > p.field.Height+p.falling.CullMargin {
		return true
	}
	if a.Kind == ActorFlying {
		return a.X < -p.flying.CullMargin || a.X > p.field.Width+p.flying.CullMargin
	}
	return false
}

// compact removes destroyed actors, preserving spawn order.
func (p *ActorPool) compact() int {
	live := p.actors[:0]
	removed := 0
	for _, a := range p.actors {
		if a.destroyed {
			removed++
			continue
		}
		live = append(live, a)
	}
	// Zero the tail so dropped actors do not linger in the backing array
	for i := len(live); i < len(p.actors); i++ {
		p.actors[i] = Actor{}
	}
	p.actors = live
	return removed
}

// Remove destroys the actor with the given ID. Reports whether it was found.
func (p *ActorPool) Remove(id uint64) bool {
	for i := range p.actors {
		if p.actors[i].ID == id {
			p.actors[i].destroy()
			p.compact()
			return true
		}
	}
	return false
}

// Actors returns the live actors in spawn order.
// Callers must not retain the slice across pool updates.
func (p *ActorPool) Actors() []Actor {
	return p.actors
}

// Len returns the number of live actors.
func (p *ActorPool) Len() int {
	return len(p.actors)
}

// Clear removes all actors and restarts both spawn timers.
func (p *ActorPool) Clear() {
	for i := range p.actors {
		p.actors[i] = Actor{}
	}
	p.actors = p.actors[:0]
	p.fallTimer.Reset()
	p.flyTimer.Reset()
}

// between returns a uniformly distributed integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
