package climb

import (
	"math/rand"

	"github.com/vovakirdan/turbine-climb/internal/config"
	"github.com/vovakirdan/turbine-climb/internal/core"
)

// Phase is the session's lifecycle state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the climb.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Events reports what happened during one tick.
type Events struct {
	Spawned      int
	Culled       int
	Hits         int
	PhaseChanged bool
}

// Session is one climb from the bottom of the turbine to the top or to the
// last life. Tick is the only mutator during play.
type Session struct {
	cfg      config.ClimbConfig
	player   *Player
	pool     *ActorPool
	world    *WorldScroll
	progress *ProgressTracker

	phase     Phase
	prevLeft  bool
	prevRight bool
	elapsed   float64 // ms spent Running
	ticks     uint64
}

// NewSession creates a running session. All randomness is drawn from rng.
func NewSession(cfg config.ClimbConfig, rng *rand.Rand) *Session {
	return &Session{
		cfg:      cfg,
		player:   NewPlayer(&cfg),
		pool:     NewActorPool(&cfg, rng),
		world:    NewWorldScroll(&cfg, rng),
		progress: NewProgressTracker(cfg.Progress),
		phase:    PhaseRunning,
	}
}

// Tick advances the session by dt milliseconds. Negative or non-finite dt is
// treated as zero. Ticks outside the Running phase do nothing.
func (s *Session) Tick(in Intent, dt float64) Events {
	var ev Events
	if !core.Finite(dt) || dt < 0 {
		dt = 0
	}
	if s.phase != PhaseRunning {
		return ev
	}
	s.ticks++
	s.elapsed += dt

	ev.Spawned = s.pool.Spawn(dt)

	s.applyIntent(in, dt)
	s.player.Tick(dt)

	if s.progress.Reached() {
		s.win()
		ev.PhaseChanged = true
		return ev
	}

	ev.Culled = s.pool.Advance(dt)

	out := Resolve(s.player, s.pool)
	ev.Hits = out.Hits
	if out.Lost {
		s.phase = PhaseLost
		s.player.Animate(0, false)
		ev.PhaseChanged = true
	}
	return ev
}

// applyIntent moves the player and the world and accrues progress.
func (s *Session) applyIntent(in Intent, dt float64) {
	left := in.SwitchLeft && !s.prevLeft
	right := in.SwitchRight && !s.prevRight
	s.prevLeft = in.SwitchLeft
	s.prevRight = in.SwitchRight

	if left {
		s.player.SwitchLane(0)
	}
	if right {
		s.player.SwitchLane(1)
	}

	step := s.cfg.Player.ClimbSpeed * dt / 1000
	if in.Up {
		if scroll := s.player.ClimbUp(step); scroll > 0 {
			s.world.Scroll(scroll, s.pool)
		}
	}
	if in.Down {
		s.player.ClimbDown(step)
	}
	s.player.Animate(dt, in.Up || in.Down)

	if in.Up {
		s.progress.Tick(dt)
	}
}

// win places the climber on top of the turbine.
func (s *Session) win() {
	s.phase = PhaseWon
	// The goal is far below the field by now; bring it back under the climber.
	summitY := s.cfg.Player.ClimbThresholdY
	s.world.SettleGoal(summitY + s.cfg.Goal.SummitOffset)
	s.player.PlaceAt(s.cfg.Field.Width/2, summitY)
	s.player.Animate(0, false)
}

// Reset starts a new climb. It is accepted only after the climb has ended
// and reports whether the reset happened.
func (s *Session) Reset() bool {
	if !s.phase.Terminal() {
		return false
	}
	s.player.Reset()
	s.pool.Clear()
	s.world.Reset()
	s.progress.Reset()
	s.prevLeft = false
	s.prevRight = false
	s.elapsed = 0
	s.ticks = 0
	s.phase = PhaseRunning
	return true
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Lives returns the player's remaining lives.
func (s *Session) Lives() int { return s.player.Lives }

// HeightRemaining returns the height still to climb, in feet.
func (s *Session) HeightRemaining() float64 { return s.progress.Remaining() }

// Climbed returns the height climbed so far, in feet.
func (s *Session) Climbed() float64 { return s.progress.Climbed() }

// ScrollOffset returns the total world scroll since the climb started.
func (s *Session) ScrollOffset() float64 { return s.world.Offset() }

// Elapsed returns the milliseconds spent in the Running phase.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Ticks returns the number of Running ticks processed.
func (s *Session) Ticks() uint64 { return s.ticks }

// Player exposes the climber for inspection.
func (s *Session) Player() *Player { return s.player }

// Pool exposes the actor pool for inspection.
func (s *Session) Pool() *ActorPool { return s.pool }

// World exposes the scenery for inspection.
func (s *Session) World() *WorldScroll { return s.world }
