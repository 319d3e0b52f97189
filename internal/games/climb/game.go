// Package climb implements Turbine Climb, a vertical climbing game.
// The climber scales a wind turbine on two ladders while dodging falling and
// flying birds. Holding up for long enough reaches the top; three hits end
// the climb.
package climb

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/turbine-climb/internal/config"
	"github.com/vovakirdan/turbine-climb/internal/core"
	"github.com/vovakirdan/turbine-climb/internal/registry"
)

// Scoring weights.
const (
	PointsPerFoot = 10
	PointsPerLife = 1000
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by registry-created games.
func SetConfigPath(path string) {
	configPath = path
}

// Result summarises a climb for the score history.
type Result struct {
	Outcome         Phase
	Score           int
	HeightRemaining float64
	Lives           int
	Elapsed         time.Duration
	Ticks           uint64 // Simulation steps the climb took
}

// Game adapts a Session to the arcade platform.
type Game struct {
	cfg     *config.ClimbConfig
	runtime core.RuntimeConfig
	session *Session
}

// New creates a game with an explicit configuration.
func New(cfg config.ClimbConfig) *Game {
	return &Game{cfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "climb"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Turbine Climb"
}

// Reset builds a fresh session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.cfg == nil {
		cfg, err := config.LoadClimb(configPath)
		if err != nil {
			cfg = config.DefaultClimbConfig()
		}
		g.cfg = &cfg
	}
	g.session = NewSession(*g.cfg, rand.New(rand.NewSource(runtime.Seed)))
}

// Step advances the climb by the frame's delta, or by one fixed tick when
// the frame carries none.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ensureSession()

	if in.Has(core.ActionRestart) {
		g.session.Reset()
	}

	dt := in.Delta
	if dt == 0 {
		dt = g.runtime.TickInterval()
	}
	g.session.Tick(IntentFromFrame(in), float64(dt)/float64(time.Millisecond))

	return core.StepResult{State: g.State()}
}

// IntentFromFrame maps held platform actions to a climb intent.
func IntentFromFrame(in core.InputFrame) Intent {
	return Intent{
		Up:          in.Has(core.ActionUp),
		Down:        in.Has(core.ActionDown),
		SwitchLeft:  in.Has(core.ActionLeft),
		SwitchRight: in.Has(core.ActionRight),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.ensureSession()
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.score(),
		GameOver: phase.Terminal(),
		Won:      phase == PhaseWon,
	}
}

// Result returns the summary of the current climb.
func (g *Game) Result() Result {
	g.ensureSession()
	return Result{
		Outcome:         g.session.Phase(),
		Score:           g.score(),
		HeightRemaining: g.session.HeightRemaining(),
		Lives:           g.session.Lives(),
		Elapsed:         time.Duration(g.session.Elapsed() * float64(time.Millisecond)),
		Ticks:           g.session.Ticks(),
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	g.ensureSession()
	return g.session
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "↑/W: Climb | ↓/S: Descend | ←→/AD: Switch ladder | R: Restart | Q: Quit"
}

func (g *Game) score() int {
	score := int(math.Round(g.session.Climbed() * PointsPerFoot))
	if g.session.Phase() == PhaseWon {
		score += g.session.Lives() * PointsPerLife
	}
	return score
}

func (g *Game) ensureSession() {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
}

// Register the game with the registry
func init() {
	registry.Register("climb", "Turbine Climb", func() registry.Game {
		return &Game{}
	})
}
