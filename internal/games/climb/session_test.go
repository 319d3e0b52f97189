package climb

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/turbine-climb/internal/config"
)

const frameMs = 16.0

// quietConfig returns the default config with spawning effectively disabled.
func quietConfig() config.ClimbConfig {
	cfg := config.DefaultClimbConfig()
	cfg.Falling.Spawn.BaseIntervalMs = 1e12
	cfg.Flying.Spawn.BaseIntervalMs = 1e12
	return cfg
}

func newQuietSession() *Session {
	return NewSession(quietConfig(), rand.New(rand.NewSource(1)))
}

// hitPlayer places a stationary bird on the player and resolves one tick.
func hitPlayer(s *Session) Events {
	p := s.Player()
	s.Pool().Add(Actor{Kind: ActorFlying, X: p.X, Y: p.Y, Size: 24})
	return s.Tick(Intent{}, 0)
}

func TestNewSessionStartValues(t *testing.T) {
	s := newQuietSession()

	if s.Phase() != PhaseRunning {
		t.Errorf("Phase = %v, want running", s.Phase())
	}
	if s.Lives() != 3 {
		t.Errorf("Lives = %d, want 3", s.Lives())
	}
	if s.HeightRemaining() != 200 {
		t.Errorf("HeightRemaining = %v, want 200", s.HeightRemaining())
	}
	p := s.Player()
	if p.Lane != 0 || p.X != 160 || p.Y != 520 {
		t.Errorf("Player at lane %d (%v,%v), want lane 0 (160,520)", p.Lane, p.X, p.Y)
	}
	if s.World().GoalY() != -300 {
		t.Errorf("GoalY = %v, want -300", s.World().GoalY())
	}
	if s.Pool().Len() != 0 {
		t.Errorf("Pool has %d actors, want 0", s.Pool().Len())
	}
}

func TestHeightDecreasesOnlyWhileUpHeld(t *testing.T) {
	s := newQuietSession()
	rate := 200.0 / 30000.0

	tests := []struct {
		name   string
		intent Intent
		dt     float64
		climbs bool
	}{
		{"up", Intent{Up: true}, frameMs, true},
		{"idle", Intent{}, frameMs, false},
		{"down", Intent{Down: true}, frameMs, false},
		{"up and down", Intent{Up: true, Down: true}, frameMs, true},
		{"lane switch", Intent{SwitchRight: true}, frameMs, false},
		{"long up", Intent{Up: true}, 250, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.HeightRemaining()
			s.Tick(tt.intent, tt.dt)
			want := before
			if tt.climbs {
				want = math.Max(0, before-rate*tt.dt)
			}
			if math.Abs(s.HeightRemaining()-want) > 1e-9 {
				t.Errorf("HeightRemaining = %v, want %v", s.HeightRemaining(), want)
			}
		})
	}
}

func TestInvalidDeltaIsIgnored(t *testing.T) {
	for _, dt := range []float64{-16, math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := newQuietSession()
		y := s.Player().Y
		s.Tick(Intent{Up: true}, dt)

		if s.HeightRemaining() != 200 {
			t.Errorf("dt=%v: HeightRemaining = %v, want 200", dt, s.HeightRemaining())
		}
		if s.Player().Y != y {
			t.Errorf("dt=%v: player moved from %v to %v", dt, y, s.Player().Y)
		}
		if s.Elapsed() != 0 {
			t.Errorf("dt=%v: Elapsed = %v, want 0", dt, s.Elapsed())
		}
	}
}

func TestFullClimbWins(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
	}{
		{"up", Intent{Up: true}},
		{"up while holding down", Intent{Up: true, Down: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuietSession()
			ticks := int(30000 / frameMs)

			for i := 0; i < ticks-1; i++ {
				s.Tick(tt.intent, frameMs)
			}
			if s.Phase() != PhaseRunning {
				t.Fatalf("Phase = %v one tick early, want running", s.Phase())
			}

			ev := s.Tick(tt.intent, frameMs)
			if !ev.PhaseChanged {
				t.Error("final tick did not report a phase change")
			}
			if s.Phase() != PhaseWon {
				t.Fatalf("Phase = %v, want won", s.Phase())
			}
			if s.HeightRemaining() != 0 {
				t.Errorf("HeightRemaining = %v, want 0", s.HeightRemaining())
			}
			if s.Lives() != 3 {
				t.Errorf("Lives = %d, want 3", s.Lives())
			}
			if s.Player().X != 240 {
				t.Errorf("summit X = %v, want 240", s.Player().X)
			}
			// Climber stands on the goal, both inside the field
			if s.Player().Y != 150 {
				t.Errorf("summit Y = %v, want 150", s.Player().Y)
			}
			if goal := s.World().GoalY(); goal != 185 {
				t.Errorf("GoalY = %v, want 185", goal)
			}
			if s.Player().Climbing {
				t.Error("player still climbing after win")
			}
		})
	}
}

func TestThreeHitsLose(t *testing.T) {
	s := newQuietSession()

	for want := 2; want >= 0; want-- {
		ev := hitPlayer(s)
		if ev.Hits != 1 {
			t.Fatalf("Hits = %d, want 1", ev.Hits)
		}
		if s.Lives() != want {
			t.Fatalf("Lives = %d, want %d", s.Lives(), want)
		}
		if want > 0 && s.Phase() != PhaseRunning {
			t.Fatalf("Phase = %v with %d lives, want running", s.Phase(), want)
		}
	}

	if s.Phase() != PhaseLost {
		t.Fatalf("Phase = %v, want lost", s.Phase())
	}

	// Further overlaps change nothing once lost
	ev := hitPlayer(s)
	if ev.Hits != 0 || ev.PhaseChanged {
		t.Errorf("tick after loss reported %+v", ev)
	}
	if s.Lives() != 0 {
		t.Errorf("Lives = %d after loss, want 0", s.Lives())
	}
}

func TestSimultaneousOverlapsStopAtZero(t *testing.T) {
	s := newQuietSession()
	p := s.Player()
	for range 5 {
		s.Pool().Add(Actor{Kind: ActorFlying, X: p.X, Y: p.Y, Size: 24})
	}

	ev := s.Tick(Intent{}, 0)
	if ev.Hits != 3 {
		t.Errorf("Hits = %d, want 3", ev.Hits)
	}
	if s.Lives() != 0 || s.Phase() != PhaseLost {
		t.Errorf("Lives = %d, Phase = %v, want 0 and lost", s.Lives(), s.Phase())
	}
	if s.Pool().Len() != 2 {
		t.Errorf("Pool has %d actors, want 2 untouched", s.Pool().Len())
	}
}

func TestLaneSwitchFiresOncePerPress(t *testing.T) {
	s := newQuietSession()

	s.Tick(Intent{SwitchRight: true}, frameMs)
	if s.Player().Lane != 1 || s.Player().X != 320 {
		t.Fatalf("after first tick lane=%d x=%v, want lane 1 x=320", s.Player().Lane, s.Player().X)
	}

	// Move the player back while the key stays held; no new edge means no jump
	s.Player().SwitchLane(0)
	for range 50 {
		s.Tick(Intent{SwitchRight: true}, frameMs)
	}
	if s.Player().Lane != 0 {
		t.Errorf("held key switched lanes again: lane=%d", s.Player().Lane)
	}

	// Release and press again
	s.Tick(Intent{}, frameMs)
	s.Tick(Intent{SwitchRight: true}, frameMs)
	if s.Player().Lane != 1 {
		t.Errorf("second press did not switch: lane=%d", s.Player().Lane)
	}
}

func TestBothLaneEdgesRightWins(t *testing.T) {
	s := newQuietSession()
	y := s.Player().Y

	s.Tick(Intent{SwitchLeft: true, SwitchRight: true}, frameMs)
	if s.Player().Lane != 1 {
		t.Errorf("Lane = %d, want 1 (left applied before right)", s.Player().Lane)
	}
	if s.Player().Y != y {
		t.Errorf("lane switch changed Y from %v to %v", y, s.Player().Y)
	}
}

func TestClimbScrollsAtThreshold(t *testing.T) {
	s := newQuietSession()

	// Climb until the player reaches the scroll threshold
	for s.Player().Y > 150 {
		s.Tick(Intent{Up: true}, frameMs)
	}
	if s.ScrollOffset() != 0 {
		t.Fatalf("world scrolled before threshold: offset=%v", s.ScrollOffset())
	}

	y := s.Player().Y
	cloudY := s.World().Clouds()[0].Y
	s.Tick(Intent{Up: true}, frameMs)

	step := 120 * frameMs / 1000
	if s.Player().Y != y {
		t.Errorf("player moved at threshold: %v -> %v", y, s.Player().Y)
	}
	if math.Abs(s.ScrollOffset()-step) > 1e-9 {
		t.Errorf("ScrollOffset = %v, want %v", s.ScrollOffset(), step)
	}
	if math.Abs(s.World().GoalY()-(-300+s.ScrollOffset())) > 1e-9 {
		t.Errorf("GoalY = %v, want %v", s.World().GoalY(), -300+s.ScrollOffset())
	}
	gotCloud := s.World().Clouds()[0].Y
	if gotCloud != -30 && math.Abs(gotCloud-(cloudY+step/2)) > 1e-9 {
		t.Errorf("cloud Y = %v, want %v", gotCloud, cloudY+step/2)
	}
}

func TestDownNeverScrolls(t *testing.T) {
	s := newQuietSession()
	for range 200 {
		s.Tick(Intent{Down: true}, frameMs)
	}
	if s.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset = %v, want 0", s.ScrollOffset())
	}
	if s.Player().Y != 640-14 {
		t.Errorf("player Y = %v, want clamped to %v", s.Player().Y, 640-14)
	}
}

func TestTerminalTicksAreNoOps(t *testing.T) {
	s := newQuietSession()
	for range 3 {
		hitPlayer(s)
	}
	if s.Phase() != PhaseLost {
		t.Fatalf("Phase = %v, want lost", s.Phase())
	}

	before := s.Snapshot()
	for range 100 {
		s.Tick(Intent{Up: true, SwitchRight: true}, frameMs)
	}
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("snapshot changed after loss:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestResetMatchesFreshSession(t *testing.T) {
	s := newQuietSession()
	if s.Reset() {
		t.Fatal("Reset accepted while running")
	}

	for range 100 {
		s.Tick(Intent{Up: true, SwitchRight: true}, frameMs)
	}
	for range 3 {
		hitPlayer(s)
	}
	if !s.Reset() {
		t.Fatal("Reset rejected after loss")
	}

	fresh := newQuietSession()
	got, want := s.Snapshot(), fresh.Snapshot()

	if got.Phase != want.Phase || got.Lives != want.Lives || got.HeightRemaining != want.HeightRemaining {
		t.Errorf("state = (%v, %d, %v), want (%v, %d, %v)",
			got.Phase, got.Lives, got.HeightRemaining, want.Phase, want.Lives, want.HeightRemaining)
	}
	if got.ScrollOffset != 0 || got.GoalY != want.GoalY {
		t.Errorf("scroll = %v goal = %v, want 0 and %v", got.ScrollOffset, got.GoalY, want.GoalY)
	}
	if got.Player != want.Player {
		t.Errorf("Player = %+v, want %+v", got.Player, want.Player)
	}
	if len(got.Actors) != 0 {
		t.Errorf("%d actors survived reset", len(got.Actors))
	}
	if s.Elapsed() != 0 || s.Ticks() != 0 {
		t.Errorf("Elapsed = %v Ticks = %d, want 0", s.Elapsed(), s.Ticks())
	}

	// Edge tracking is cleared, so a held key switches lanes on the first tick
	s.Tick(Intent{SwitchRight: true}, frameMs)
	if s.Player().Lane != 1 {
		t.Errorf("Lane = %d after reset press, want 1", s.Player().Lane)
	}
}

func TestResetAfterWin(t *testing.T) {
	s := newQuietSession()
	for s.Phase() == PhaseRunning {
		s.Tick(Intent{Up: true}, 100)
	}
	if s.Phase() != PhaseWon {
		t.Fatalf("Phase = %v, want won", s.Phase())
	}
	if !s.Reset() {
		t.Fatal("Reset rejected after win")
	}
	if s.HeightRemaining() != 200 || s.Phase() != PhaseRunning || s.Lives() != 3 {
		t.Errorf("after reset: height=%v phase=%v lives=%d", s.HeightRemaining(), s.Phase(), s.Lives())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultClimbConfig()
	s1 := NewSession(cfg, rand.New(rand.NewSource(12345)))
	s2 := NewSession(cfg, rand.New(rand.NewSource(12345)))

	for i := range 2000 {
		in := Intent{Up: i%3 != 0, SwitchLeft: i%97 == 0, SwitchRight: i%61 == 0}
		s1.Tick(in, frameMs)
		s2.Tick(in, frameMs)
	}

	if !reflect.DeepEqual(s1.Snapshot(), s2.Snapshot()) {
		t.Error("sessions with the same seed and input diverged")
	}
}

func TestSpawnsDuringPlay(t *testing.T) {
	s := NewSession(config.DefaultClimbConfig(), rand.New(rand.NewSource(7)))

	total := 0
	for range 100 {
		total += s.Tick(Intent{}, 16).Spawned
	}
	// 1600 ms covers one falling (1170) and one flying (1560) spawn
	if total != 2 {
		t.Errorf("spawned %d actors in 1600 ms, want 2", total)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseRunning, "running"},
		{PhaseWon, "won"},
		{PhaseLost, "lost"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
