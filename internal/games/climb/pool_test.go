package climb

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/turbine-climb/internal/config"
)

func newTestPool(seed int64) *ActorPool {
	cfg := config.DefaultClimbConfig()
	return NewActorPool(&cfg, rand.New(rand.NewSource(seed)))
}

func TestSpawnTimer(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		steps    []float64
		want     int
	}{
		{"not yet due", 1170, []float64{1169}, 0},
		{"exactly due", 1170, []float64{1170}, 1},
		{"accumulates", 1170, []float64{600, 600}, 1},
		{"multiple firings in one step", 1000, []float64{3500}, 3},
		{"zero interval never fires", 0, []float64{5000}, 0},
		{"zero dt", 1000, []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := SpawnTimer{Interval: tt.interval}
			got := 0
			for _, dt := range tt.steps {
				got += timer.Advance(dt)
			}
			if got != tt.want {
				t.Errorf("fired %d times, want %d", got, tt.want)
			}
		})
	}
}

func TestSpawnIntervalsFromConfig(t *testing.T) {
	p := newTestPool(1)

	if n := p.Spawn(1169); n != 0 {
		t.Fatalf("spawned %d before 1170 ms", n)
	}
	if n := p.Spawn(1); n != 1 {
		t.Fatalf("spawned %d at 1170 ms, want 1", n)
	}
	if p.Actors()[0].Kind != ActorFalling {
		t.Errorf("first spawn is %v, want falling", p.Actors()[0].Kind)
	}

	if n := p.Spawn(390); n != 1 {
		t.Fatalf("spawned %d at 1560 ms, want 1", n)
	}
	if p.Actors()[1].Kind != ActorFlying {
		t.Errorf("second spawn is %v, want flying", p.Actors()[1].Kind)
	}
}

func TestSpawnFallingRanges(t *testing.T) {
	p := newTestPool(42)
	for range 500 {
		a := p.SpawnFalling()
		if a.X < 40 || a.X > 440 || a.X != math.Trunc(a.X) {
			t.Fatalf("falling X = %v, want integer in [40, 440]", a.X)
		}
		if a.Y != -20 {
			t.Fatalf("falling Y = %v, want -20", a.Y)
		}
		if a.VY < 75 || a.VY > 150 || a.VX != 0 {
			t.Fatalf("falling velocity = (%v, %v)", a.VX, a.VY)
		}
		if a.Spin < -120 || a.Spin >= 120 {
			t.Fatalf("falling spin = %v, want [-120, 120)", a.Spin)
		}
	}
}

func TestSpawnFlyingRanges(t *testing.T) {
	p := newTestPool(42)
	left, right := 0, 0
	for range 500 {
		a := p.SpawnFlying()
		switch a.X {
		case -40:
			left++
			if a.VX < 112 || a.VX > 165 {
				t.Fatalf("left spawn VX = %v, want [112, 165]", a.VX)
			}
		case 520:
			right++
			if a.VX > -112 || a.VX < -165 {
				t.Fatalf("right spawn VX = %v, want [-165, -112]", a.VX)
			}
		default:
			t.Fatalf("flying X = %v, want -40 or 520", a.X)
		}
		if a.Y < 80 || a.Y > 500 {
			t.Fatalf("flying Y = %v, want [80, 500]", a.Y)
		}
		if a.Frame != 1 {
			t.Fatalf("flying Frame = %d, want 1", a.Frame)
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("sides not mixed: left=%d right=%d", left, right)
	}
}

func TestFallingActorCulledAfterSixSeconds(t *testing.T) {
	p := newTestPool(1)
	id := p.Add(Actor{Kind: ActorFalling, X: 240, Y: -20, VY: 120}).ID

	for step := 1; step <= 60; step++ {
		p.Advance(100)
		present := false
		for _, a := range p.Actors() {
			if a.ID == id {
				present = true
			}
		}
		if step < 60 && !present {
			t.Fatalf("actor removed early at %d ms", step*100)
		}
		if step == 60 && present {
			t.Fatal("actor still present after 6000 ms")
		}
	}

	// Never reappears
	for range 100 {
		p.Advance(100)
		for _, a := range p.Actors() {
			if a.ID == id {
				t.Fatal("culled actor reappeared")
			}
		}
	}
}

func TestFlyingActorCulledPastEdges(t *testing.T) {
	p := newTestPool(1)
	p.Add(Actor{Kind: ActorFlying, X: -40, Y: 200, VX: 150})
	p.Add(Actor{Kind: ActorFlying, X: 520, Y: 300, VX: -150})

	// 600 units at 150 u/s
	for range 40 {
		p.Advance(100)
	}
	if p.Len() != 0 {
		t.Errorf("%d flying actors left after crossing the field", p.Len())
	}
}

func TestScrollCullsBelowField(t *testing.T) {
	p := newTestPool(1)
	p.Add(Actor{Kind: ActorFlying, X: 240, Y: 680})
	p.Add(Actor{Kind: ActorFalling, X: 240, Y: 100})

	removed := p.Scroll(20)
	if removed != 1 || p.Len() != 1 {
		t.Fatalf("Scroll removed %d, %d left; want 1 and 1", removed, p.Len())
	}
	if p.Actors()[0].Y != 120 {
		t.Errorf("surviving actor Y = %v, want 120", p.Actors()[0].Y)
	}
}

func TestNonFiniteActorsCulled(t *testing.T) {
	p := newTestPool(1)
	p.Add(Actor{Kind: ActorFalling, X: math.NaN(), Y: 0})
	p.Add(Actor{Kind: ActorFlying, X: 100, Y: math.Inf(-1)})
	p.Add(Actor{Kind: ActorFalling, X: 100, Y: 100})

	if removed := p.Advance(0); removed != 2 {
		t.Errorf("removed %d, want 2", removed)
	}
}

func TestActorCosmetics(t *testing.T) {
	p := newTestPool(1)
	p.Add(Actor{Kind: ActorFalling, X: 100, Y: 100, VY: 100, Spin: 90})
	p.Add(Actor{Kind: ActorFlying, X: 100, Y: 200, VX: 10, Frame: 1})

	p.Advance(1000)
	fall, fly := p.Actors()[0], p.Actors()[1]

	if fall.Angle != 90 {
		t.Errorf("falling Angle = %v, want 90", fall.Angle)
	}
	if fall.X != 100 || fall.Y != 200 {
		t.Errorf("spin changed motion: (%v, %v)", fall.X, fall.Y)
	}
	if fly.Frame != 2 {
		t.Errorf("flying Frame = %d, want 2", fly.Frame)
	}
	if fly.Y != 200 {
		t.Errorf("flying Y = %v, want 200", fly.Y)
	}
}

func TestPoolRemoveAndClear(t *testing.T) {
	p := newTestPool(1)
	a := p.Add(Actor{Kind: ActorFalling, X: 1, Y: 1}).ID
	b := p.Add(Actor{Kind: ActorFalling, X: 2, Y: 2}).ID
	p.Add(Actor{Kind: ActorFalling, X: 3, Y: 3})

	if !p.Remove(b) {
		t.Fatal("Remove returned false for live actor")
	}
	if p.Remove(b) {
		t.Error("Remove returned true twice")
	}
	if p.Len() != 2 || p.Actors()[0].ID != a || p.Actors()[1].X != 3 {
		t.Errorf("spawn order not preserved: %+v", p.Actors())
	}

	p.Spawn(1000)
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len = %d after Clear", p.Len())
	}
	if n := p.Spawn(1000); n != 0 {
		t.Errorf("timers not reset by Clear: spawned %d", n)
	}
}
