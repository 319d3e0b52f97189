package climb

import (
	"math"
	"testing"

	"github.com/vovakirdan/turbine-climb/internal/config"
)

func newTestPlayer() *Player {
	cfg := config.DefaultClimbConfig()
	return NewPlayer(&cfg)
}

func TestClimbUpStopsAtThreshold(t *testing.T) {
	p := newTestPlayer()

	if scroll := p.ClimbUp(20); scroll != 0 || p.Y != 500 {
		t.Fatalf("ClimbUp below threshold: scroll=%v y=%v", scroll, p.Y)
	}

	p.PlaceAt(p.X, 150)
	if scroll := p.ClimbUp(2); scroll != 2 || p.Y != 150 {
		t.Errorf("ClimbUp at threshold: scroll=%v y=%v, want 2 and 150", scroll, p.Y)
	}
}

func TestPlayerClamp(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 200, 300, 200, 300},
		{"above top", 200, -50, 200, 14},
		{"below bottom", 200, 900, 200, 626},
		{"left of field", -10, 300, 9, 300},
		{"right of field", 999, 300, 471, 300},
		{"nan", math.NaN(), 300, 160, 520},
		{"inf", 200, math.Inf(1), 160, 520},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.PlaceAt(tt.x, tt.y)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("PlaceAt(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSwitchLaneIgnoresInvalid(t *testing.T) {
	p := newTestPlayer()
	p.SwitchLane(5)
	p.SwitchLane(-1)
	if p.Lane != 0 || p.X != 160 {
		t.Errorf("invalid lane moved player to lane %d x=%v", p.Lane, p.X)
	}
}

func TestAnimation(t *testing.T) {
	p := newTestPlayer()

	p.Animate(100, true)
	if p.Frame != 0 || !p.Climbing {
		t.Fatalf("after 100 ms: frame=%d climbing=%v", p.Frame, p.Climbing)
	}
	p.Animate(50, true)
	if p.Frame != 1 {
		t.Fatalf("after 150 ms: frame=%d, want 1", p.Frame)
	}
	p.Animate(16, false)
	if p.Frame != 0 || p.Climbing {
		t.Errorf("idle: frame=%d climbing=%v, want 0 and false", p.Frame, p.Climbing)
	}
}

func TestHitFlashAndLives(t *testing.T) {
	p := newTestPlayer()

	p.Hit()
	if p.Lives != 2 || !p.Flashing() {
		t.Fatalf("after hit: lives=%d flashing=%v", p.Lives, p.Flashing())
	}
	p.Tick(199)
	if !p.Flashing() {
		t.Error("flash ended early")
	}
	p.Tick(1)
	if p.Flashing() {
		t.Error("flash still visible after 200 ms")
	}

	for range 5 {
		p.Hit()
	}
	if p.Lives != 0 {
		t.Errorf("Lives = %d, want floor of 0", p.Lives)
	}
}
