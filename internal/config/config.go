// Package config provides YAML/TOML-based configuration loading for the
// climb.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ClimbConfig contains all configuration for Turbine Climb.
// Values are injected when a session is built; nothing is reconfigured at runtime.
type ClimbConfig struct {
	Field    FieldConfig    `yaml:"field" toml:"field"`
	Lanes    []float64      `yaml:"lanes" toml:"lanes"` // X coordinate of each ladder
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Progress ProgressConfig `yaml:"progress" toml:"progress"`
	Falling  FallingConfig  `yaml:"falling" toml:"falling"`
	Flying   FlyingConfig   `yaml:"flying" toml:"flying"`
	Scenery  SceneryConfig  `yaml:"scenery" toml:"scenery"`
	Goal     GoalConfig     `yaml:"goal" toml:"goal"`
}

// FieldConfig defines the play-field extents in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the climber.
type PlayerConfig struct {
	StartLane       int     `yaml:"start_lane" toml:"start_lane"`
	StartY          float64 `yaml:"start_y" toml:"start_y"`
	ClimbSpeed      float64 `yaml:"climb_speed" toml:"climb_speed"`             // units per second
	ClimbThresholdY float64 `yaml:"climb_threshold_y" toml:"climb_threshold_y"` // at or above this Y the world scrolls
	HitboxW         float64 `yaml:"hitbox_w" toml:"hitbox_w"`
	HitboxH         float64 `yaml:"hitbox_h" toml:"hitbox_h"`
	Lives           int     `yaml:"lives" toml:"lives"`
	HitFlashMs      float64 `yaml:"hit_flash_ms" toml:"hit_flash_ms"`
	AnimFrameMs     float64 `yaml:"anim_frame_ms" toml:"anim_frame_ms"`
}

// ProgressConfig defines the height counter.
type ProgressConfig struct {
	StartingHeight  float64 `yaml:"starting_height" toml:"starting_height"` // feet
	ClimbDurationMs float64 `yaml:"climb_duration_ms" toml:"climb_duration_ms"`
}

// SpawnConfig defines a periodic spawn timer.
type SpawnConfig struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms" toml:"base_interval_ms"`
	Multiplier     float64 `yaml:"multiplier" toml:"multiplier"` // >1 means less frequent
}

// Interval returns the effective timer period in milliseconds.
func (s SpawnConfig) Interval() float64 {
	return math.Round(s.BaseIntervalMs * s.Multiplier)
}

// FallingConfig defines birds that drop from above.
type FallingConfig struct {
	Spawn      SpawnConfig `yaml:"spawn" toml:"spawn"`
	MarginX    int         `yaml:"margin_x" toml:"margin_x"`
	SpawnY     float64     `yaml:"spawn_y" toml:"spawn_y"`
	MinVY      int         `yaml:"min_vy" toml:"min_vy"`
	MaxVY      int         `yaml:"max_vy" toml:"max_vy"`
	SpinMin    float64     `yaml:"spin_min" toml:"spin_min"` // degrees per second, cosmetic
	SpinMax    float64     `yaml:"spin_max" toml:"spin_max"`
	CullMargin float64     `yaml:"cull_margin" toml:"cull_margin"`
	Size       float64     `yaml:"size" toml:"size"`
}

// FlyingConfig defines birds that cross the field horizontally.
type FlyingConfig struct {
	Spawn       SpawnConfig `yaml:"spawn" toml:"spawn"`
	SpawnMargin float64     `yaml:"spawn_margin" toml:"spawn_margin"`
	BandMinY    int         `yaml:"band_min_y" toml:"band_min_y"`
	BandMaxY    int         `yaml:"band_max_y" toml:"band_max_y"`
	MinVX       int         `yaml:"min_vx" toml:"min_vx"`
	MaxVX       int         `yaml:"max_vx" toml:"max_vx"`
	CullMargin  float64     `yaml:"cull_margin" toml:"cull_margin"`
	Size        float64     `yaml:"size" toml:"size"`
	FrameMs     float64     `yaml:"frame_ms" toml:"frame_ms"`
}

// SceneryConfig defines the decorative clouds.
type SceneryConfig struct {
	Clouds     int     `yaml:"clouds" toml:"clouds"`
	CloudMinW  int     `yaml:"cloud_min_w" toml:"cloud_min_w"`
	CloudMaxW  int     `yaml:"cloud_max_w" toml:"cloud_max_w"`
	CloudH     float64 `yaml:"cloud_h" toml:"cloud_h"`
	Parallax   float64 `yaml:"parallax" toml:"parallax"`
	WrapMargin float64 `yaml:"wrap_margin" toml:"wrap_margin"`
}

// GoalConfig defines the turbine top marker.
type GoalConfig struct {
	InitialY     float64 `yaml:"initial_y" toml:"initial_y"`
	SummitOffset float64 `yaml:"summit_offset" toml:"summit_offset"`
}

// Validate checks the config for values the simulation cannot work with.
// The returned error wraps ErrInvalidConfig.
func (c ClimbConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return invalid("field must have positive size, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if len(c.Lanes) != 2 {
		return invalid("exactly 2 lanes required, got %d", len(c.Lanes))
	}
	for i, x := range c.Lanes {
		if x < 0 || x > c.Field.Width {
			return invalid("lane %d at x=%g is outside the field", i, x)
		}
	}

	p := c.Player
	if p.StartLane < 0 || p.StartLane >= len(c.Lanes) {
		return invalid("player.start_lane %d out of range", p.StartLane)
	}
	if p.ClimbSpeed <= 0 {
		return invalid("player.climb_speed must be positive")
	}
	if p.ClimbThresholdY < 0 || p.ClimbThresholdY >= c.Field.Height {
		return invalid("player.climb_threshold_y %g must lie inside the field", p.ClimbThresholdY)
	}
	if p.HitboxW <= 0 || p.HitboxH <= 0 {
		return invalid("player hitbox must have positive size")
	}
	if p.Lives <= 0 {
		return invalid("player.lives must be positive, got %d", p.Lives)
	}
	if p.HitFlashMs < 0 || p.AnimFrameMs <= 0 {
		return invalid("player timers must not be negative")
	}

	if c.Progress.StartingHeight <= 0 || c.Progress.ClimbDurationMs <= 0 {
		return invalid("progress.starting_height and progress.climb_duration_ms must be positive")
	}

	f := c.Falling
	if f.Spawn.Interval() <= 0 {
		return invalid("falling spawn interval must be positive")
	}
	if f.MinVY > f.MaxVY {
		return invalid("falling.min_vy %d exceeds max_vy %d", f.MinVY, f.MaxVY)
	}
	if f.SpinMin > f.SpinMax {
		return invalid("falling.spin_min exceeds spin_max")
	}
	if float64(2*f.MarginX) > c.Field.Width {
		return invalid("falling.margin_x %d leaves no spawn room", f.MarginX)
	}
	if f.Size <= 0 {
		return invalid("falling.size must be positive")
	}

	fl := c.Flying
	if fl.Spawn.Interval() <= 0 {
		return invalid("flying spawn interval must be positive")
	}
	if fl.MinVX <= 0 || fl.MinVX > fl.MaxVX {
		return invalid("flying speed range [%d, %d] is invalid", fl.MinVX, fl.MaxVX)
	}
	if fl.BandMinY > fl.BandMaxY {
		return invalid("flying band [%d, %d] is invalid", fl.BandMinY, fl.BandMaxY)
	}
	if fl.Size <= 0 || fl.FrameMs <= 0 {
		return invalid("flying.size and flying.frame_ms must be positive")
	}

	s := c.Scenery
	if s.Clouds < 0 || s.CloudMinW > s.CloudMaxW {
		return invalid("scenery cloud settings are invalid")
	}
	if s.Parallax < 0 {
		return invalid("scenery.parallax must not be negative")
	}

	return nil
}
