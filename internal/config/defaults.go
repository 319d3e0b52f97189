package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the default Turbine Climb configuration.
// It matches defaults/climb.yaml and is the base every loaded file overlays.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 640,
		},
		Lanes: []float64{160, 320},
		Player: PlayerConfig{
			StartLane:       0,
			StartY:          520,
			ClimbSpeed:      120,
			ClimbThresholdY: 150,
			HitboxW:         18,
			HitboxH:         28,
			Lives:           3,
			HitFlashMs:      200,
			AnimFrameMs:     150,
		},
		Progress: ProgressConfig{
			StartingHeight:  200,
			ClimbDurationMs: 30000,
		},
		Falling: FallingConfig{
			Spawn:      SpawnConfig{BaseIntervalMs: 900, Multiplier: 1.3},
			MarginX:    40,
			SpawnY:     -20,
			MinVY:      75,
			MaxVY:      150,
			SpinMin:    -120,
			SpinMax:    120,
			CullMargin: 50,
			Size:       24,
		},
		Flying: FlyingConfig{
			Spawn:       SpawnConfig{BaseIntervalMs: 1200, Multiplier: 1.3},
			SpawnMargin: 40,
			BandMinY:    80,
			BandMaxY:    500,
			MinVX:       112,
			MaxVX:       165,
			CullMargin:  40,
			Size:        24,
			FrameMs:     220,
		},
		Scenery: SceneryConfig{
			Clouds:     6,
			CloudMinW:  60,
			CloudMaxW:  120,
			CloudH:     24,
			Parallax:   0.5,
			WrapMargin: 30,
		},
		Goal: GoalConfig{
			InitialY:     -300,
			SummitOffset: 35,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "climb":
		return defaultClimbYAML
	default:
		return nil
	}
}
