package climb

import (
	"math/rand"

	"github.com/vovakirdan/turbine-climb/internal/config"
)

// Cloud is a decorative background shape. It scrolls slower than the world.
type Cloud struct {
	X, Y float64 // Centre
	W    float64 // Width
}

// WorldScroll moves scenery and obstacles down while the player climbs at the
// scroll threshold, which is how vertical progress is shown.
type WorldScroll struct {
	clouds []Cloud
	goalY  float64
	offset float64 // Total distance scrolled since reset

	field   config.FieldConfig
	scenery config.SceneryConfig
	goal    config.GoalConfig
	rng     *rand.Rand
}

// NewWorldScroll creates the scenery with randomly placed clouds.
func NewWorldScroll(cfg *config.ClimbConfig, rng *rand.Rand) *WorldScroll {
	w := &WorldScroll{
		clouds:  make([]Cloud, cfg.Scenery.Clouds),
		field:   cfg.Field,
		scenery: cfg.Scenery,
		goal:    cfg.Goal,
		rng:     rng,
	}
	w.Reset()
	return w
}

// Reset scatters the clouds again and puts the goal back above the field.
func (w *WorldScroll) Reset() {
	margin := int(w.scenery.WrapMargin)
	for i := range w.clouds {
		w.clouds[i] = Cloud{
			X: float64(between(w.rng, margin, int(w.field.Width)-margin)),
			Y: float64(between(w.rng, 0, int(w.field.Height))),
			W: float64(between(w.rng, w.scenery.CloudMinW, w.scenery.CloudMaxW)),
		}
	}
	w.goalY = w.goal.InitialY
	w.offset = 0
}

// Scroll moves the world down by amount. Clouds move at the parallax rate and
// wrap back to the top; actors move at full rate and are culled by the pool.
func (w *WorldScroll) Scroll(amount float64, pool *ActorPool) {
	if amount <= 0 {
		return
	}
	w.offset += amount
	w.goalY += amount

	margin := w.scenery.WrapMargin
	cloudStep := amount * w.scenery.Parallax
	for i := range w.clouds {
		c := &w.clouds[i]
		c.Y += cloudStep
		if c.Y > w.field.Height+margin {
			c.Y = -margin
			c.X = float64(between(w.rng, int(margin), int(w.field.Width-margin)))
		}
	}

	if pool != nil {
		pool.Scroll(amount)
	}
}

// Clouds returns the current cloud layout.
func (w *WorldScroll) Clouds() []Cloud {
	return w.clouds
}

// SettleGoal moves the goal to world y without scrolling anything else.
func (w *WorldScroll) SettleGoal(y float64) {
	w.goalY = y
}

// GoalY returns the world y of the turbine top.
func (w *WorldScroll) GoalY() float64 {
	return w.goalY
}

// Offset returns the total distance scrolled since the last reset.
func (w *WorldScroll) Offset() float64 {
	return w.offset
}
