package climb

import "github.com/vovakirdan/turbine-climb/internal/config"

// PlayerView is the renderable state of the climber.
type PlayerView struct {
	X, Y     float64
	Lane     int
	Climbing bool
	Frame    int
	Flashing bool
}

// ActorView is the renderable state of a bird.
type ActorView struct {
	Kind  ActorKind
	X, Y  float64
	VX    float64
	Angle float64
	Frame int
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick            uint64
	Phase           Phase
	HeightRemaining float64
	Lives           int
	ScrollOffset    float64
	GoalY           float64
	Player          PlayerView
	Actors          []ActorView
	Clouds          []Cloud
	Field           config.FieldConfig
	Lanes           []float64
}

// Snapshot captures the current state. The result shares no memory with
// the session.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Tick:            s.ticks,
		Phase:           s.phase,
		HeightRemaining: s.progress.Remaining(),
		Lives:           p.Lives,
		ScrollOffset:    s.world.Offset(),
		GoalY:           s.world.GoalY(),
		Player: PlayerView{
			X:        p.X,
			Y:        p.Y,
			Lane:     p.Lane,
			Climbing: p.Climbing,
			Frame:    p.Frame,
			Flashing: p.Flashing(),
		},
		Actors: make([]ActorView, 0, s.pool.Len()),
		Clouds: append([]Cloud(nil), s.world.Clouds()...),
		Field:  s.cfg.Field,
		Lanes:  append([]float64(nil), s.cfg.Lanes...),
	}
	for _, a := range s.pool.Actors() {
		snap.Actors = append(snap.Actors, ActorView{
			Kind:  a.Kind,
			X:     a.X,
			Y:     a.Y,
			VX:    a.VX,
			Angle: a.Angle,
			Frame: a.Frame,
		})
	}
	return snap
}
