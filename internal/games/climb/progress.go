package climb

import "github.com/vovakirdan/turbine-climb/internal/config"

// progressEpsilon absorbs float drift when many small ticks add up to the
// full climb duration.
const progressEpsilon = 1e-9

// ProgressTracker converts time spent climbing into height remaining.
// Height falls linearly from StartingHeight to zero over ClimbDurationMs of
// Up being held, independent of whether the player or the world moved.
type ProgressTracker struct {
	starting  float64
	duration  float64
	climbedMs float64
	remaining float64
}

// NewProgressTracker creates a tracker at full height.
func NewProgressTracker(cfg config.ProgressConfig) *ProgressTracker {
	p := &ProgressTracker{
		starting: cfg.StartingHeight,
		duration: cfg.ClimbDurationMs,
	}
	p.Reset()
	return p
}

// Tick records dt milliseconds of climbing and returns the new height remaining.
func (p *ProgressTracker) Tick(dt float64) float64 {
	if dt <= 0 || p.remaining == 0 {
		return p.remaining
	}
	p.climbedMs += dt
	if p.duration <= 0 {
		p.remaining = 0
		return 0
	}

	remaining := p.starting - p.starting*p.climbedMs/p.duration
	if remaining <= p.starting*progressEpsilon {
		remaining = 0
	}
	p.remaining = remaining
	return remaining
}

// Remaining returns the height still to climb.
func (p *ProgressTracker) Remaining() float64 {
	return p.remaining
}

// Climbed returns the height climbed so far.
func (p *ProgressTracker) Climbed() float64 {
	return p.starting - p.remaining
}

// Reached reports whether the top has been reached.
func (p *ProgressTracker) Reached() bool {
	return p.remaining == 0
}

// Reset restores the starting height.
func (p *ProgressTracker) Reset() {
	p.climbedMs = 0
	p.remaining = p.starting
}
