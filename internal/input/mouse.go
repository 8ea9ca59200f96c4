package input

import "time"

// ClickType classifies a mouse click within a sequence.
type ClickType uint8

const (
	// ClickSingle is a standalone click.
	ClickSingle ClickType = iota + 1
	// ClickDouble is the second click of a quick sequence at the same spot.
	ClickDouble
)

// ClickPos is a screen cell position.
type ClickPos struct {
	X int
	Y int
}

// distance returns the Manhattan distance between two positions.
func (p ClickPos) distance(q ClickPos) int {
	dx := p.X - q.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - q.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// ClickTracker detects double clicks from a stream of click events.
type ClickTracker struct {
	maxInterval time.Duration
	maxDistance int

	lastPos  ClickPos
	lastTime time.Time
	lastWas  ClickType
}

// NewClickTracker creates a tracker. Clicks closer together than
// maxInterval and within maxDistance cells count as a double click.
func NewClickTracker(maxInterval time.Duration, maxDistance int) *ClickTracker {
	return &ClickTracker{
		maxInterval: maxInterval,
		maxDistance: maxDistance,
	}
}

// Record registers a click and classifies it. A zero timestamp uses the
// current time. A third rapid click starts a new sequence.
func (t *ClickTracker) Record(pos ClickPos, timestamp time.Time) ClickType {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isSequence(pos, timestamp) && t.lastWas == ClickSingle {
		t.lastWas = ClickDouble
	} else {
		t.lastWas = ClickSingle
	}

	t.lastPos = pos
	t.lastTime = timestamp
	return t.lastWas
}

// Reset clears click tracking state.
func (t *ClickTracker) Reset() {
	t.lastWas = 0
	t.lastTime = time.Time{}
	t.lastPos = ClickPos{}
}

// isSequence checks whether a click continues the previous one.
func (t *ClickTracker) isSequence(pos ClickPos, timestamp time.Time) bool {
	if t.lastWas == 0 || t.lastTime.IsZero() {
		return false
	}

	// Clock skew yields a negative elapsed; treat as a new sequence.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxInterval {
		return false
	}
	return pos.distance(t.lastPos) <= t.maxDistance
}
