package drawing

import "github.com/dshills/polydraw/internal/geom"

// Snapshot is an immutable, independently-owned copy of drawing state at a
// point in time. It covers finished polygons and the in-progress polygon
// only: the cursor is preview state, and history is never nested inside
// history.
type Snapshot struct {
	finished []Polygon
	current  geom.PolyLine
}

// capture deep-copies the given state into a new Snapshot with no aliasing
// to the inputs.
func capture(finished []Polygon, current geom.PolyLine) Snapshot {
	return Snapshot{
		finished: clonePolygons(finished),
		current:  current.Clone(),
	}
}

// Equal reports whether two snapshots describe observably equal state.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.finished) != len(other.finished) {
		return false
	}
	for i := range s.finished {
		if s.finished[i].ID != other.finished[i].ID {
			return false
		}
		if !s.finished[i].Points.Equal(other.finished[i].Points) {
			return false
		}
	}
	return s.current.Equal(other.current)
}

// clonePolygons deep-copies a polygon list. Returns nil for an empty input.
func clonePolygons(polys []Polygon) []Polygon {
	if len(polys) == 0 {
		return nil
	}
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Clone()
	}
	return out
}
