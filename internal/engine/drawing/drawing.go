package drawing

import (
	"github.com/google/uuid"

	"github.com/dshills/polydraw/internal/engine/history"
	"github.com/dshills/polydraw/internal/geom"
)

// Polygon is a finished polyline with a stable identifier. The ID is
// assigned once when the polygon is finished and survives undo/redo through
// snapshots.
type Polygon struct {
	ID     string
	Points geom.PolyLine
}

// Clone returns an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	return Polygon{ID: p.ID, Points: p.Points.Clone()}
}

// State is the live drawing model. The zero value is not usable; create
// with NewState.
type State struct {
	finished  []Polygon     // newest-first
	current   geom.PolyLine // nil = no polygon in progress
	cursor    geom.Point
	cursorSet bool

	hist *history.History[Snapshot]

	// newID is replaceable in tests for deterministic polygon IDs.
	newID func() string
}

// NewState creates an empty drawing state with the given undo bound.
// A non-positive bound selects history.DefaultMaxEntries.
func NewState(maxUndo int) *State {
	return &State{
		hist:  history.New[Snapshot](maxUndo),
		newID: uuid.NewString,
	}
}

// AddPoint appends a vertex to the polygon in progress, starting a new one
// if none exists. Always succeeds.
func (s *State) AddPoint(p geom.Point) {
	s.recordEdit()
	s.current = append(s.current, p)
}

// FinishPolygon completes the polygon in progress, inserting it at the
// front of the finished list with a fresh ID. When no polygon is in
// progress this is a no-op and records no undo entry.
// Returns the finished polygon and true, or the zero Polygon and false on
// the no-op path.
func (s *State) FinishPolygon() (Polygon, bool) {
	if s.current.IsEmpty() {
		return Polygon{}, false
	}

	s.recordEdit()

	poly := Polygon{ID: s.newID(), Points: s.current.Clone()}
	s.finished = append([]Polygon{poly}, s.finished...)
	s.current = nil
	return poly.Clone(), true
}

// Clear removes all finished polygons and the polygon in progress. When
// the state is already empty this is a no-op and records no undo entry.
// Returns true if anything was cleared.
func (s *State) Clear() bool {
	if len(s.finished) == 0 && s.current.IsEmpty() {
		return false
	}

	s.recordEdit()
	s.finished = nil
	s.current = nil
	return true
}

// Undo reverts the most recent edit. With empty history the polygons are
// left untouched; the cursor is cleared on every path because the preview
// cannot be replayed. Returns true if state was restored.
func (s *State) Undo() bool {
	s.cursorSet = false

	snap, ok := s.hist.Undo(s.snapshot())
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Redo re-applies the most recently undone edit. With empty redo history
// the polygons are left untouched; the cursor is cleared on every path.
// Returns true if state was restored.
func (s *State) Redo() bool {
	s.cursorSet = false

	snap, ok := s.hist.Redo(s.snapshot())
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// SetCursor records the pointer position for preview rendering. Cursor
// movement never touches history.
func (s *State) SetCursor(p geom.Point) {
	s.cursor = p
	s.cursorSet = true
}

// ClearCursor marks the pointer position as unknown.
func (s *State) ClearCursor() {
	s.cursorSet = false
}

// Finished returns a deep copy of the finished polygons, newest first.
func (s *State) Finished() []Polygon {
	return clonePolygons(s.finished)
}

// FinishedCount returns the number of finished polygons.
func (s *State) FinishedCount() int {
	return len(s.finished)
}

// Current returns a copy of the polygon in progress, or nil if none.
func (s *State) Current() geom.PolyLine {
	return s.current.Clone()
}

// Cursor returns the last known pointer position and whether one is set.
func (s *State) Cursor() (geom.Point, bool) {
	return s.cursor, s.cursorSet
}

// IsEmpty reports whether there are no finished polygons and no polygon in
// progress.
func (s *State) IsEmpty() bool {
	return len(s.finished) == 0 && s.current.IsEmpty()
}

// CanUndo returns true if undo is available.
func (s *State) CanUndo() bool {
	return s.hist.CanUndo()
}

// CanRedo returns true if redo is available.
func (s *State) CanRedo() bool {
	return s.hist.CanRedo()
}

// UndoCount returns the number of undo entries available.
func (s *State) UndoCount() int {
	return s.hist.UndoCount()
}

// RedoCount returns the number of redo entries available.
func (s *State) RedoCount() int {
	return s.hist.RedoCount()
}

// Replace substitutes the drawing contents wholesale, e.g. when loading a
// saved session. The inputs are deep-copied and history is reset.
func (s *State) Replace(finished []Polygon, current geom.PolyLine) {
	s.finished = clonePolygons(finished)
	s.current = current.Clone()
	s.cursorSet = false
	s.hist.Clear()
}

// recordEdit pushes a pre-edit snapshot, which also discards redo entries.
func (s *State) recordEdit() {
	s.hist.Push(s.snapshot())
}

// snapshot deep-copies the undoable portion of state.
func (s *State) snapshot() Snapshot {
	return capture(s.finished, s.current)
}

// restore replaces live state with deep copies of the snapshot contents,
// so later edits cannot mutate the stored entry.
func (s *State) restore(snap Snapshot) {
	s.finished = clonePolygons(snap.finished)
	s.current = snap.current.Clone()
}
