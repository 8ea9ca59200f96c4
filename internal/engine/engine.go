package engine

import (
	"sync"

	"github.com/dshills/polydraw/internal/engine/drawing"
	"github.com/dshills/polydraw/internal/geom"
)

// Re-export commonly used types for convenience.
type (
	// Point is a position in logical drawing space.
	Point = geom.Point

	// PolyLine is an ordered vertex sequence.
	PolyLine = geom.PolyLine

	// Polygon is a finished polyline with a stable ID.
	Polygon = drawing.Polygon
)

// Engine is the main facade for the drawing engine. It owns the drawing
// state and serializes all access to it.
type Engine struct {
	mu    sync.RWMutex
	state *drawing.State

	// Configuration
	maxUndoEntries int

	// Initialization
	initPolygons []Polygon
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.state = drawing.NewState(e.maxUndoEntries)
	if len(e.initPolygons) > 0 {
		e.state.Replace(e.initPolygons, nil)
		e.initPolygons = nil
	}
	return e
}

// AddPoint appends a vertex to the polygon in progress, starting a new one
// if none exists.
func (e *Engine) AddPoint(p Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.AddPoint(p)
}

// FinishPolygon completes the polygon in progress. Returns the finished
// polygon, or ErrNothingToFinish when nothing is in progress.
func (e *Engine) FinishPolygon() (Polygon, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	poly, ok := e.state.FinishPolygon()
	if !ok {
		return Polygon{}, ErrNothingToFinish
	}
	return poly, nil
}

// Clear removes all drawing content in a single undoable step. Returns
// ErrAlreadyEmpty when there is nothing to clear.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Clear() {
		return ErrAlreadyEmpty
	}
	return nil
}

// Undo reverts the most recent edit. The cursor preview is cleared whether
// or not anything was undone. Returns ErrNothingToUndo on empty history.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Undo() {
		return ErrNothingToUndo
	}
	return nil
}

// Redo re-applies the most recently undone edit. The cursor preview is
// cleared whether or not anything was redone. Returns ErrNothingToRedo on
// an empty redo stack.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Redo() {
		return ErrNothingToRedo
	}
	return nil
}

// SetCursor records the pointer position for preview rendering. Never
// recorded in history.
func (e *Engine) SetCursor(p Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.SetCursor(p)
}

// ClearCursor marks the pointer position as unknown.
func (e *Engine) ClearCursor() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.ClearCursor()
}

// Load replaces the drawing contents wholesale and resets history.
func (e *Engine) Load(finished []Polygon, current PolyLine) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Replace(finished, current)
}

// Finished returns a deep copy of the finished polygons, newest first.
func (e *Engine) Finished() []Polygon {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.Finished()
}

// FinishedCount returns the number of finished polygons.
func (e *Engine) FinishedCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.FinishedCount()
}

// Current returns a copy of the polygon in progress, or nil if none.
func (e *Engine) Current() PolyLine {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.Current()
}

// Cursor returns the last known pointer position and whether one is set.
func (e *Engine) Cursor() (Point, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.Cursor()
}

// IsEmpty reports whether the drawing has no content.
func (e *Engine) IsEmpty() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.IsEmpty()
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.CanRedo()
}

// UndoCount returns the number of undo entries available.
func (e *Engine) UndoCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.UndoCount()
}

// RedoCount returns the number of redo entries available.
func (e *Engine) RedoCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state.RedoCount()
}
