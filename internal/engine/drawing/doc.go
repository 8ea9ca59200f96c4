// Package drawing implements the state model for an interactive
// polygon-drawing surface.
//
// State tracks finished polygons, the polygon currently being drawn, and
// the last known cursor position, with linear undo/redo over edits. Every
// edit records a deep-copied snapshot of state before the mutation, so
// history entries can never be mutated through later edits to live state.
//
// Cursor movement is deliberately kept out of history: pointer events fire
// at high frequency and must not pollute the undo stack. The cursor is
// cleared by undo/redo because there is no reliable way to replay a
// preview position.
//
// State does no I/O and has no side effects beyond its own fields. It
// provides no internal synchronization; all calls must come from a single
// owner (the engine facade serializes for multi-goroutine hosts).
package drawing
