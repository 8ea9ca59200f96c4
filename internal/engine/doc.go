// Package engine provides the drawing engine facade for Polydraw.
//
// The engine combines the drawing state model with undo/redo history into
// a unified, thread-safe API suitable for driving an interactive surface.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - drawing: the state model (finished polygons, polygon in progress,
//     cursor preview, snapshot capture/restore)
//   - history: bounded undo/redo stacks of state snapshots
//
// # Thread Safety
//
// The drawing.State type itself is single-owner and unsynchronized; Engine
// is that owner. It serializes all access through a read-write mutex so
// multi-goroutine hosts (the event loop, a config reload callback) can call
// in safely. Concurrent reads like Finished() or Cursor() proceed in
// parallel.
//
// # Basic Usage
//
//	e := engine.New(engine.WithMaxUndoEntries(500))
//
//	e.AddPoint(geom.Pt(0, 0))
//	e.AddPoint(geom.Pt(4, 0))
//	e.AddPoint(geom.Pt(2, 3))
//	poly, _ := e.FinishPolygon()
//
//	e.Undo() // the triangle is in progress again
//	e.Redo() // and finished again, same ID
//
// Cursor movement is routed through SetCursor and never enters history:
//
//	e.SetCursor(geom.Pt(10, 10)) // preview only, not undoable
//
// # Error Handling
//
// Mutations on empty state are benign no-ops in the model. The facade
// reports them with sentinel errors (ErrNothingToUndo, ErrNothingToRedo,
// ErrNothingToFinish, ErrAlreadyEmpty) so callers can distinguish "nothing
// happened" without treating it as a failure.
package engine
