// Package history provides bounded undo/redo stacks of state snapshots.
//
// The History type holds two flat, last-in-first-out stacks of snapshots.
// Each snapshot is a standalone owned copy of state at a point in time;
// entries never reference each other or the live state, so memory ownership
// stays explicit and nothing is retained beyond the configured bound.
//
// # Stack discipline
//
// Push records the state before an edit and clears the redo stack: redo is
// only valid immediately after an undo with no intervening edit.
//
//	h := history.New[Snapshot](100)
//
//	h.Push(before)            // edit happened
//	s, ok := h.Undo(current)  // current moves to redo, s is the restore target
//	s, ok = h.Redo(current)   // mirror image
//
// History is agnostic to the snapshot type; callers are responsible for
// passing deep copies so that stored entries cannot be mutated through the
// live state.
package history
