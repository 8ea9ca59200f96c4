package history

// DefaultMaxEntries bounds the undo stack when no explicit limit is given.
const DefaultMaxEntries = 1000

// History manages undo/redo stacks of snapshots of type S.
//
// History provides no internal synchronization; the owning component must
// serialize access.
type History[S any] struct {
	undoStack []S
	redoStack []S

	maxEntries int
}

// New creates a history bounded to maxEntries undo snapshots.
// A non-positive limit selects DefaultMaxEntries.
func New[S any](maxEntries int) *History[S] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History[S]{
		maxEntries: maxEntries,
	}
}

// Push records a pre-edit snapshot on the undo stack and clears the redo
// stack. The oldest entries are dropped once the bound is exceeded.
func (h *History[S]) Push(snap S) {
	h.undoStack = append(h.undoStack, snap)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = append([]S(nil), h.undoStack[excess:]...)
	}
}

// Undo pops the most recent undo snapshot, recording current on the redo
// stack. Returns the snapshot to restore and true, or the zero value and
// false when there is nothing to undo.
func (h *History[S]) Undo(current S) (S, bool) {
	if len(h.undoStack) == 0 {
		var zero S
		return zero, false
	}

	snap := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return snap, true
}

// Redo pops the most recent redo snapshot, recording current on the undo
// stack. Returns the snapshot to restore and true, or the zero value and
// false when there is nothing to redo.
//
// Unlike Push, recording current here must not clear the redo stack.
func (h *History[S]) Redo(current S) (S, bool) {
	if len(h.redoStack) == 0 {
		var zero S
		return zero, false
	}

	snap := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return snap, true
}

// CanUndo returns true if undo is available.
func (h *History[S]) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History[S]) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo snapshots available.
func (h *History[S]) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo snapshots available.
func (h *History[S]) RedoCount() int {
	return len(h.redoStack)
}

// PeekUndo returns the next undo snapshot without removing it.
func (h *History[S]) PeekUndo() (S, bool) {
	if len(h.undoStack) == 0 {
		var zero S
		return zero, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

// PeekRedo returns the next redo snapshot without removing it.
func (h *History[S]) PeekRedo() (S, bool) {
	if len(h.redoStack) == 0 {
		var zero S
		return zero, false
	}
	return h.redoStack[len(h.redoStack)-1], true
}

// Clear removes all undo/redo snapshots.
func (h *History[S]) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MaxEntries returns the undo stack bound.
func (h *History[S]) MaxEntries() int {
	return h.maxEntries
}

// SetMaxEntries changes the undo stack bound. If the current stack is
// larger, oldest entries are removed.
func (h *History[S]) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max

	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = append([]S(nil), h.undoStack[excess:]...)
	}
}
