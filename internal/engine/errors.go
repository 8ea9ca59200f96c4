package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrNothingToFinish indicates no polygon is in progress.
	ErrNothingToFinish = errors.New("no polygon in progress")

	// ErrAlreadyEmpty indicates the drawing has no content to clear.
	ErrAlreadyEmpty = errors.New("drawing is already empty")
)
