package renderer

import "github.com/gdamore/tcell/v2"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventQuit
)

// MouseAction classifies a mouse event.
type MouseAction int

const (
	MouseNone MouseAction = iota
	MousePress
	MouseRightPress
	MouseMotion
)

// Event is a backend-agnostic terminal event. Key events carry a chord
// string ("u", "enter", "ctrl+z") that the input keymap resolves.
type Event struct {
	Type EventType

	// Key event fields
	Chord string

	// Mouse event fields
	MouseX, MouseY int
	Mouse          MouseAction

	// Resize event fields
	Width, Height int
}

// Backend abstracts the terminal so the view is testable without one.
type Backend interface {
	// Init prepares the terminal (raw mode, mouse reporting).
	Init() error

	// Fini restores the terminal. Safe to call after a failed Init.
	Fini()

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// SetCell stages one cell; Show makes staged cells visible.
	SetCell(x, y int, r rune, style tcell.Style)

	// Show flushes staged cells to the terminal.
	Show()

	// PollEvent blocks for the next event. After Interrupt it returns an
	// EventNone event so the caller can re-check its state.
	PollEvent() Event

	// Interrupt wakes a blocked PollEvent.
	Interrupt()
}
