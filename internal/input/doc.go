// Package input maps user gestures to drawing actions.
//
// The package is deliberately backend-agnostic: the terminal layer
// converts its native events into chord strings ("ctrl+z", "enter", "u")
// and screen positions, and this package resolves them against the active
// keymap and click tracking state. That keeps bindings testable without a
// terminal.
//
// Default bindings can be overridden from a YAML keymap file:
//
//	bindings:
//	  "ctrl+z": history.undo
//	  "y": history.redo
package input
