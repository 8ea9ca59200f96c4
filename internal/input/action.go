package input

// Action identifies an operation the user can trigger.
type Action string

// Actions recognized by the application.
const (
	// ActionNone indicates an unbound gesture.
	ActionNone Action = ""

	// ActionAddPoint adds a vertex at the pointer position.
	ActionAddPoint Action = "draw.point"

	// ActionFinish completes the polygon in progress.
	ActionFinish Action = "draw.finish"

	// ActionClear removes all drawing content.
	ActionClear Action = "draw.clear"

	// ActionUndo reverts the most recent edit.
	ActionUndo Action = "history.undo"

	// ActionRedo re-applies the most recently undone edit.
	ActionRedo Action = "history.redo"

	// ActionSave writes the drawing to the session file.
	ActionSave Action = "session.save"

	// ActionQuit exits the application.
	ActionQuit Action = "app.quit"
)

// Valid reports whether the action is one the application recognizes.
func (a Action) Valid() bool {
	switch a {
	case ActionAddPoint, ActionFinish, ActionClear,
		ActionUndo, ActionRedo, ActionSave, ActionQuit:
		return true
	}
	return false
}
