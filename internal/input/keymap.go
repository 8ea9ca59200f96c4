package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keymap maps key chords to actions. Chords are lowercase strings such as
// "u", "enter", "ctrl+z".
type Keymap struct {
	bindings map[string]Action
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		bindings: map[string]Action{
			"space":  ActionAddPoint,
			"enter":  ActionFinish,
			"f":      ActionFinish,
			"u":      ActionUndo,
			"ctrl+z": ActionUndo,
			"r":      ActionRedo,
			"ctrl+y": ActionRedo,
			"c":      ActionClear,
			"s":      ActionSave,
			"ctrl+s": ActionSave,
			"q":      ActionQuit,
			"esc":    ActionQuit,
			"ctrl+c": ActionQuit,
		},
	}
}

// keymapFile is the YAML schema for keymap overrides.
type keymapFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// LoadFile merges bindings from a YAML file over the current ones.
// A missing file is not an error. Binding a chord to an unknown action is.
func (k *Keymap) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading keymap file %s: %w", path, err)
	}

	var kf keymapFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return fmt.Errorf("parsing keymap file %s: %w", path, err)
	}

	for chord, name := range kf.Bindings {
		action := Action(name)
		if !action.Valid() {
			return fmt.Errorf("keymap file %s: chord %q bound to unknown action %q", path, chord, name)
		}
		k.bindings[chord] = action
	}
	return nil
}

// Bind sets a single binding, replacing any existing one for the chord.
func (k *Keymap) Bind(chord string, action Action) {
	k.bindings[chord] = action
}

// Resolve returns the action bound to a chord, or ActionNone.
func (k *Keymap) Resolve(chord string) Action {
	return k.bindings[chord]
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
