package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		chord string
		want  Action
	}{
		{"enter", ActionFinish},
		{"u", ActionUndo},
		{"ctrl+z", ActionUndo},
		{"r", ActionRedo},
		{"c", ActionClear},
		{"q", ActionQuit},
		{"x", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.chord, func(t *testing.T) {
			if got := km.Resolve(tt.chord); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.chord, got, tt.want)
			}
		})
	}
}

func TestKeymapBind(t *testing.T) {
	km := DefaultKeymap()
	km.Bind("x", ActionClear)

	if got := km.Resolve("x"); got != ActionClear {
		t.Errorf("Resolve(x) = %q, want %q", got, ActionClear)
	}
}

func TestKeymapLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	content := `
bindings:
  "ctrl+z": history.redo
  "z": history.undo
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	km := DefaultKeymap()
	if err := km.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got := km.Resolve("ctrl+z"); got != ActionRedo {
		t.Errorf("overridden Resolve(ctrl+z) = %q, want %q", got, ActionRedo)
	}
	if got := km.Resolve("z"); got != ActionUndo {
		t.Errorf("new Resolve(z) = %q, want %q", got, ActionUndo)
	}
	// Defaults not mentioned in the file survive.
	if got := km.Resolve("enter"); got != ActionFinish {
		t.Errorf("Resolve(enter) = %q, want %q", got, ActionFinish)
	}
}

func TestKeymapLoadFileMissing(t *testing.T) {
	km := DefaultKeymap()
	if err := km.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing keymap file should not be an error: %v", err)
	}
}

func TestKeymapLoadFileUnknownAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	if err := os.WriteFile(path, []byte("bindings:\n  \"x\": draw.fnish\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := DefaultKeymap().LoadFile(path); err == nil {
		t.Error("unknown action should be rejected")
	}
}

func TestClickTrackerDoubleClick(t *testing.T) {
	ct := NewClickTracker(400*time.Millisecond, 1)
	base := time.Now()

	if got := ct.Record(ClickPos{X: 5, Y: 5}, base); got != ClickSingle {
		t.Errorf("first click = %v, want single", got)
	}
	if got := ct.Record(ClickPos{X: 5, Y: 5}, base.Add(100*time.Millisecond)); got != ClickDouble {
		t.Errorf("second quick click = %v, want double", got)
	}
	// A third rapid click starts a new sequence.
	if got := ct.Record(ClickPos{X: 5, Y: 5}, base.Add(200*time.Millisecond)); got != ClickSingle {
		t.Errorf("third click = %v, want single", got)
	}
}

func TestClickTrackerTooSlow(t *testing.T) {
	ct := NewClickTracker(400*time.Millisecond, 1)
	base := time.Now()

	ct.Record(ClickPos{X: 5, Y: 5}, base)
	if got := ct.Record(ClickPos{X: 5, Y: 5}, base.Add(time.Second)); got != ClickSingle {
		t.Errorf("slow second click = %v, want single", got)
	}
}

func TestClickTrackerTooFar(t *testing.T) {
	ct := NewClickTracker(400*time.Millisecond, 1)
	base := time.Now()

	ct.Record(ClickPos{X: 5, Y: 5}, base)
	if got := ct.Record(ClickPos{X: 9, Y: 5}, base.Add(50*time.Millisecond)); got != ClickSingle {
		t.Errorf("distant second click = %v, want single", got)
	}
}

func TestClickTrackerReset(t *testing.T) {
	ct := NewClickTracker(400*time.Millisecond, 1)
	base := time.Now()

	ct.Record(ClickPos{X: 5, Y: 5}, base)
	ct.Reset()
	if got := ct.Record(ClickPos{X: 5, Y: 5}, base.Add(50*time.Millisecond)); got != ClickSingle {
		t.Errorf("click after reset = %v, want single", got)
	}
}
