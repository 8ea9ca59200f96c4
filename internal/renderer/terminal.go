package renderer

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen

	mu       sync.Mutex
	shutdown bool
}

// NewTerminal creates a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// Init prepares the terminal and enables mouse reporting, which the
// drawing surface depends on.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	return nil
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.shutdown {
		return
	}
	t.shutdown = true
	t.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetCell stages one cell.
func (t *Terminal) SetCell(x, y int, r rune, style tcell.Style) {
	t.screen.SetContent(x, y, r, nil, style)
}

// Show flushes staged cells to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Interrupt wakes a blocked PollEvent.
func (t *Terminal) Interrupt() {
	t.screen.PostEvent(tcell.NewEventInterrupt(nil)) //nolint:errcheck // best effort wake-up
}

// PollEvent blocks for the next terminal event and converts it.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return Event{Type: EventQuit}
		case *tcell.EventInterrupt:
			return Event{Type: EventNone}
		case *tcell.EventResize:
			w, h := tev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventKey:
			return Event{Type: EventKey, Chord: chordFor(tev)}
		case *tcell.EventMouse:
			if converted, ok := convertMouse(tev); ok {
				return converted
			}
			// Release events and unused buttons are dropped.
		}
	}
}

// chordFor converts a tcell key event into a keymap chord string.
func chordFor(ev *tcell.EventKey) string {
	var chord string
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			chord = "space"
		} else {
			chord = string(ev.Rune())
		}
	case tcell.KeyEnter:
		chord = "enter"
	case tcell.KeyEscape:
		chord = "esc"
	case tcell.KeyTab:
		chord = "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		chord = "backspace"
	case tcell.KeyDelete:
		chord = "delete"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlR:
		return "ctrl+r"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyCtrlY:
		return "ctrl+y"
	case tcell.KeyCtrlZ:
		return "ctrl+z"
	default:
		return ""
	}

	if ev.Modifiers()&tcell.ModCtrl != 0 {
		return "ctrl+" + chord
	}
	return chord
}

// convertMouse converts a tcell mouse event. Returns false for events the
// application does not consume.
func convertMouse(ev *tcell.EventMouse) (Event, bool) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.ButtonPrimary != 0:
		return Event{Type: EventMouse, Mouse: MousePress, MouseX: x, MouseY: y}, true
	case buttons&tcell.ButtonSecondary != 0:
		return Event{Type: EventMouse, Mouse: MouseRightPress, MouseX: x, MouseY: y}, true
	case buttons == tcell.ButtonNone:
		return Event{Type: EventMouse, Mouse: MouseMotion, MouseX: x, MouseY: y}, true
	}
	return Event{}, false
}
