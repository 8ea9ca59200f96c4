package app

import (
	"context"
	"errors"
	"time"

	"github.com/dshills/polydraw/internal/event"
	"github.com/dshills/polydraw/internal/geom"
	"github.com/dshills/polydraw/internal/input"
	"github.com/dshills/polydraw/internal/renderer"
)

// errQuit signals a requested shutdown inside the event loop.
var errQuit = errors.New("quit requested")

// Run starts the terminal and processes events until the user quits or
// ctx is canceled. It owns the screen for its whole duration.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		term, err := renderer.NewTerminal()
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		app.backend = term
	}
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}

	app.running.Store(true)
	defer app.running.Store(false)
	defer close(app.done)

	// Cancellation wakes the poll so the loop can observe ctx.
	stop := context.AfterFunc(ctx, app.backend.Interrupt)
	defer stop()

	w, h := app.backend.Size()
	app.view.Resize(w, h)
	app.render()

	app.logger.Info("event loop started (%dx%d)", w, h)

	for {
		if ctx.Err() != nil {
			break
		}

		ev := app.backend.PollEvent()
		if err := app.handleEvent(ev); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			app.logger.Error("event: %v", err)
		}
		app.render()
	}

	if app.Config().Session.Autosave {
		if err := app.SaveSession(); err != nil {
			app.logger.Error("autosave: %v", err)
		}
	}

	app.logger.Info("event loop stopped")
	return nil
}

// Done is closed when the event loop exits.
func (app *Application) Done() <-chan struct{} {
	return app.done
}

// Stop asks a running event loop to exit.
func (app *Application) Stop() {
	if app.running.Load() && app.backend != nil {
		app.backend.Interrupt()
	}
}

// requestRender wakes the event loop so the next iteration redraws.
func (app *Application) requestRender() {
	if app.running.Load() && app.backend != nil {
		app.backend.Interrupt()
	}
}

func (app *Application) render() {
	app.view.Render(app.engine, app.backend)
}

// handleEvent routes one terminal event. Returns errQuit to end the loop.
func (app *Application) handleEvent(ev renderer.Event) error {
	switch ev.Type {
	case renderer.EventQuit:
		return errQuit

	case renderer.EventNone:
		// Wake-up from Interrupt; Run re-checks ctx and redraws.
		return nil

	case renderer.EventResize:
		app.view.Resize(ev.Width, ev.Height)
		return nil

	case renderer.EventKey:
		return app.applyAction(app.keymap.Resolve(ev.Chord))

	case renderer.EventMouse:
		return app.handleMouse(ev)
	}
	return nil
}

// handleMouse maps clicks and motion onto drawing operations. A single
// left click adds a vertex, a double click completes the polygon, and a
// right click completes it directly.
func (app *Application) handleMouse(ev renderer.Event) error {
	p := geom.Pt(float64(ev.MouseX), float64(ev.MouseY))

	switch ev.Mouse {
	case renderer.MousePress:
		click := app.clicks.Record(input.ClickPos{X: ev.MouseX, Y: ev.MouseY}, time.Now())
		if click == input.ClickDouble {
			app.finishPolygon()
			return nil
		}
		app.addPoint(p)

	case renderer.MouseRightPress:
		app.finishPolygon()

	case renderer.MouseMotion:
		app.engine.SetCursor(p)
		app.publish(event.New(event.TopicCursorMoved, event.CursorMoved{Point: p}, "input"))
	}
	return nil
}

// applyAction executes one keymap action.
func (app *Application) applyAction(action input.Action) error {
	switch action {
	case input.ActionAddPoint:
		if p, ok := app.engine.Cursor(); ok {
			app.addPoint(p)
		}

	case input.ActionFinish:
		app.finishPolygon()

	case input.ActionClear:
		removed := app.engine.FinishedCount()
		if err := app.engine.Clear(); err != nil {
			app.logger.Debug("clear: %v", err)
			return nil
		}
		app.publish(event.New(event.TopicDrawingCleared, event.DrawingCleared{
			PolygonsRemoved: removed,
		}, "input"))

	case input.ActionUndo:
		if err := app.engine.Undo(); err != nil {
			app.logger.Debug("undo: %v", err)
			return nil
		}
		app.publish(event.New(event.TopicUndo, app.historyPayload(), "input"))

	case input.ActionRedo:
		if err := app.engine.Redo(); err != nil {
			app.logger.Debug("redo: %v", err)
			return nil
		}
		app.publish(event.New(event.TopicRedo, app.historyPayload(), "input"))

	case input.ActionSave:
		return app.SaveSession()

	case input.ActionQuit:
		return errQuit
	}
	return nil
}

func (app *Application) addPoint(p geom.Point) {
	app.engine.AddPoint(p)
	app.publish(event.New(event.TopicPointAdded, event.PointAdded{
		Point: p,
		Total: app.engine.Current().Len(),
	}, "input"))
}

func (app *Application) finishPolygon() {
	poly, err := app.engine.FinishPolygon()
	if err != nil {
		app.logger.Debug("finish: %v", err)
		return
	}
	app.publish(event.New(event.TopicPolygonFinished, event.PolygonFinished{Polygon: poly}, "input"))
}

func (app *Application) historyPayload() event.HistoryApplied {
	return event.HistoryApplied{
		UndoRemaining: app.engine.UndoCount(),
		RedoRemaining: app.engine.RedoCount(),
	}
}
