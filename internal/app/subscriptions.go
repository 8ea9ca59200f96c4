package app

import (
	"context"

	"github.com/dshills/polydraw/internal/event"
)

// registerSubscriptions wires the application's event bus listeners.
func (app *Application) registerSubscriptions() error {
	// Trace every event at debug level.
	if _, err := app.bus.SubscribeFunc("**", app.traceEvent); err != nil {
		return err
	}

	// Session writes are worth an info line even when tracing is off.
	if _, err := app.bus.SubscribeFunc("session.*", app.logSessionEvent); err != nil {
		return err
	}

	return nil
}

func (app *Application) traceEvent(_ context.Context, ev event.Event) error {
	// Cursor motion floods the bus; skip it in the trace.
	if ev.Topic == event.TopicCursorMoved {
		return nil
	}
	app.Logger().Debug("event %s from %s", ev.Topic, ev.Metadata.Source)
	return nil
}

func (app *Application) logSessionEvent(_ context.Context, ev event.Event) error {
	if payload, ok := ev.Payload.(event.SessionSaved); ok {
		app.Logger().WithComponent("session").Info("%s: %s (%d polygons)",
			ev.Topic.Base(), payload.Path, payload.Polygons)
	}
	return nil
}
