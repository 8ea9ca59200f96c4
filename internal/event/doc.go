// Package event provides the in-process event bus for Polydraw.
//
// # Topics
//
// Topics use dot-notation to create hierarchical namespaces:
//
//	drawing.point.added
//	drawing.polygon.finished
//	history.undo
//	config.reloaded
//
// Subscription patterns support two wildcards:
//
//   - "*" matches exactly one segment
//   - "**" matches zero or more segments
//
// Examples:
//
//	drawing.*          matches drawing.cleared (not drawing.point.added)
//	drawing.**         matches drawing.cleared, drawing.point.added
//	history.*          matches history.undo, history.redo
//	**                 matches everything
//
// # Dispatch
//
// Delivery is synchronous in subscription order. A handler panic is
// recovered and counted; it never takes down the publisher. Handler errors
// are collected and returned joined, so one failing subscriber does not
// starve the others.
//
//	bus := event.NewBus()
//	sub := bus.SubscribeFunc("drawing.**", func(ctx context.Context, ev event.Event) error {
//	    ...
//	    return nil
//	})
//	defer bus.Unsubscribe(sub)
//
//	bus.Publish(ctx, event.New(event.TopicPointAdded, payload, "engine"))
package event
