package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// Errors returned by bus operations.
var (
	// ErrInvalidTopic indicates a subscription pattern is malformed.
	ErrInvalidTopic = errors.New("invalid topic pattern")

	// ErrHandlerPanic wraps a recovered handler panic.
	ErrHandlerPanic = errors.New("event handler panicked")
)

// HandlerFunc processes a delivered event.
type HandlerFunc func(ctx context.Context, ev Event) error

// Subscription is a handle for a registered handler.
type Subscription struct {
	id      uint64
	pattern Topic
	fn      HandlerFunc
}

// Pattern returns the topic pattern the subscription was registered with.
func (s *Subscription) Pattern() Topic {
	return s.pattern
}

// Stats reports bus delivery counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerErrors uint64
	HandlerPanics uint64
}

// Bus is a synchronous in-process event bus. Delivery happens on the
// publisher's goroutine in subscription order. Safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID uint64

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerErrors atomic.Uint64
	handlerPanics atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeFunc registers fn for every event whose topic matches pattern.
func (b *Bus) SubscribeFunc(pattern Topic, fn HandlerFunc) (*Subscription, error) {
	if fn == nil {
		return nil, errors.New("nil handler")
	}
	if !patternValid(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTopic, pattern)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{id: b.nextID, pattern: pattern, fn: fn}
	b.subs = append(b.subs, sub)
	return sub, nil
}

// Unsubscribe removes a subscription. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every matching subscriber in registration
// order. Handler errors are joined into the returned error; a panicking
// handler is recovered and reported as ErrHandlerPanic.
func (b *Bus) Publish(ctx context.Context, ev Event) error {
	b.published.Add(1)

	b.mu.RLock()
	matched := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if ev.Topic.Match(sub.pattern) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, sub := range matched {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if err := b.dispatch(ctx, sub, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// dispatch runs one handler with panic recovery.
func (b *Bus) dispatch(ctx context.Context, sub *Subscription, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
			err = fmt.Errorf("%w: topic %s: %v", ErrHandlerPanic, ev.Topic, r)
		}
	}()

	if err := sub.fn(ctx, ev); err != nil {
		b.handlerErrors.Add(1)
		return fmt.Errorf("handler for %s: %w", sub.pattern, err)
	}
	b.delivered.Add(1)
	return nil
}

// SubscriberCount returns the number of active subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Stats returns a snapshot of the delivery counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		HandlerErrors: b.handlerErrors.Load(),
		HandlerPanics: b.handlerPanics.Load(),
	}
}

// patternValid checks a subscription pattern: a valid topic whose wildcard
// segments stand alone ("foo.*", not "foo.a*b").
func patternValid(pattern Topic) bool {
	if !pattern.IsValid() {
		return false
	}
	for _, seg := range pattern.Segments() {
		if seg == WildcardSingle || seg == WildcardMulti {
			continue
		}
		if strings.Contains(seg, WildcardSingle) {
			return false
		}
	}
	return true
}
