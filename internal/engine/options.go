package engine

// Default configuration values.
const (
	DefaultMaxUndoEntries = 1000
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithPolygons seeds the engine with already-finished polygons, e.g. from
// a loaded session. The slice is deep-copied.
func WithPolygons(polys []Polygon) Option {
	return func(e *Engine) {
		e.initPolygons = polys
	}
}
