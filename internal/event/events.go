package event

import (
	"github.com/dshills/polydraw/internal/engine/drawing"
	"github.com/dshills/polydraw/internal/geom"
)

// Drawing event topics.
const (
	// TopicPointAdded is published when a vertex is added to the polygon
	// in progress.
	TopicPointAdded Topic = "drawing.point.added"

	// TopicPolygonFinished is published when the polygon in progress is
	// completed.
	TopicPolygonFinished Topic = "drawing.polygon.finished"

	// TopicDrawingCleared is published when all content is cleared.
	TopicDrawingCleared Topic = "drawing.cleared"

	// TopicCursorMoved is published when the preview cursor moves.
	// High-frequency; subscribers should stay cheap.
	TopicCursorMoved Topic = "drawing.cursor.moved"
)

// History event topics.
const (
	// TopicUndo is published when an edit is undone.
	TopicUndo Topic = "history.undo"

	// TopicRedo is published when an undone edit is re-applied.
	TopicRedo Topic = "history.redo"
)

// Session and config event topics.
const (
	// TopicSessionSaved is published when the drawing is saved to disk.
	TopicSessionSaved Topic = "session.saved"

	// TopicSessionLoaded is published when a drawing is loaded from disk.
	TopicSessionLoaded Topic = "session.loaded"

	// TopicConfigReloaded is published when configuration is reloaded from
	// disk.
	TopicConfigReloaded Topic = "config.reloaded"
)

// PointAdded is the payload for TopicPointAdded.
type PointAdded struct {
	// Point is the vertex that was added.
	Point geom.Point

	// Total is the vertex count of the polygon in progress after the add.
	Total int
}

// PolygonFinished is the payload for TopicPolygonFinished.
type PolygonFinished struct {
	// Polygon is the completed polygon, including its assigned ID.
	Polygon drawing.Polygon
}

// DrawingCleared is the payload for TopicDrawingCleared.
type DrawingCleared struct {
	// PolygonsRemoved is the number of finished polygons discarded.
	PolygonsRemoved int
}

// CursorMoved is the payload for TopicCursorMoved.
type CursorMoved struct {
	Point geom.Point
}

// HistoryApplied is the payload for TopicUndo and TopicRedo.
type HistoryApplied struct {
	// UndoRemaining is the undo stack depth after the operation.
	UndoRemaining int

	// RedoRemaining is the redo stack depth after the operation.
	RedoRemaining int
}

// SessionSaved is the payload for TopicSessionSaved and TopicSessionLoaded.
type SessionSaved struct {
	Path     string
	Polygons int
}

// ConfigReloaded is the payload for TopicConfigReloaded.
type ConfigReloaded struct {
	Path string
}
