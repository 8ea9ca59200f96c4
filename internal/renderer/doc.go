// Package renderer draws drawing state into a terminal.
//
// The renderer is a read-only collaborator of the engine: it pulls the
// public state (finished polygons, polygon in progress, cursor preview)
// and rasterizes it into a cell buffer, which is flushed to a Backend.
// The engine never knows it exists.
//
// Rasterization maps one logical unit to one terminal cell. Polygon edges
// are drawn with Bresenham line stepping; finished polygons are closed,
// the in-progress polyline is open and ends with a rubber-band segment to
// the cursor when one is set.
//
// The Backend interface isolates tcell so the View is testable against an
// in-memory buffer.
package renderer
