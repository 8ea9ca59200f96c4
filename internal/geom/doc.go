// Package geom provides the 2D value types used by the drawing engine.
//
// Coordinates are logical-space float64 pairs. The package has no knowledge
// of screens, cells, or devices; collaborators convert from device space
// before calling into the engine.
//
// All types have value semantics. PolyLine is a slice type, so callers that
// need an independent copy must use Clone; the engine does this at every
// boundary where aliasing would let history be mutated.
package geom
