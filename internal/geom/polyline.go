package geom

import "math"

// PolyLine is an ordered sequence of vertices. Vertices appear in the order
// they were added. A nil PolyLine is a valid empty sequence.
type PolyLine []Point

// Len returns the number of vertices.
func (pl PolyLine) Len() int {
	return len(pl)
}

// IsEmpty reports whether the polyline has no vertices.
func (pl PolyLine) IsEmpty() bool {
	return len(pl) == 0
}

// Clone returns an independent copy of the polyline.
// Clone of a nil or empty polyline returns nil.
func (pl PolyLine) Clone() PolyLine {
	if len(pl) == 0 {
		return nil
	}
	out := make(PolyLine, len(pl))
	copy(out, pl)
	return out
}

// Equal reports whether two polylines have the same vertices in the same
// order. A nil polyline equals an empty one.
func (pl PolyLine) Equal(other PolyLine) bool {
	if len(pl) != len(other) {
		return false
	}
	for i := range pl {
		if pl[i] != other[i] {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of the vertices.
// Returns the zero Rect for an empty polyline.
func (pl PolyLine) Bounds() Rect {
	if len(pl) == 0 {
		return Rect{}
	}
	r := Rect{Min: pl[0], Max: pl[0]}
	for _, p := range pl[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r
}

// SignedArea returns the signed area of the polyline treated as a closed
// polygon, using the shoelace formula. Positive for counterclockwise
// winding, negative for clockwise. Fewer than 3 vertices yields 0.
func (pl PolyLine) SignedArea() float64 {
	n := len(pl)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pl[i].X * pl[j].Y
		area -= pl[j].X * pl[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the closed polygon.
func (pl PolyLine) Area() float64 {
	return math.Abs(pl.SignedArea())
}

// Centroid returns the arithmetic mean of the vertices.
// Returns the zero Point for an empty polyline.
func (pl PolyLine) Centroid() Point {
	if len(pl) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pl {
		sum = sum.Add(p)
	}
	return sum.Scale(1.0 / float64(len(pl)))
}
