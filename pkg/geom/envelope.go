package geom

import "math"

// Envelope is an axis-aligned bounding rectangle, or the "null" state when
// all four ordinates are NaN (spec §3).
type Envelope struct {
	MinX, MaxX, MinY, MaxY float64
}

// NullEnvelope returns the empty/null envelope.
func NullEnvelope() Envelope {
	nan := math.NaN()
	return Envelope{MinX: nan, MaxX: nan, MinY: nan, MaxY: nan}
}

// NewEnvelope builds a bounded envelope from two corner points, normalizing
// min/max order.
func NewEnvelope(x1, x2, y1, y2 float64) Envelope {
	e := Envelope{MinX: x1, MaxX: x2, MinY: y1, MaxY: y2}
	if e.MinX > e.MaxX {
		e.MinX, e.MaxX = e.MaxX, e.MinX
	}
	if e.MinY > e.MaxY {
		e.MinY, e.MaxY = e.MaxY, e.MinY
	}
	return e
}

// IsNull reports whether e is the null envelope.
func (e Envelope) IsNull() bool { return math.IsNaN(e.MinX) }

// Width returns MaxX - MinX, or 0 for a null envelope.
func (e Envelope) Width() float64 {
	if e.IsNull() {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns MaxY - MinY, or 0 for a null envelope.
func (e Envelope) Height() float64 {
	if e.IsNull() {
		return 0
	}
	return e.MaxY - e.MinY
}

// Area returns Width()*Height(), 0 for a null or degenerate envelope.
func (e Envelope) Area() float64 {
	if e.IsNull() {
		return 0
	}
	return e.Width() * e.Height()
}

// ExpandToIncludeXY returns a copy of e widened, if necessary, to include (x,y).
func (e Envelope) ExpandToIncludeXY(x, y float64) Envelope {
	if e.IsNull() {
		return Envelope{MinX: x, MaxX: x, MinY: y, MaxY: y}
	}
	if x < e.MinX {
		e.MinX = x
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if y > e.MaxY {
		e.MaxY = y
	}
	return e
}

// ExpandToInclude returns the envelope widened to include other.
func (e Envelope) ExpandToInclude(other Envelope) Envelope {
	if other.IsNull() {
		return e
	}
	if e.IsNull() {
		return other
	}
	return Envelope{
		MinX: math.Min(e.MinX, other.MinX),
		MaxX: math.Max(e.MaxX, other.MaxX),
		MinY: math.Min(e.MinY, other.MinY),
		MaxY: math.Max(e.MaxY, other.MaxY),
	}
}

// ExpandBy returns e expanded by distance d in all directions (d may be
// negative to shrink; a sufficiently negative d yields a null envelope).
func (e Envelope) ExpandBy(d float64) Envelope {
	if e.IsNull() {
		return e
	}
	e.MinX -= d
	e.MaxX += d
	e.MinY -= d
	e.MaxY += d
	if e.MinX > e.MaxX || e.MinY > e.MaxY {
		return NullEnvelope()
	}
	return e
}

// ContainsXY reports whether (x,y) is within the closed rectangle.
func (e Envelope) ContainsXY(x, y float64) bool {
	if e.IsNull() {
		return false
	}
	return x >= e.MinX && x <= e.MaxX && y >= e.MinY && y <= e.MaxY
}

// Contains reports whether other is entirely within e (closed intervals).
func (e Envelope) Contains(other Envelope) bool {
	if e.IsNull() || other.IsNull() {
		return false
	}
	return other.MinX >= e.MinX && other.MaxX <= e.MaxX &&
		other.MinY >= e.MinY && other.MaxY <= e.MaxY
}

// Covers is a synonym of Contains (inclusive boundary), per spec §4.1.
func (e Envelope) Covers(other Envelope) bool { return e.Contains(other) }

// Intersects reports whether e and other share at least one point, using
// closed intervals (spec §4.1).
func (e Envelope) Intersects(other Envelope) bool {
	if e.IsNull() || other.IsNull() {
		return false
	}
	return !(other.MinX > e.MaxX || other.MaxX < e.MinX ||
		other.MinY > e.MaxY || other.MaxY < e.MinY)
}

// Intersection returns the overlap of e and other, or the null envelope if
// they do not intersect.
func (e Envelope) Intersection(other Envelope) Envelope {
	if !e.Intersects(other) {
		return NullEnvelope()
	}
	return Envelope{
		MinX: math.Max(e.MinX, other.MinX),
		MaxX: math.Min(e.MaxX, other.MaxX),
		MinY: math.Max(e.MinY, other.MinY),
		MaxY: math.Min(e.MaxY, other.MaxY),
	}
}

// Distance returns the closest planar distance between e and other, 0 if
// they intersect.
func (e Envelope) Distance(other Envelope) float64 {
	if e.Intersects(other) {
		return 0
	}
	dx := 0.0
	if other.MinX > e.MaxX {
		dx = other.MinX - e.MaxX
	} else if e.MinX > other.MaxX {
		dx = e.MinX - other.MaxX
	}
	dy := 0.0
	if other.MinY > e.MaxY {
		dy = other.MinY - e.MaxY
	} else if e.MinY > other.MaxY {
		dy = e.MinY - other.MaxY
	}
	return math.Sqrt(dx*dx + dy*dy)
}

// Equals reports equality; two null envelopes are equal, a null and a
// non-null are not.
func (e Envelope) Equals(other Envelope) bool {
	if e.IsNull() || other.IsNull() {
		return e.IsNull() == other.IsNull()
	}
	return e.MinX == other.MinX && e.MaxX == other.MaxX &&
		e.MinY == other.MinY && e.MaxY == other.MaxY
}

// Compare imposes the total order of spec §4.1: null < non-null,
// lexicographic on (MinX, MinY, MaxX, MaxY) otherwise. Returns -1, 0, or 1.
func (e Envelope) Compare(other Envelope) int {
	if e.IsNull() && other.IsNull() {
		return 0
	}
	if e.IsNull() {
		return -1
	}
	if other.IsNull() {
		return 1
	}
	for _, pair := range [][2]float64{
		{e.MinX, other.MinX}, {e.MinY, other.MinY},
		{e.MaxX, other.MaxX}, {e.MaxY, other.MaxY},
	} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}
