package predicate

import "github.com/planarith/geom/pkg/geom"

// dimensionOf reports a geometry's topological dimension, treating an empty
// geometry as DimFalse regardless of its static type.
func dimensionOf(g geom.Geometry) geom.Dimension {
	if g == nil || g.IsEmpty() {
		return geom.DimFalse
	}
	return g.Dimension()
}

// Disjoint reports whether A and B share no point (spec §6).
func Disjoint(im *IM) bool { return im.Matches("FF*FF****") }

// Intersects reports whether A and B share at least one point.
func Intersects(im *IM) bool { return !Disjoint(im) }

// Touches reports whether A and B have at least one point in common but
// their interiors don't intersect.
func Touches(a, b geom.Geometry, im *IM) bool {
	if dimensionOf(a) == geom.DimFalse || dimensionOf(b) == geom.DimFalse {
		return false
	}
	return im.Matches("FT*******") || im.Matches("F**T*****") || im.Matches("F***T****")
}

// Crosses reports whether A and B intersect in a geometry of dimension one
// less than the max of their own dimensions, with interiors intersecting
// but neither containing the other.
func Crosses(a, b geom.Geometry, im *IM) bool {
	da, db := dimensionOf(a), dimensionOf(b)
	switch {
	case da == geom.DimLine && db == geom.DimLine:
		return im.Matches("0********")
	case (da == geom.DimPoint && db == geom.DimLine) || (da == geom.DimPoint && db == geom.DimArea):
		return im.Matches("T*T******")
	case (da == geom.DimLine && db == geom.DimPoint) || (da == geom.DimArea && db == geom.DimPoint):
		return im.Matches("T*****T**")
	case da == geom.DimLine && db == geom.DimArea:
		return im.Matches("T*T******")
	case da == geom.DimArea && db == geom.DimLine:
		return im.Matches("T*****T**")
	default:
		return false
	}
}

// Within reports whether every point of A lies in B (interior or boundary)
// and A's interior intersects B's interior.
func Within(im *IM) bool { return im.Matches("T*F**F***") }

// Contains reports whether every point of B lies in A.
func Contains(im *IM) bool { return im.Matches("T*****FF*") }

// Overlaps reports whether A and B have the same dimension, their
// intersection has that dimension too, and neither contains the other.
func Overlaps(a, b geom.Geometry, im *IM) bool {
	da, db := dimensionOf(a), dimensionOf(b)
	if da != db {
		return false
	}
	if da == geom.DimArea {
		return im.Matches("T*T***T**")
	}
	if da == geom.DimLine {
		return im.Matches("1*T***T**")
	}
	return im.Matches("T*T***T**") && !im.Matches("FF*FF****")
}

// Equals reports whether A and B represent the same set of points.
func Equals(im *IM) bool { return im.Matches("T*F**FFF*") }

// Covers reports whether every point of B lies in A (boundary points of B
// may lie in A's boundary or interior; weaker than Contains).
func Covers(im *IM) bool {
	return im.Matches("T*****FF*") || im.Matches("*T****FF*") || im.Matches("***T**FF*") || im.Matches("****T*FF*")
}

// CoveredBy reports whether every point of A lies in B; the converse of
// Covers.
func CoveredBy(im *IM) bool {
	return im.Matches("T*F**F***") || im.Matches("*TF**F***") || im.Matches("**FT*F***") || im.Matches("**F*TF***")
}
