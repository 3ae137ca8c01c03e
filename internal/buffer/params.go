// Package buffer implements spec §4.6's buffer builder: offset curves with
// configurable end caps and joins, concatenated through the noder and
// unioned via the overlay engine into a clean polygonal result.
package buffer

// EndCapStyle controls how an open line's endpoints are capped.
type EndCapStyle int

const (
	EndCapRound EndCapStyle = iota
	EndCapFlat
	EndCapSquare
)

// JoinStyle controls how offset segments are connected at an outside turn.
type JoinStyle int

const (
	JoinRound JoinStyle = iota
	JoinMitre
	JoinBevel
)

// BufferParameters configures Buffer, following the teacher's plain-struct-
// plus-Default-constructor options shape (spec §4.6).
type BufferParameters struct {
	QuadrantSegments int
	EndCapStyle      EndCapStyle
	JoinStyle        JoinStyle
	MitreLimit       float64
}

// DefaultBufferParameters returns the conventional defaults: 8 segments per
// quadrant, round caps and joins, mitre limit 5.0.
func DefaultBufferParameters() BufferParameters {
	return BufferParameters{
		QuadrantSegments: 8,
		EndCapStyle:      EndCapRound,
		JoinStyle:        JoinRound,
		MitreLimit:       5.0,
	}
}
