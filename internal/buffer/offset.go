package buffer

import (
	"math"

	"github.com/planarith/geom/pkg/geom"
)

// buildSide walks coords (at least 2 points, no repeated consecutive
// points) and produces the offset curve on one side, with joins inserted at
// each interior vertex: side=+1 is the left of the travel direction, side=-1
// is the right (spec §4.6 step 1).
func buildSide(coords []geom.Coordinate, side, distance float64, params BufferParameters) []geom.Coordinate {
	n := len(coords)
	if n < 2 {
		return nil
	}
	var out []geom.Coordinate
	nx0, ny0 := unitNormal(coords[0], coords[1], side)
	out = append(out, geom.NewXY(coords[0].X+nx0*distance, coords[0].Y+ny0*distance))

	for i := 0; i < n-1; i++ {
		p0, p1 := coords[i], coords[i+1]
		nx, ny := unitNormal(p0, p1, side)
		segEnd := geom.NewXY(p1.X+nx*distance, p1.Y+ny*distance)

		if i+1 < n-1 {
			p2 := coords[i+2]
			nx2, ny2 := unitNormal(p1, p2, side)
			nextStart := geom.NewXY(p1.X+nx2*distance, p1.Y+ny2*distance)
			out = append(out, segEnd)
			out = append(out, connect(p1, nx, ny, nx2, ny2, side, distance, params)...)
			out = append(out, nextStart)
		} else {
			out = append(out, segEnd)
		}
	}
	return out
}

// ringSide offsets a closed ring (coords[0] == coords[len(coords)-1]) on one
// side, inserting a join at every vertex including the wraparound join
// between the last and first edges. Returns a closed loop (first point
// repeated at the end) or nil if the ring is too short to offset.
func ringSide(coords []geom.Coordinate, side, distance float64, params BufferParameters) []geom.Coordinate {
	m := len(coords) - 1 // distinct vertex count
	if m < 3 {
		return nil
	}
	verts := coords[:m]

	var out []geom.Coordinate
	for i := 0; i < m; i++ {
		p0, p1 := verts[i], verts[(i+1)%m]
		nx, ny := unitNormal(p0, p1, side)
		out = append(out, geom.NewXY(p0.X+nx*distance, p0.Y+ny*distance))
		out = append(out, geom.NewXY(p1.X+nx*distance, p1.Y+ny*distance))

		p2 := verts[(i+2)%m]
		nx2, ny2 := unitNormal(p1, p2, side)
		out = append(out, connect(p1, nx, ny, nx2, ny2, side, distance, params)...)
	}
	out = append(out, out[0])
	return out
}

// connect returns the interior points (excluding both shared endpoints,
// which the caller already appended) bridging the offset segment ending
// with normal (nx,ny) and the one starting with normal (nx2,ny2), both
// rooted at vertex p.
func connect(p geom.Coordinate, nx, ny, nx2, ny2, side, distance float64, params BufferParameters) []geom.Coordinate {
	cross := nx*ny2 - ny*nx2
	dot := nx*nx2 + ny*ny2
	outside := side*cross < -1e-12
	reversal := dot < -0.999 && math.Abs(cross) < 1e-6

	switch {
	case reversal:
		return arc(p, nx, ny, nx2, ny2, distance, params.QuadrantSegments*2)
	case outside:
		switch params.JoinStyle {
		case JoinBevel:
			return nil
		case JoinMitre:
			if pt, ok := mitrePoint(p, nx, ny, nx2, ny2, distance, params.MitreLimit); ok {
				return []geom.Coordinate{pt}
			}
			return nil
		default:
			return arc(p, nx, ny, nx2, ny2, distance, params.QuadrantSegments)
		}
	default:
		// inside turn: analytic intersection of the two offset lines, or a
		// direct closing segment (no extra point) if they don't meet.
		a0 := geom.NewXY(p.X+nx*distance, p.Y+ny*distance)
		d0x, d0y := -ny, nx
		a1 := geom.NewXY(p.X+nx2*distance, p.Y+ny2*distance)
		d1x, d1y := -ny2, nx2
		if pt, ok := lineIntersect(a0, d0x, d0y, a1, d1x, d1y); ok {
			return []geom.Coordinate{pt}
		}
		return nil
	}
}

// arc emits quadrantSegments-scaled points sweeping from normal (nx,ny) to
// (nx2,ny2) around center p at radius |distance|.
func arc(p geom.Coordinate, nx, ny, nx2, ny2, distance float64, quadrantSegments int) []geom.Coordinate {
	a0 := math.Atan2(ny, nx)
	a1 := math.Atan2(ny2, nx2)
	sweep := a1 - a0
	for sweep <= -math.Pi {
		sweep += 2 * math.Pi
	}
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	steps := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2) * float64(quadrantSegments)))
	if steps < 1 {
		steps = 1
	}
	var out []geom.Coordinate
	for i := 1; i < steps; i++ {
		t := a0 + sweep*float64(i)/float64(steps)
		out = append(out, geom.NewXY(p.X+distance*math.Cos(t), p.Y+distance*math.Sin(t)))
	}
	return out
}

// mitrePoint returns the analytic intersection of the two offset lines
// rooted at p, or ok=false if it exceeds mitreLimit*|distance| (spec §4.6:
// "fallback to bevel").
func mitrePoint(p geom.Coordinate, nx, ny, nx2, ny2, distance, mitreLimit float64) (geom.Coordinate, bool) {
	a0 := geom.NewXY(p.X+nx*distance, p.Y+ny*distance)
	d0x, d0y := -ny, nx
	a1 := geom.NewXY(p.X+nx2*distance, p.Y+ny2*distance)
	d1x, d1y := -ny2, nx2
	pt, ok := lineIntersect(a0, d0x, d0y, a1, d1x, d1y)
	if !ok {
		return geom.Coordinate{}, false
	}
	if pt.Distance(p) > mitreLimit*math.Abs(distance) {
		return geom.Coordinate{}, false
	}
	return pt, true
}

// lineIntersect solves for the intersection of line a (through point a0,
// direction (d0x,d0y)) and line b (through a1, direction (d1x,d1y)).
func lineIntersect(a0 geom.Coordinate, d0x, d0y float64, a1 geom.Coordinate, d1x, d1y float64) (geom.Coordinate, bool) {
	denom := d0x*d1y - d0y*d1x
	if math.Abs(denom) < 1e-12 {
		return geom.Coordinate{}, false
	}
	ex, ey := a1.X-a0.X, a1.Y-a0.Y
	t := (ex*d1y - ey*d1x) / denom
	return geom.NewXY(a0.X+d0x*t, a0.Y+d0y*t), true
}

// unitNormal returns the unit normal of segment p0->p1, rotated to the
// requested side (+1 left, -1 right of the travel direction).
func unitNormal(p0, p1 geom.Coordinate, side float64) (float64, float64) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	ux, uy := dx/length, dy/length
	return side * -uy, side * ux
}
