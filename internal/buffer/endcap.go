package buffer

import (
	"math"

	"github.com/planarith/geom/pkg/geom"
)

// endCap returns the points bridging the left-side offset curve's terminal
// point to the right-side offset curve's terminal point at line endpoint
// end, travelling in direction (dx,dy) (spec §4.6 step 2).
func endCap(end geom.Coordinate, dx, dy, distance float64, style EndCapStyle, quadrantSegments int) []geom.Coordinate {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	leftNX, leftNY := -uy, ux

	switch style {
	case EndCapFlat:
		return nil
	case EndCapSquare:
		ext := geom.NewXY(end.X+ux*distance, end.Y+uy*distance)
		return []geom.Coordinate{
			geom.NewXY(ext.X+leftNX*distance, ext.Y+leftNY*distance),
			ext,
			geom.NewXY(ext.X-leftNX*distance, ext.Y-leftNY*distance),
		}
	default: // EndCapRound
		a0 := math.Atan2(leftNY, leftNX)
		steps := quadrantSegments * 2
		var out []geom.Coordinate
		for i := 1; i < steps; i++ {
			t := a0 - math.Pi*float64(i)/float64(steps)
			out = append(out, geom.NewXY(end.X+distance*math.Cos(t), end.Y+distance*math.Sin(t)))
		}
		return out
	}
}
