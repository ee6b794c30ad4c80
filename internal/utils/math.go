// internal/utils/math.go
package utils

import (
	"math"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Direction returns the unit vector from (ax, ay) towards (bx, by) and the distance
// between the points. For coincident points the distance is substituted with eps so
// the result never contains NaN.
func Direction(ax, ay, bx, by, eps float64) (nx, ny, dist float64) {
	dx := bx - ax
	dy := by - ay
	dist = math.Hypot(dx, dy)
	d := dist
	if d == 0 {
		d = eps
	}
	return dx / d, dy / d, dist
}

// Clamp ограничивает значение диапазоном [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampPoint keeps a circle of radius r inside a width x height rectangle.
func ClampPoint(p types.Point, r, width, height float64) types.Point {
	return types.Point{
		X: Clamp(p.X, r, width-r),
		Y: Clamp(p.Y, r, height-r),
	}
}

// Overlaps reports whether two circles intersect (strictly).
func Overlaps(ax, ay, ar, bx, by, br float64) bool {
	return Distance(ax, ay, bx, by) < ar+br
}
