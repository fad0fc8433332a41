package physics

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vector is a 2D vector in world units. Screen coordinates are used directly, so +Y points down.
// r2.Point supplies Add, Sub, Mul, Dot, Cross, Ortho (+90°), Norm and Normalize.
type Vector = r2.Point

// Rotate rotates v by the unit rotation vector r (complex multiplication).
// Use ForAngle to build r from an angle.
func Rotate(v, r Vector) Vector {
	return Vector{X: v.X*r.X - v.Y*r.Y, Y: v.X*r.Y + v.Y*r.X}
}

// ForAngle returns the unit vector for angle a (radians).
func ForAngle(a float64) Vector {
	return Vector{X: math.Cos(a), Y: math.Sin(a)}
}

// ClosestPointOnSegment returns the point on segment ab nearest to p.
// A zero-length segment returns a.
func ClosestPointOnSegment(p, a, b Vector) Vector {
	delta := b.Sub(a)
	lenSq := delta.Dot(delta)
	if lenSq == 0 {
		return a
	}
	t := clamp01(p.Sub(a).Dot(delta) / lenSq)
	return a.Add(delta.Mul(t))
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}
