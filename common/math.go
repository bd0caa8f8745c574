package common

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

// Vec2 is a 2D vector in screen space (y grows downward).
type Vec2 struct {
	X, Y float64
}

func VecFromCP(v cp.Vector) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// CP converts v to a chipmunk vector.
func (v Vec2) CP() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// LengthSquared avoids the square root where only comparisons matter.
func (v Vec2) LengthSquared() float64 {
	return v.CP().LengthSq()
}

func (v Vec2) Length() float64 {
	return v.CP().Length()
}

func (v Vec2) Scale(s float64) Vec2 {
	return VecFromCP(v.CP().Mult(s))
}

func (v Vec2) Add(o Vec2) Vec2 {
	return VecFromCP(v.CP().Add(o.CP()))
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return VecFromCP(v.CP().Sub(o.CP()))
}

func (v *Vec2) ScaleAssign(s float64) {
	*v = v.Scale(s)
}

func (v *Vec2) AddAssign(o Vec2) {
	*v = v.Add(o)
}

func Lerp(a, b, t float64) float64 {
	return cp.Lerp(a, b, t)
}

// Clamp restricts f to [lo, hi].
func Clamp(f, lo, hi float64) float64 {
	return cp.Clamp(f, lo, hi)
}

// UnitCircle returns a direction sampled uniformly on the unit circle.
func UnitCircle(rng *rand.Rand) Vec2 {
	theta := rng.Float64() * 2 * math.Pi
	return VecFromCP(cp.ForAngle(theta))
}
