// Package interpolation provides linear interpolation between scalar and
// vector values.
package interpolation

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Lerp linearly interpolates between a and b.
//
// t = 0 returns a and t = 1 returns b exactly. Values of t outside [0, 1]
// extrapolate along the same line, which overshooting easing curves rely on.
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// Vector2 is a two-component value.
type Vector2[T constraints.Float] struct {
	X T
	Y T
}

// Vector3 is a three-component value.
type Vector3[T constraints.Float] struct {
	X T
	Y T
	Z T
}

// LerpVector2 interpolates each component of a and b.
func LerpVector2[T constraints.Float](a, b Vector2[T], t T) Vector2[T] {
	return Vector2[T]{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}

// LerpVector3 interpolates each component of a and b.
func LerpVector3[T constraints.Float](a, b Vector3[T], t T) Vector3[T] {
	return Vector3[T]{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}

// EaseOutCirc returns sqrt(1 - (x-1)^4).
//
// Deprecated: this is not the circular curve its name suggests.
// Use easing.OutCirc instead.
func EaseOutCirc(x float64) float64 {
	return math.Sqrt(1 - math.Pow(x-1, 4))
}
