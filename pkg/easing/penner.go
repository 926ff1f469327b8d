package easing

import "github.com/tanema/gween/ease"

// FromPenner adapts a gween easing function, which works in float32 on
// (time, begin, change, duration), to a Func over [0, 1].
//
// The float32 round trip means the result is only accurate to about seven
// significant digits.
func FromPenner(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}
