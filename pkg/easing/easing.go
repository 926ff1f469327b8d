// Package easing provides easing curves that map linear progress to eased
// progress.
//
// Every curve takes t in [0, 1] and returns 0 at t = 0 and 1 at t = 1.
// Back and elastic curves overshoot, so their output may leave [0, 1] in
// between; consumers must not clamp it.
//
// The polynomial, trigonometric and exponential curves follow the classic
// Penner formulas evaluated in float64, in the same operation order as the
// reference web implementation, so sampled values match it exactly.
package easing

import "math"

// Func maps a progress fraction to an eased fraction.
type Func func(t float64) float64

// BackOvershoot is the default overshoot amount for the back curves
// (about 10% past the target).
const BackOvershoot = 1.70158

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 { return t * (2 - t) }

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func InCubic(t float64) float64 { return t * t * t }

func OutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	d := 2*t - 2
	return (t-1)*(d*d) + 1
}

func InQuart(t float64) float64 { return t * t * t * t }

func OutQuart(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	t--
	return 1 - 8*t*t*t*t
}

func InQuint(t float64) float64 { return t * t * t * t * t }

func OutQuint(t float64) float64 {
	t--
	return 1 + t*t*t*t*t
}

func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	t--
	return 1 + 16*t*t*t*t*t
}

func InSine(t float64) float64 { return 1 - math.Cos((t*math.Pi)/2) }

func OutSine(t float64) float64 { return math.Sin((t * math.Pi) / 2) }

func InOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func InOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

func InCirc(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

func OutCirc(t float64) float64 {
	d := t - 1
	return math.Sqrt(1 - d*d)
}

func InOutCirc(t float64) float64 {
	if t < 0.5 {
		d := 2 * t
		return (1 - math.Sqrt(1-d*d)) / 2
	}
	d := 2*t - 2
	return (math.Sqrt(1-d*d) + 1) / 2
}

// InBack pulls back slightly before accelerating towards the target.
func InBack(t float64) float64 { return InBackS(t, BackOvershoot) }

// OutBack overshoots the target before settling.
func OutBack(t float64) float64 { return OutBackS(t, BackOvershoot) }

// InOutBack combines InBack and OutBack.
func InOutBack(t float64) float64 { return InOutBackS(t, BackOvershoot) }

// InBackS is InBack with a custom overshoot amount s.
func InBackS(t, s float64) float64 {
	return t * t * ((s+1)*t - s)
}

// OutBackS is OutBack with a custom overshoot amount s.
func OutBackS(t, s float64) float64 {
	t--
	return t*t*((s+1)*t+s) + 1
}

// InOutBackS is InOutBack with a custom overshoot amount s.
func InOutBackS(t, s float64) float64 {
	s *= 1.525
	if t < 0.5 {
		d := t * 2
		return d * d * ((s+1)*t*2 - s) / 2
	}
	d := t*2 - 2
	return (d*d*((s+1)*(t*2-2)+s) + 2) / 2
}

func InElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return -math.Pow(2, 10*(t-1)) * math.Sin((t-1.1)*5*math.Pi)
}

func OutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t-0.1)*5*math.Pi) + 1
}

func InOutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	t *= 2
	if t < 1 {
		return -0.5 * math.Pow(2, 10*(t-1)) * math.Sin((t-1.1)*5*math.Pi)
	}
	return math.Pow(2, -10*(t-1))*math.Sin((t-1.1)*5*math.Pi)*0.5 + 1
}

// OutBounce decelerates in a series of diminishing bounces.
func OutBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func InBounce(t float64) float64 { return 1 - OutBounce(1-t) }

func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) / 2
	}
	return (1 + OutBounce(2*t-1)) / 2
}
