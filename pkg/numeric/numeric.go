// Package numeric holds small numeric helpers shared by the other packages.
package numeric

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Round rounds n to the given number of decimal places. Negative places
// round to tens, hundreds and so on.
//
// Ties round towards positive infinity. The decimal shift is done on the
// shortest decimal representation of n rather than by multiplying, so
// Round(1.005, 2) is 1.01 and not 1.
func Round(n float64, places int) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	shifted := shiftDecimal(n, places)
	r := math.Floor(shifted)
	if shifted-r >= 0.5 {
		r++
	}
	return shiftDecimal(r, -places)
}

// shiftDecimal returns n * 10^places, computed on the decimal string so
// no binary rounding error is introduced by the multiplication.
func shiftDecimal(n float64, places int) float64 {
	s := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return n * math.Pow10(places)
	}
	// Out of range results come back as ±Inf or 0 alongside the error.
	v, _ := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(e+places), 64)
	return v
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

// ClosestNumber returns the value in haystack nearest to needle.
// On a tie the earlier value wins. An empty haystack yields 0.
func ClosestNumber(haystack []float64, needle float64) float64 {
	if len(haystack) == 0 {
		return 0
	}
	closest := haystack[0]
	closestDiff := math.Abs(needle - closest)
	for _, current := range haystack[1:] {
		if diff := math.Abs(needle - current); diff < closestDiff {
			closest = current
			closestDiff = diff
		}
	}
	return closest
}

var digitRuns = regexp.MustCompile(`\d+`)

// NumbersFromString extracts the ASCII digit runs from s.
//
// joined is all runs concatenated and read as one number ("#123-456" gives
// 123456); numbers holds each run on its own. ok is false, and numbers nil,
// when s contains no digits.
func NumbersFromString(s string) (joined float64, numbers []float64, ok bool) {
	runs := digitRuns.FindAllString(s, -1)
	if len(runs) == 0 {
		return 0, nil, false
	}
	numbers = make([]float64, len(runs))
	for i, run := range runs {
		numbers[i], _ = strconv.ParseFloat(run, 64)
	}
	joined, _ = strconv.ParseFloat(strings.Join(runs, ""), 64)
	return joined, numbers, true
}
