// Package random generates pseudo-random numbers and UUID strings.
//
// Nothing here is suitable for secrets except UUID, which reads from the
// operating system's cryptographic source.
package random

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	mrand "math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// MtRandMax is the default upper bound of MtRand.
const MtRandMax = 0x7FFFFFFF

// MtRand returns a uniformly distributed integer in the inclusive range
// [lo, hi]. Reversed bounds are swapped.
func MtRand(lo, hi int64) int64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi - lo)
	if span == math.MaxUint64 {
		return int64(mrand.Uint64())
	}
	return lo + int64(mrand.Uint64N(span+1))
}

// MtRandDefault returns an integer in [0, MtRandMax].
func MtRandDefault() int64 { return MtRand(0, MtRandMax) }

// NumUUID returns a UUID-shaped string of five dash separated groups made
// of decimal numbers. The third and fourth groups carry the version 4 and
// variant bits in their numeric value.
//
// It is a weak fallback kept for compatibility; prefer UUID.
func NumUUID() string {
	return numUUID(MtRand)
}

func numUUID(rnd func(lo, hi int64) int64) string {
	group := func(n int, hi int64) string {
		var sb strings.Builder
		for range n {
			sb.WriteString(strconv.FormatInt(rnd(0, hi), 10))
		}
		return sb.String()
	}
	return strings.Join([]string{
		group(2, 0xffff),
		group(1, 0xffff),
		strconv.FormatInt(rnd(0, 0x0fff)|0x4000, 10),
		strconv.FormatInt(rnd(0, 0x3fff)|0x8000, 10),
		group(3, 0xffff),
	}, "-")
}

const uuidTemplate = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"

var processStart = time.Now()

// GenerateUUID returns a version 4 shaped UUID whose hex digits mix a
// random nibble with the current time in milliseconds, then with the
// microseconds elapsed since the process started once the timestamp is
// used up.
//
// It is a weak fallback kept for compatibility; prefer UUID.
func GenerateUUID() string {
	return generateUUID(time.Now().UnixMilli(), time.Since(processStart).Microseconds(), MtRand)
}

func generateUUID(ts, micros int64, rnd func(lo, hi int64) int64) string {
	const digits = "0123456789abcdef"
	out := []byte(uuidTemplate)
	for i, c := range out {
		if c != 'x' && c != 'y' {
			continue
		}
		r := rnd(0, 16)
		if ts > 0 {
			r = (ts + r) % 16
			ts /= 16
		} else {
			r = (micros + r) % 16
			micros /= 16
		}
		if c == 'y' {
			r = r&0x3 | 0x8
		}
		out[i] = digits[r]
	}
	return string(out)
}

// randRead is replaced in tests to exercise the fallback path.
var randRead = rand.Read

// UUID returns a random RFC 4122 version 4 UUID. If the system random
// source fails it falls back to GenerateUUID.
func UUID() string {
	var b [16]byte
	if _, err := randRead(b[:]); err != nil {
		return GenerateUUID()
	}
	b[6] = b[6]&0x0f | 0x40
	b[8] = b[8]&0x3f | 0x80

	var buf [36]byte
	hex.Encode(buf[0:8], b[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], b[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], b[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], b[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], b[10:])
	return string(buf[:])
}
