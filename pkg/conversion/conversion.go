// Package conversion converts a value into several units at once using
// ratio maps.
//
// A Map assigns each unit the number of base units it contains. Converting
// an input expressed in base units divides it by every factor:
//
//	inMeters := conversion.Map{"mile": 1609.34, "yard": 0.9144}
//	units := conversion.ConvertTo(100, inMeters)
//	units.Get("yard") // {Value: 109.36..., Factor: 0.9144}
package conversion

import (
	"maps"
	"slices"
)

// Map maps unit names to conversion factors expressed in base units.
type Map map[string]float64

// Conversion is one converted unit.
type Conversion struct {
	// Value is the input divided by Factor.
	Value float64
	// Factor is the ratio from the map used to compute Value.
	Factor float64
}

// Units holds the result of ConvertTo, keyed by unit name.
type Units map[string]Conversion

// ConvertTo converts input, expressed in base units, into every unit of m.
func ConvertTo(input float64, m Map) Units {
	units := make(Units, len(m))
	for unit, factor := range m {
		units[unit] = Conversion{
			Value:  input / factor,
			Factor: factor,
		}
	}
	return units
}

// Get returns the conversion for unit and whether it exists.
func (u Units) Get(unit string) (Conversion, bool) {
	c, ok := u[unit]
	return c, ok
}

// Names returns the unit names ordered by ascending factor, ties broken by name.
func (m Map) Names() []string {
	names := slices.Collect(maps.Keys(m))
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case m[a] < m[b]:
			return -1
		case m[a] > m[b]:
			return 1
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	return names
}

// Merge returns a new Map containing every entry of ms. Later maps win on
// duplicate unit names.
func Merge(ms ...Map) Map {
	merged := make(Map)
	for _, m := range ms {
		maps.Copy(merged, m)
	}
	return merged
}
