package conversion

import (
	"math"
	"slices"
	"testing"
)

func TestConvertTo(t *testing.T) {
	inMeters := Map{
		"mile": 1609.34,
		"yard": 0.9144,
		"foot": 0.3048,
	}
	units := ConvertTo(100, inMeters)

	if len(units) != len(inMeters) {
		t.Fatalf("got %d units, want %d", len(units), len(inMeters))
	}
	tests := []struct {
		unit string
		want float64
	}{
		{"mile", 100 / 1609.34},
		{"yard", 100 / 0.9144},
		{"foot", 100 / 0.3048},
	}
	for _, tt := range tests {
		c, ok := units.Get(tt.unit)
		if !ok {
			t.Fatalf("missing unit %q", tt.unit)
		}
		if math.Abs(c.Value-tt.want) > 1e-12*tt.want {
			t.Errorf("%s value = %v, want %v", tt.unit, c.Value, tt.want)
		}
		if c.Factor != inMeters[tt.unit] {
			t.Errorf("%s factor = %v, want %v", tt.unit, c.Factor, inMeters[tt.unit])
		}
	}

	if _, ok := units.Get("parsec"); ok {
		t.Error("unexpected unit parsec")
	}
}

func TestConvertToZeroFactor(t *testing.T) {
	units := ConvertTo(1, Map{"none": 0})
	if c, _ := units.Get("none"); !math.IsInf(c.Value, 1) {
		t.Errorf("division by zero factor = %v, want +Inf", c.Value)
	}
}

func TestByteMaps(t *testing.T) {
	units := ConvertTo(1024*1024, ByteInBytes)
	if c, _ := units.Get("MiB"); c.Value != 1 {
		t.Errorf("1 MiB = %v MiB", c.Value)
	}
	if c, _ := units.Get("KiB"); c.Value != 1024 {
		t.Errorf("1 MiB = %v KiB", c.Value)
	}

	bits := ConvertTo(1, BitInBytes)
	if c, _ := bits.Get("bits"); c.Value != 8 {
		t.Errorf("1 byte = %v bits, want 8", c.Value)
	}

	if got, want := len(InBytes), len(BitInBytes)+len(ByteInBytes); got != want {
		t.Errorf("InBytes has %d units, want %d", got, want)
	}
	if _, ok := HumanReadableByteInBytes["KiB"]; ok {
		t.Error("binary units must not leak into the human readable map")
	}
}

func TestMergeLaterWins(t *testing.T) {
	a := Map{"x": 1, "y": 2}
	b := Map{"y": 3}
	merged := Merge(a, b)
	if merged["y"] != 3 || merged["x"] != 1 {
		t.Errorf("Merge = %v", merged)
	}
	if a["y"] != 2 {
		t.Error("Merge must not modify its inputs")
	}
}

func TestNames(t *testing.T) {
	got := HumanReadableByteInBytes.Names()
	want := []string{"bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
