package conversion

// HumanReadableBitInBytes holds the decimal bit units, in bytes.
var HumanReadableBitInBytes = Map{
	"bits": 1.0 / 8,
	"Kb":   1.25e+2,
	"Mb":   1.25e+5,
	"Gb":   1.25e+8,
	"Tb":   1.25e+11,
	"Pb":   1.25e+14,
}

// BitInBytes adds the binary bit units to HumanReadableBitInBytes.
var BitInBytes = Merge(HumanReadableBitInBytes, Map{
	"Kib": 128,
	"Mib": 1.31072e+5,
	"Gib": 1.34217728e+8,
	"Tib": 1.37438953472e+11,
	"Pib": 1.40737488355328e+14,
})

// HumanReadableByteInBytes holds the decimal byte units, in bytes.
var HumanReadableByteInBytes = Map{
	"bytes": 1,
	"KB":    1e+3,
	"MB":    1e+6,
	"GB":    1e+9,
	"TB":    1e+12,
	"PB":    1e+15,
	"EB":    1e+18,
	"ZB":    1e+21,
	"YB":    1e+24,
}

// ByteInBytes adds the binary byte units to HumanReadableByteInBytes.
var ByteInBytes = Merge(HumanReadableByteInBytes, Map{
	"KiB": 1024,
	"MiB": 1.048576e+6,
	"GiB": 1.073741824e+9,
	"TiB": 1.099511627776e+12,
	"PiB": 1.125899906842624e+15,
	"EiB": 1.152921504606847e+18,
	"ZiB": 1.1805916207174113e+21,
	"YiB": 1.2089258196146292e+24,
})

// InBytes is every bit and byte unit.
var InBytes = Merge(BitInBytes, ByteInBytes)
