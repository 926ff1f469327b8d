package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/valuekit/pkg/conversion"
	"github.com/go-drift/valuekit/pkg/errors"
	"github.com/go-drift/valuekit/pkg/numeric"
)

func init() {
	RegisterCommand(&Command{
		Name:  "convert",
		Short: "Express a byte count in other units",
		Long: `Convert a quantity of bytes into every bit and byte unit.

The optional unit set narrows the output: bytes (B, KB, KiB, ...), bits
(b, Kb, Kib, ...) or all (default). Values are rounded to 4 places.`,
		Usage: "valuekit convert <bytes> [bytes|bits|all]",
		Run:   runConvert,
	})
}

var unitSets = map[string]conversion.Map{
	"bytes": conversion.ByteInBytes,
	"bits":  conversion.BitInBytes,
	"all":   conversion.InBytes,
}

func runConvert(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", commands["convert"].Usage)
	}
	input, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.New("convert", errors.KindParse, &errors.ParseError{Field: "value", DataType: "number", Got: args[0]})
	}

	set := "all"
	if len(args) > 1 {
		set = args[1]
	}
	units, ok := unitSets[set]
	if !ok {
		return errors.New("convert", errors.KindParse, &errors.ParseError{Field: "unit set", DataType: "bytes, bits or all", Got: set})
	}

	converted := conversion.ConvertTo(input, units)
	for _, name := range units.Names() {
		c, _ := converted.Get(name)
		fmt.Fprintf(stdout, "%-6s %s\n", name, strconv.FormatFloat(numeric.Round(c.Value, 4), 'g', -1, 64))
	}
	return nil
}
