package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/valuekit/pkg/errors"
	"github.com/go-drift/valuekit/pkg/random"
)

func init() {
	RegisterCommand(&Command{
		Name:  "uuid",
		Short: "Generate UUIDs",
		Long: `Generate random version 4 UUIDs.

Flags:
  --numeric      Numeric-group variant (not RFC 4122)
  --fallback     Timestamp-seeded generator used when no secure source exists
  -n N           Number of UUIDs to print (default 1)`,
		Usage: "valuekit uuid [--numeric|--fallback] [-n N]",
		Run:   runUUID,
	})
}

func runUUID(args []string) error {
	_, flags, err := splitFlags(args, "n")
	if err != nil {
		return err
	}

	count := 1
	if v, ok := flags["n"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return errors.New("uuid", errors.KindParse, &errors.ParseError{Field: "-n", DataType: "positive integer", Got: v})
		}
		count = n
	}

	gen := random.UUID
	_, numeric := flags["numeric"]
	_, fallback := flags["fallback"]
	switch {
	case numeric && fallback:
		return fmt.Errorf("--numeric and --fallback are mutually exclusive")
	case numeric:
		gen = random.NumUUID
	case fallback:
		gen = random.GenerateUUID
	}

	for range count {
		fmt.Fprintln(stdout, gen())
	}
	return nil
}
