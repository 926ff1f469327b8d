package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/valuekit/pkg/easing"
	"github.com/go-drift/valuekit/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "ease",
		Short: "Sample an easing curve",
		Long: `Print an easing curve sampled at evenly spaced points of [0, 1].

Curve names follow the web convention (easeInOutCubic), the CSS keywords
(ease-in-out), or penner.<name> for the Penner implementations.

Flags:
  --list         List the available curves`,
		Usage: "valuekit ease <name> [samples] | valuekit ease --list",
		Run:   runEase,
	})
}

func runEase(args []string) error {
	positional, flags, err := splitFlags(args)
	if err != nil {
		return err
	}
	if _, ok := flags["list"]; ok {
		for _, name := range easing.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}
	if len(positional) == 0 {
		return fmt.Errorf("usage: %s", commands["ease"].Usage)
	}

	name := positional[0]
	fn, ok := easing.Lookup(name)
	if !ok {
		return errors.New("ease", errors.KindParse, &errors.ParseError{Field: "curve", DataType: "easing name", Got: name})
	}

	samples := 10
	if len(positional) > 1 {
		n, err := strconv.Atoi(positional[1])
		if err != nil || n < 1 {
			return errors.New("ease", errors.KindParse, &errors.ParseError{Field: "samples", DataType: "positive integer", Got: positional[1]})
		}
		samples = n
	}

	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		fmt.Fprintf(stdout, "%.3f  %.6f\n", t, fn(t))
	}
	return nil
}
