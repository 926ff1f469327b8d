// Command valuekit plays tweens, samples easing curves and converts byte
// quantities from the command line.
package main

import (
	"os"

	"github.com/go-drift/valuekit/cmd/valuekit/cmd"
	"github.com/go-drift/valuekit/pkg/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		errors.Report(errors.From("valuekit", err))
		os.Exit(1)
	}
}
