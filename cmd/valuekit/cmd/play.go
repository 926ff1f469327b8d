package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-drift/valuekit/cmd/valuekit/internal/config"
	"github.com/go-drift/valuekit/pkg/animation"
	"github.com/go-drift/valuekit/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Run a tween and print every tick",
		Long: `Run a tween preset to completion and print each tick.

Presets come from valuekit.yaml in the --config directory, falling back to
the built-in presets (default, fade-in, fade-out, bounce, snap).

Frame-synchronized presets are stepped by a frame loop at frames.fps
(default 60). Timer-driven presets tick from system timers at their hz.

Flags:
  --frame        Force the frame-synchronized strategy
  --timer        Force the timer-driven strategy
  --hz N         Tick rate for --timer (default 120)
  --list         List the available presets`,
		Usage: "valuekit play [preset] [--frame|--timer] [--hz N] [--list]",
		Run:   runPlay,
	})
}

func runPlay(args []string) error {
	positional, flags, err := splitFlags(args, "hz")
	if err != nil {
		return err
	}

	cfg, err := config.LoadOptional(configDir)
	if err != nil {
		return err
	}
	if _, ok := flags["list"]; ok {
		for _, name := range cfg.PresetNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	var name string
	if len(positional) > 0 {
		name = positional[0]
	}
	preset, err := cfg.Resolve(name)
	if err != nil {
		return err
	}

	if err := applyStrategyFlags(preset, flags); err != nil {
		return err
	}
	return play(preset)
}

func applyStrategyFlags(r *config.Resolved, flags map[string]string) error {
	_, frame := flags["frame"]
	_, timer := flags["timer"]
	hzArg, hasHz := flags["hz"]

	switch {
	case frame && timer:
		return fmt.Errorf("--frame and --timer are mutually exclusive")
	case frame && hasHz:
		return errors.New("play", errors.KindConfig, config.ErrHzWithFrame)
	case frame:
		r.Options.Strategy = animation.FrameSynced{}
	case timer || hasHz:
		var hz float64
		if hasHz {
			v, err := strconv.ParseFloat(hzArg, 64)
			if err != nil {
				return errors.New("play", errors.KindParse, &errors.ParseError{Field: "--hz", DataType: "number", Got: hzArg})
			}
			hz = v
		} else if s, ok := r.Options.Strategy.(animation.TimerDriven); ok {
			hz = s.Hz
		}
		r.Options.Strategy = animation.TimerDriven{Hz: hz}
	}
	return nil
}

// play runs r to completion, printing each tick with its offset from the
// start of the run.
func play(r *config.Resolved) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan float64, 1)
	start := animation.Now()
	opts := r.Options
	opts.OnTick = func(v float64) {
		elapsed := animation.Now().Sub(start)
		fmt.Fprintf(stdout, "%8.1fms  %.4f\n", float64(elapsed)/float64(time.Millisecond), v)
	}
	opts.OnEnd = func(v float64) {
		done <- v
		cancel()
	}

	tw := animation.NewTween()
	defer tw.Dispose()

	fmt.Fprintf(stdout, "%s: %g -> %g\n", r.Name, opts.From, r.To)
	if err := tw.To(r.To, opts); err != nil {
		return err
	}

	if _, timer := opts.Strategy.(animation.TimerDriven); !timer {
		animation.DriveFrames(ctx, r.FrameInterval)
	}
	v := <-done
	fmt.Fprintf(stdout, "done at %g\n", v)
	return nil
}
