package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/valuekit/pkg/animation"
	"github.com/go-drift/valuekit/pkg/animation/animationtest"
	"github.com/go-drift/valuekit/pkg/easing"
)

// This example drives a frame-synchronized tween by hand. A host render
// loop would call StepFrames once per frame instead.
func ExampleTween() {
	clk := animationtest.NewFakeClock()
	defer clk.Install()()

	frames := animation.NewFrameScheduler()
	tw := &animation.Tween{Frames: frames}
	tw.To(100, animation.Options{
		Duration: animation.DurationOf(200 * time.Millisecond),
		Easing:   easing.Linear,
		OnTick:   func(v float64) { fmt.Printf("tick %.0f\n", v) },
		OnEnd:    func(v float64) { fmt.Printf("end %.0f\n", v) },
	})

	for range 5 {
		frames.Step()
		clk.Advance(50 * time.Millisecond)
	}
	// Output:
	// tick 0
	// tick 25
	// tick 50
	// tick 75
	// tick 100
	// end 100
}

// This example runs a timer-driven tween at 10 Hz.
func ExampleTimerDriven() {
	clk := animationtest.NewFakeClock()
	defer clk.Install()()

	tw := &animation.Tween{Timers: clk}
	tw.To(1, animation.Options{
		Duration: animation.DurationOf(300 * time.Millisecond),
		Strategy: animation.TimerDriven{Hz: 10},
		OnTick:   func(v float64) { fmt.Printf("%.2f ", v) },
		OnEnd:    func(float64) { fmt.Println("done") },
	})
	clk.Advance(time.Second)
	// Output: 0.00 0.33 0.67 1.00 done
}

// A zero or negative duration jumps straight to the target.
func ExampleOptions_immediate() {
	tw := animation.NewTween()
	tw.To(42, animation.Options{
		Duration: animation.DurationOf(0),
		OnTick:   func(v float64) { fmt.Println("tick", v) },
		OnEnd:    func(v float64) { fmt.Println("end", v) },
	})
	fmt.Println(tw.IsRunning())
	// Output:
	// tick 42
	// end 42
	// false
}
