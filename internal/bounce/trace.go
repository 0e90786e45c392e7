package bounce

import (
	"time"

	"psi-bounce/internal/core"
)

// TraceOptions controls a headless run.
type TraceOptions struct {
	// FPS is the nominal frame rate the ticks are spaced at.
	FPS float64
	// Jitter varies each frame interval by up to this fraction.
	Jitter float64
	Seed   int64
	// MaxTicks bounds the run in case it never terminates.
	MaxTicks int
}

// DefaultTraceOptions mirrors a 60 Hz display with no jitter.
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{FPS: 60, Seed: 1, MaxTicks: 100000}
}

// TraceResult summarizes a headless run.
type TraceResult struct {
	Pressure    float64
	Restitution float64
	Ticks       int
	Bounces     int
	Heights     []float64
	// Altitudes holds the height of the ball above the floor, in meters, at
	// every emitted frame.
	Altitudes    []float64
	Reason       Reason
	Terminations int
}

// Trace drives a full run with synthetic frame timestamps, exactly as the
// frame loop would, and collects everything it emits.
func Trace(setup Setup, opts TraceOptions) TraceResult {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = DefaultTraceOptions().MaxTicks
	}
	res := TraceResult{Pressure: setup.Pressure}
	floor := setup.Geometry.Floor()
	ppm := setup.Geometry.PixelsPerMeter

	run := Start(setup, Callbacks{
		OnTick: func(f core.Frame) {
			alt := 0.0
			if ppm > 0 {
				alt = (floor - f.Position) / ppm
			}
			res.Altitudes = append(res.Altitudes, alt)
		},
		OnBounce: func(_ int, height float64) {
			res.Heights = append(res.Heights, height)
		},
		OnTerminate: func() { res.Terminations++ },
	})
	res.Restitution = run.Restitution()

	rng := core.NewRNG(opts.Seed)
	interval := float64(time.Second) / opts.FPS
	now := time.Unix(0, 0)
	for res.Ticks < opts.MaxTicks {
		res.Ticks++
		if !run.Tick(now) {
			break
		}
		now = now.Add(time.Duration(interval * (1 + rng.Spread(opts.Jitter))))
	}
	if run.Active() {
		run.Cancel()
	}

	res.Reason = run.Reason()
	res.Bounces = run.State().Bounces
	return res
}
