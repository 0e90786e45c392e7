package bounce

import (
	"time"

	"psi-bounce/internal/core"
)

// Setup is the immutable input of a single run.
type Setup struct {
	Pressure float64
	Physics  Physics
	Geometry Geometry
}

// Callbacks receive the output of a run. All three are required.
type Callbacks struct {
	OnTick      func(core.Frame)
	OnBounce    func(index int, height float64)
	OnTerminate func()
}

// Run is one drop of the ball, driven one tick at a time. It doubles as the
// cancel handle for that drop.
type Run struct {
	sim   *Simulator
	cb    Callbacks
	clock core.Clock

	cancelled bool
	done      bool
}

// Start begins a run at the drop height. It panics if a callback is missing.
func Start(setup Setup, cb Callbacks) *Run {
	if cb.OnTick == nil || cb.OnBounce == nil || cb.OnTerminate == nil {
		panic("bounce: Start requires OnTick, OnBounce and OnTerminate callbacks")
	}
	return &Run{
		sim: NewSimulator(setup.Physics, setup.Geometry, Restitution(setup.Pressure)),
		cb:  cb,
	}
}

// Tick advances the run using the wall-clock time of the current frame. The
// first tick has no previous timestamp and advances by zero. It reports
// whether the run wants another tick.
func (r *Run) Tick(now time.Time) bool {
	if r.cancelled || r.done {
		return false
	}
	return r.Step(r.clock.Delta(now))
}

// Step advances the run by dt seconds and reports whether the run wants
// another tick.
func (r *Run) Step(dt float64) bool {
	if r.cancelled || r.done {
		return false
	}
	ev := r.sim.Step(dt)
	if ev.Bounce != nil {
		r.cb.OnBounce(ev.Bounce.Index, ev.Bounce.Height)
	}
	r.cb.OnTick(ev.Frame)
	if r.cancelled {
		return false
	}
	if !ev.Active {
		r.done = true
		r.cb.OnTerminate()
		return false
	}
	return true
}

// Cancel stops the run before its next tick. Cancelling a finished or already
// cancelled run does nothing, and OnTerminate is never called by Cancel.
func (r *Run) Cancel() {
	if r == nil || r.cancelled || r.done {
		return
	}
	r.cancelled = true
	r.sim.stop(ReasonCancelled)
}

// Active reports whether the run still wants ticks.
func (r *Run) Active() bool { return !r.cancelled && !r.done }

// Reason reports why the run stopped.
func (r *Run) Reason() Reason { return r.sim.Reason() }

// Restitution returns the coefficient derived from the run's pressure.
func (r *Run) Restitution() float64 { return r.sim.Restitution() }

// State returns a copy of the simulator state.
func (r *Run) State() State { return r.sim.State() }

// Driver owns at most one active run and cancels it before starting another,
// so only one run ever writes to the callbacks' targets.
type Driver struct {
	run *Run
}

// Restart cancels any active run and starts a new one.
func (d *Driver) Restart(setup Setup, cb Callbacks) *Run {
	d.Cancel()
	d.run = Start(setup, cb)
	return d.run
}

// Cancel cancels the active run, if any.
func (d *Driver) Cancel() {
	if d.run == nil {
		return
	}
	d.run.Cancel()
	d.run = nil
}

// Advance ticks the active run and reports whether it wants another tick.
func (d *Driver) Advance(now time.Time) bool {
	if d.run == nil {
		return false
	}
	if d.run.Tick(now) {
		return true
	}
	d.run = nil
	return false
}

// Running reports whether a run is in progress.
func (d *Driver) Running() bool { return d.run != nil && d.run.Active() }
