package bounce

import (
	"time"

	"psi-bounce/internal/core"
)

// Demo ties the pressure control, the active run and the scoreboard together.
// All methods must be called from the frame loop.
type Demo struct {
	cfg  Config
	size core.Size
	geom Geometry

	driver Driver
	board  *Scoreboard
	frame  core.Frame
	last   *Run
}

// New returns a demo with the ball resting on the floor.
func New(cfg Config) *Demo {
	d := &Demo{cfg: cfg, board: NewScoreboard(cfg.Physics.RecordedBounces)}
	d.Resize(core.Size{W: cfg.Width, H: cfg.Height})
	return d
}

// Name identifies the demo.
func (d *Demo) Name() string { return "bounce" }

// Size returns the current view size.
func (d *Demo) Size() core.Size { return d.size }

// Geometry returns the scene scale for the current view.
func (d *Demo) Geometry() Geometry { return d.geom }

// Frame returns the latest ball position.
func (d *Demo) Frame() core.Frame { return d.frame }

// Scoreboard exposes the bounce-height slots.
func (d *Demo) Scoreboard() *Scoreboard { return d.board }

// Pressure returns the pressure the next run will use.
func (d *Demo) Pressure() float64 { return d.cfg.Pressure }

// Running reports whether a run is in progress.
func (d *Demo) Running() bool { return d.driver.Running() }

// LastRun returns the most recently started run, or nil.
func (d *Demo) LastRun() *Run { return d.last }

// Start cancels any run in progress, clears the scoreboard and drops the ball
// with the current pressure.
func (d *Demo) Start() {
	d.driver.Cancel()
	d.board.Reset()
	d.frame = core.Frame{Position: d.geom.DropStart()}
	d.last = d.driver.Restart(Setup{
		Pressure: d.cfg.Pressure,
		Physics:  d.cfg.Physics,
		Geometry: d.geom,
	}, Callbacks{
		OnTick:      func(f core.Frame) { d.frame = f },
		OnBounce:    func(index int, height float64) { d.board.Record(index, height) },
		OnTerminate: func() {},
	})
}

// Update advances the active run, if any, to the frame time now.
func (d *Demo) Update(now time.Time) {
	d.driver.Advance(now)
}

// Resize cancels any run, rescales the scene to the new view and puts the
// ball back on the floor.
func (d *Demo) Resize(size core.Size) {
	d.driver.Cancel()
	d.size = size
	d.geom = GeometryFor(size, d.cfg.Physics)
	d.board.Reset()
	d.frame = core.Frame{Position: d.geom.Floor()}
}

// ScoreLines renders the scoreboard for display.
func (d *Demo) ScoreLines() []string { return d.board.Lines() }
