package bounce

import (
	"math"

	"psi-bounce/internal/core"
)

// Reason records why a simulator stopped.
type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonSettled means the impact speed fell below the rest threshold.
	ReasonSettled
	// ReasonBounceCap means the bounce limit was reached first.
	ReasonBounceCap
	// ReasonCancelled means the run was cancelled from outside.
	ReasonCancelled
)

func (r Reason) String() string {
	switch r {
	case ReasonSettled:
		return "settled"
	case ReasonBounceCap:
		return "bounce-cap"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "running"
	}
}

// State is the mutable part of a simulation. Velocity is in m/s with positive
// pointing down; Position is in screen units.
type State struct {
	Position float64
	Velocity float64
	Bounces  int
	Heights  []float64
	Active   bool
}

// Bounce is a recorded bounce height in meters. Index starts at 1.
type Bounce struct {
	Index  int
	Height float64
}

// Event is the outcome of a single Step.
type Event struct {
	Frame  core.Frame
	Bounce *Bounce
	Active bool
}

// Simulator integrates the vertical motion of one dropped ball.
type Simulator struct {
	physics Physics
	geom    Geometry
	cor     float64

	state  State
	reason Reason
}

// NewSimulator places a ball at rest at the drop start of geom.
func NewSimulator(p Physics, geom Geometry, cor float64) *Simulator {
	return &Simulator{
		physics: p,
		geom:    geom,
		cor:     cor,
		state: State{
			Position: geom.DropStart(),
			Heights:  make([]float64, 0, p.RecordedBounces),
			Active:   true,
		},
	}
}

// Restitution returns the coefficient applied at every bounce.
func (s *Simulator) Restitution() float64 { return s.cor }

// Reason reports why the simulator stopped, or ReasonNone while active.
func (s *Simulator) Reason() Reason { return s.reason }

// State returns a copy of the current state.
func (s *Simulator) State() State {
	st := s.state
	st.Heights = append([]float64(nil), s.state.Heights...)
	return st
}

// Step advances the ball by dt seconds. A non-positive dt leaves the state
// untouched and only reports the current frame.
func (s *Simulator) Step(dt float64) Event {
	st := &s.state
	var ev Event
	if st.Active && dt > 0 {
		st.Velocity += s.physics.Gravity * dt
		st.Position += st.Velocity * dt * s.geom.PixelsPerMeter

		if floor := s.geom.Floor(); st.Position >= floor {
			st.Position = floor

			// Decided on the impact speed, before restitution is applied.
			settled := math.Abs(st.Velocity) < s.physics.RestThreshold

			if st.Bounces < s.physics.RecordedBounces {
				h := st.Velocity * st.Velocity / (2 * s.physics.Gravity)
				st.Heights = append(st.Heights, h)
				ev.Bounce = &Bounce{Index: st.Bounces + 1, Height: h}
			}

			st.Velocity = -st.Velocity * s.cor
			st.Bounces++

			switch {
			case settled:
				s.stop(ReasonSettled)
			case st.Bounces >= s.physics.MaxBounces:
				s.stop(ReasonBounceCap)
			}
		}
	}
	ev.Frame = core.Frame{Position: st.Position}
	ev.Active = st.Active
	return ev
}

func (s *Simulator) stop(r Reason) {
	if !s.state.Active {
		return
	}
	s.state.Active = false
	s.reason = r
}
