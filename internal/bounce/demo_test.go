package bounce

import (
	"math"
	"testing"
	"time"

	"psi-bounce/internal/core"
)

func TestDemoStartsAtRest(t *testing.T) {
	d := New(DefaultConfig())
	if d.Running() {
		t.Fatal("new demo should not be running")
	}
	if got, want := d.Frame().Position, d.Geometry().Floor(); got != want {
		t.Fatalf("resting position %f, want floor %f", got, want)
	}
	if d.Size() != (core.Size{W: 480, H: 640}) {
		t.Fatalf("unexpected size %+v", d.Size())
	}
}

func TestDemoRunFillsScoreboard(t *testing.T) {
	d := New(DefaultConfig())
	d.Start()
	if !d.Running() {
		t.Fatal("demo should be running after Start")
	}
	if got, want := d.Frame().Position, d.Geometry().DropStart(); got != want {
		t.Fatalf("start position %f, want %f", got, want)
	}

	now := time.Unix(0, 0)
	for i := 0; i < 10000 && d.Running(); i++ {
		d.Update(now)
		now = now.Add(time.Second / 60)
		if d.Frame().Position > d.Geometry().Floor()+1e-9 {
			t.Fatalf("ball below floor at tick %d", i)
		}
	}
	if d.Running() {
		t.Fatal("run did not finish")
	}
	if _, ok := d.Scoreboard().Height(1); !ok {
		t.Fatal("first bounce height not recorded")
	}

	d.Start()
	if _, ok := d.Scoreboard().Height(1); ok {
		t.Fatal("Start should clear the scoreboard")
	}
}

func TestDemoResizeCancelsRun(t *testing.T) {
	d := New(DefaultConfig())
	d.Start()
	run := d.LastRun()
	now := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		d.Update(now)
		now = now.Add(time.Second / 60)
	}

	d.Resize(core.Size{W: 300, H: 440})
	if d.Running() || run.Active() {
		t.Fatal("resize should cancel the run")
	}
	if run.Reason() != ReasonCancelled {
		t.Fatalf("run reason %s, want cancelled", run.Reason())
	}
	g := d.Geometry()
	if math.Abs(g.PixelsPerMeter-200) > 1e-9 {
		t.Fatalf("expected 200 units per meter after resize, got %f", g.PixelsPerMeter)
	}
	if d.Frame().Position != g.Floor() {
		t.Fatalf("resize should rest the ball on the floor, got %f", d.Frame().Position)
	}

	before := d.Frame()
	d.Update(now)
	if d.Frame() != before {
		t.Fatal("cancelled run still moved the ball")
	}
}

func TestDemoPressureControl(t *testing.T) {
	d := New(DefaultConfig())
	controls := d.ParameterControls()
	if len(controls) != 1 || controls[0].Key != "pressure" {
		t.Fatalf("unexpected controls %+v", controls)
	}
	if controls[0].Min != PressureMin || controls[0].Max != PressureMax {
		t.Fatalf("pressure control bounds %v..%v", controls[0].Min, controls[0].Max)
	}

	if !d.SetFloatParameter("pressure", 12) {
		t.Fatal("expected pressure to be adjustable")
	}
	if d.Pressure() != PressureMax {
		t.Fatalf("expected pressure clamped to %.1f, got %f", PressureMax, d.Pressure())
	}
	if d.SetFloatParameter("gravity", 1) {
		t.Fatal("only pressure should be adjustable")
	}

	d.SetFloatParameter("pressure", PressureMin)
	d.Start()
	d.SetFloatParameter("pressure", PressureMax)
	if got := d.LastRun().Restitution(); got != Restitution(PressureMin) {
		t.Fatalf("running run picked up a pressure change: restitution %f", got)
	}

	param, ok := d.Parameters().Lookup("pressure")
	if !ok || param.Value != "8.5" {
		t.Fatalf("snapshot pressure %+v", param)
	}
	if _, ok := d.Parameters().Lookup("cor"); !ok {
		t.Fatal("snapshot missing restitution")
	}
}
