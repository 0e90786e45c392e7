package bounce

import (
	"strconv"

	"psi-bounce/internal/core"
)

const pressureKey = "pressure"

// Parameters reports the values shown on the HUD.
func (d *Demo) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Ball",
			Params: []core.Parameter{
				floatParam(pressureKey, "Pressure (PSI)", d.cfg.Pressure),
				floatParam("cor", "Restitution", Restitution(d.cfg.Pressure)),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				intParam("w", "Width", d.size.W),
				intParam("h", "Height", d.size.H),
			},
		},
	}}
}

// ParameterControls exposes the pressure control.
func (d *Demo) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    pressureKey,
		Label:  "Pressure (PSI)",
		Type:   core.ParamTypeFloat,
		Step:   d.cfg.PressureStep,
		Min:    PressureMin,
		Max:    PressureMax,
		HasMin: true,
		HasMax: true,
	}}
}

// SetFloatParameter updates the pressure for the next run, clamped to the
// control range. A run in progress keeps the pressure it started with.
func (d *Demo) SetFloatParameter(key string, value float64) bool {
	if key != pressureKey {
		return false
	}
	d.cfg.Pressure = d.ParameterControls()[0].Clamp(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
