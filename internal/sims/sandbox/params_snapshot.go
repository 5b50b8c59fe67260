package sandbox

import (
	"strconv"

	"particle-sim/internal/core"
	"particle-sim/pkg/sims/sand"
)

const maxBrush = 32

func (w *World) Parameters() core.ParameterSnapshot {
	census := w.grid.Census()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("background", "Background", w.cfg.Background),
				intParam("ambient", "Ambient K", int(w.cfg.AmbientKelvin)),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam("heat", "Heat model", int(w.grid.HeatModel())),
				stringParam("heat_name", "Heat", w.grid.HeatModel().String()),
				int64Param("tick", "Tick", int64(w.grid.Tick())),
				intParam("materials", "Materials", w.table.Len()),
			},
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				intParam("solid", "Solid", census.Phases[sand.PhaseSolid]),
				intParam("powder", "Powder", census.Phases[sand.PhasePowder]),
				intParam("liquid", "Liquid", census.Phases[sand.PhaseLiquid]),
				intParam("gas", "Gas", census.Phases[sand.PhaseGas]),
				intParam("t_max", "Max K", int(census.MaxTemperature)),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush", "Brush radius", w.brush),
				intParam("noise", "Noise strength", int(w.cfg.NoiseStrength)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "heat", Label: "Heat model", Type: core.ParamTypeInt, Step: 1, Min: float64(sand.HeatFull), Max: float64(sand.HeatOff), HasMin: true, HasMax: true},
		{Key: "brush", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxBrush, HasMin: true, HasMax: true},
		{Key: "noise", Label: "Noise strength", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. Out-of-range values are clamped.
func (w *World) SetIntParameter(key string, value int) bool {
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		v := int(ctrl.Clamp(float64(value)))
		switch key {
		case "heat":
			w.heat = sand.HeatModel(v)
			w.cfg.Heat = w.heat.String()
			w.grid.SetHeatModel(w.heat)
		case "brush":
			w.brush = v
		case "noise":
			w.cfg.NoiseStrength = uint8(v)
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
