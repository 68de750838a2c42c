package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.rules.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.Width()),
				intParam("h", "Height", w.grid.Height()),
				int64Param("seed", "Seed", w.cfg.Seed),
				uint64Param("tick", "Tick", w.tick),
			},
		},
		{
			Name: "Liquid",
			Params: []core.Parameter{
				intParam("liquid_dispersion", "Dispersion", params.LiquidDispersion),
			},
		},
		{
			Name: "Gas",
			Params: []core.Parameter{
				intParam("gas_diffusion", "Diffusion", params.GasDiffusion),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("fire_rise_chance", "Rise chance", params.FireRiseChance),
			},
		},
		{
			Name: "Solids",
			Params: []core.Parameter{
				boolParam("immovable_sinks", "Stone sinks", params.ImmovableSinks),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule parameters adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "liquid_dispersion", Label: "Dispersion", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxLiquidDispersion, HasMin: true, HasMax: true},
		{Key: "gas_diffusion", Label: "Gas diffusion", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxGasDiffusion, HasMin: true, HasMax: true},
		{Key: "fire_rise_chance", Label: "Fire rise", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "immovable_sinks", Label: "Stone sinks", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer rule parameter.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	switch key {
	case "liquid_dispersion":
		w.rules.Params.LiquidDispersion = min(value, MaxLiquidDispersion)
	case "gas_diffusion":
		w.rules.Params.GasDiffusion = min(value, MaxGasDiffusion)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point rule parameter, clamped to [0,1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fire_rise_chance":
		w.rules.Params.FireRiseChance = max(0, min(value, 1))
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a boolean rule parameter.
func (w *World) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "immovable_sinks":
		w.rules.Params.ImmovableSinks = value
	default:
		return false
	}
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

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uint64Param(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
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

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
