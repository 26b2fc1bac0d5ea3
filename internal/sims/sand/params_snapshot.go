package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

// Parameter keys understood by SetIntParameter.
const (
	ParamBrushRadius   = "brush_radius"
	ParamBrushMaterial = "brush_material"
)

func (w *World) Parameters() core.ParameterSnapshot {
	size := w.Size()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				stringParam("ticks", "Tie-break", w.cfg.Ticks),
				{Key: "steps", Label: "Steps", Type: core.ParamTypeInt, Value: strconv.FormatUint(w.steps, 10)},
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam(ParamBrushRadius, "Brush radius", w.brush.Radius),
				{
					Key:         ParamBrushMaterial,
					Label:       "Material",
					Type:        core.ParamTypeInt,
					Value:       strconv.Itoa(int(w.brush.Material)),
					Description: w.brush.Material.String(),
				},
			},
		},
		{
			Name:   "Particles",
			Params: w.particleParams(),
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (w *World) particleParams() []core.Parameter {
	params := make([]core.Parameter, 0, materialCount-1)
	for _, m := range Materials() {
		if m == Empty {
			continue
		}
		params = append(params, intParam("count_"+m.String(), m.String(), w.grid.Count(m)))
	}
	return params
}

// ParameterControls lists the values the HUD may step up and down.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamBrushRadius, Label: "Brush radius", Step: 1, Min: MinBrushRadius, HasMin: true},
		{Key: ParamBrushMaterial, Label: "Material", Step: 1, Min: int(Empty), Max: int(materialCount - 1), HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates a brush setting by key.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamBrushRadius:
		w.brush.SetRadius(value)
		return true
	case ParamBrushMaterial:
		if value < 0 {
			return false
		}
		return w.brush.Select(Material(value))
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
