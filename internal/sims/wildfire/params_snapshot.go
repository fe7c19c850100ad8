package wildfire

import (
	"strconv"

	"wildfire/internal/core"
)

// Parameters describes the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam(KeySize, "Size", c.Size),
				textParam(KeySeeds, "Seeds", FormatSeeds(c.SeedCells())),
				int64Param(KeySeed, "Seed", c.Seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam(KeySpreadChance, "Spread probability", c.SpreadChance),
				intParam(KeyMaxSteps, "Max steps", c.MaxSteps),
			},
		},
		{
			Name: "Logistic",
			Params: []core.Parameter{
				floatParam(KeyGrowthRate, "Growth rate", c.GrowthRate),
				floatParam(KeyInitialFrac, "Initial fraction", c.B0()),
				intParam(KeySamplesPerStep, "Samples per step", c.SamplesPerStep),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// Parameters reports the live configuration plus run progress.
func (f *Fire) Parameters() core.ParameterSnapshot {
	cfg := f.cfg
	cfg.Seed = f.seed
	snap := cfg.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			intParam("step", "Step", f.step),
			intParam("burning", "Burning", f.cur.Count(Burning)),
			intParam("burnt", "Burnt", f.cur.Count(Burnt)),
			floatParam("burnt_fraction", "Burnt fraction", f.cur.BurntFraction()),
		},
	})
	return snap
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

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}

// ParameterControls lists the parameters the viewer may change while running.
func (f *Fire) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeySpreadChance, Label: "Spread probability", Step: 0.05, Min: 0, Max: 1},
	}
}
