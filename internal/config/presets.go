package config

import (
	"sort"

	"github.com/san-kum/predprey/internal/physics"
)

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"equilibrium": func() *Config {
		cfg := DefaultConfig()
		eq := physics.NewLotkaVolterra(cfg.Alpha, cfg.Beta, cfg.Gamma, cfg.Delta).Equilibrium()
		cfg.InitialPrey, cfg.InitialPredator = eq[0], eq[1]
		return cfg
	}(),
	"coarse": {
		Alpha: DefaultAlpha, Gamma: DefaultGamma, Delta: DefaultDelta, Beta: DefaultBeta,
		InitialPrey: DefaultInitialPrey, InitialPredator: DefaultInitialPredator,
		Horizon: DefaultHorizon, TimeStep: 5.0,
		PreyName: DefaultPreyName, PredatorName: DefaultPredatorName,
	},
	"boom": {
		Alpha: 0.3, Gamma: 0.2, Delta: 0.005, Beta: 0.02,
		InitialPrey: 20.0, InitialPredator: 5.0,
		Horizon: 300.0, TimeStep: 0.05,
		PreyName: "Hares", PredatorName: "Lynx",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
