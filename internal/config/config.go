package config

import (
	"os"

	"github.com/san-kum/predprey/internal/experiment"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlpha           = 0.1
	DefaultGamma           = 0.1
	DefaultDelta           = 0.01
	DefaultBeta            = 0.01
	DefaultInitialPrey     = 50.0
	DefaultInitialPredator = 10.0
	DefaultHorizon         = 200.0
	DefaultTimeStep        = 0.1
	DefaultPreyName        = "Rabbits"
	DefaultPredatorName    = "Wolves"
)

// Config supplies the defaults offered at each prompt. Horizon stays a real
// number here because that is how it is read; it is truncated to whole weeks
// when converted to experiment.Params.
type Config struct {
	Alpha           float64 `yaml:"alpha"`
	Gamma           float64 `yaml:"gamma"`
	Delta           float64 `yaml:"delta"`
	Beta            float64 `yaml:"beta"`
	InitialPrey     float64 `yaml:"initial_prey"`
	InitialPredator float64 `yaml:"initial_predator"`
	Horizon         float64 `yaml:"horizon"`
	TimeStep        float64 `yaml:"time_step"`
	PreyName        string  `yaml:"prey_name"`
	PredatorName    string  `yaml:"predator_name"`
}

func DefaultConfig() *Config {
	return &Config{
		Alpha:           DefaultAlpha,
		Gamma:           DefaultGamma,
		Delta:           DefaultDelta,
		Beta:            DefaultBeta,
		InitialPrey:     DefaultInitialPrey,
		InitialPredator: DefaultInitialPredator,
		Horizon:         DefaultHorizon,
		TimeStep:        DefaultTimeStep,
		PreyName:        DefaultPreyName,
		PredatorName:    DefaultPredatorName,
	}
}

// Load reads a YAML file over the defaults, so a file may set only some keys.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base. Keys the file omits keep
// the values from base; base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() experiment.Params {
	return experiment.Params{
		Alpha:           c.Alpha,
		Gamma:           c.Gamma,
		Delta:           c.Delta,
		Beta:            c.Beta,
		InitialPrey:     c.InitialPrey,
		InitialPredator: c.InitialPredator,
		Horizon:         experiment.TruncateHorizon(c.Horizon),
		TimeStep:        c.TimeStep,
	}
}

func (c *Config) Labels() experiment.Labels {
	return experiment.Labels{
		Prey:     c.PreyName,
		Predator: c.PredatorName,
	}
}
