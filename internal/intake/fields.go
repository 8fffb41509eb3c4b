package intake

import (
	"fmt"

	"github.com/san-kum/predprey/internal/experiment"
)

type Kind int

const (
	Number Kind = iota
	Text
)

// Field names, in prompt order.
const (
	FieldAlpha           = "alpha"
	FieldGamma           = "gamma"
	FieldDelta           = "delta"
	FieldBeta            = "beta"
	FieldInitialPrey     = "initial_prey"
	FieldInitialPredator = "initial_predator"
	FieldHorizon         = "horizon"
	FieldTimeStep        = "time_step"
	FieldPreyName        = "prey_name"
	FieldPredatorName    = "predator_name"
)

type Field struct {
	Name   string
	Prompt string
	Kind   Kind
	Number float64
	Text   string
}

// Fields returns the prompt table with defaults taken from p and l. Horizon
// is offered as a real number and truncated after reading.
func Fields(p experiment.Params, l experiment.Labels) []Field {
	return []Field{
		{Name: FieldAlpha, Prompt: "Prey growth rate (α): ", Kind: Number, Number: p.Alpha},
		{Name: FieldGamma, Prompt: "Predator death rate (γ): ", Kind: Number, Number: p.Gamma},
		{Name: FieldDelta, Prompt: "Predator growth rate per prey consumed (δ): ", Kind: Number, Number: p.Delta},
		{Name: FieldBeta, Prompt: "Prey death rate due to predation (β): ", Kind: Number, Number: p.Beta},
		{Name: FieldInitialPrey, Prompt: "Initial prey population (thousands): ", Kind: Number, Number: p.InitialPrey},
		{Name: FieldInitialPredator, Prompt: "Initial predator population (thousands): ", Kind: Number, Number: p.InitialPredator},
		{Name: FieldHorizon, Prompt: "Time period (weeks): ", Kind: Number, Number: float64(p.Horizon)},
		{Name: FieldTimeStep, Prompt: "Time step (weeks): ", Kind: Number, Number: p.TimeStep},
		{Name: FieldPreyName, Prompt: "Prey name: ", Kind: Text, Text: l.Prey},
		{Name: FieldPredatorName, Prompt: "Predator name: ", Kind: Text, Text: l.Predator},
	}
}

// Build asks every field in order and assembles the run parameters.
func Build(p *Prompter, fields []Field) (experiment.Params, experiment.Labels, error) {
	var (
		params experiment.Params
		labels experiment.Labels
	)

	for _, f := range fields {
		switch f.Kind {
		case Number:
			v, err := p.ReadNumber(f.Prompt, f.Number)
			if err != nil {
				return params, labels, err
			}
			if err := setNumber(&params, f.Name, v); err != nil {
				return params, labels, err
			}
		case Text:
			v, err := p.ReadText(f.Prompt, f.Text)
			if err != nil {
				return params, labels, err
			}
			if err := setText(&labels, f.Name, v); err != nil {
				return params, labels, err
			}
		default:
			return params, labels, fmt.Errorf("field %s: unknown kind %d", f.Name, f.Kind)
		}
	}

	return params, labels, nil
}

func setNumber(p *experiment.Params, name string, v float64) error {
	switch name {
	case FieldAlpha:
		p.Alpha = v
	case FieldGamma:
		p.Gamma = v
	case FieldDelta:
		p.Delta = v
	case FieldBeta:
		p.Beta = v
	case FieldInitialPrey:
		p.InitialPrey = v
	case FieldInitialPredator:
		p.InitialPredator = v
	case FieldHorizon:
		p.Horizon = experiment.TruncateHorizon(v)
	case FieldTimeStep:
		p.TimeStep = v
	default:
		return fmt.Errorf("unknown numeric field: %s", name)
	}
	return nil
}

func setText(l *experiment.Labels, name, v string) error {
	switch name {
	case FieldPreyName:
		l.Prey = v
	case FieldPredatorName:
		l.Predator = v
	default:
		return fmt.Errorf("unknown text field: %s", name)
	}
	return nil
}
