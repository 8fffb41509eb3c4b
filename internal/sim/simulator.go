package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/predprey/internal/dynamo"
)

// MaxSteps bounds the number of samples a single run may record.
const MaxSteps = 10_000_000

type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	observers  []dynamo.Observer
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Steps returns the number of samples Run records for cfg: floor(Duration/Dt).
func Steps(cfg dynamo.Config) int {
	return int(math.Floor(cfg.Duration / cfg.Dt))
}

// Run integrates from x0 for Steps(cfg) fixed steps. Each iteration records
// the current state at t = i*Dt, advances it with the integrator and, for
// constrained systems, clamps the new state before the next sample.
// Non-finite states are carried through rather than reported.
func (s *Simulator) Run(x0 dynamo.State, cfg dynamo.Config) (*Result, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}

	steps := Steps(cfg)
	result := &Result{
		Times:  make([]float64, steps),
		States: make([]dynamo.State, steps),
	}

	constrained, _ := s.dyn.(dynamo.Constrained)

	x := x0.Clone()
	for i := 0; i < steps; i++ {
		t := float64(i) * cfg.Dt

		result.Times[i] = t
		result.States[i] = x.Clone()

		for _, obs := range s.observers {
			obs.OnStep(i, x, t)
		}

		x = s.integrator.Step(s.dyn, x, nil, t, cfg.Dt)
		if constrained != nil {
			constrained.Constrain(x)
		}
	}

	return result, nil
}

func (s *Simulator) validate(x0 dynamo.State, cfg dynamo.Config) error {
	if cfg.Dt <= 0 || math.IsNaN(cfg.Dt) || math.IsInf(cfg.Dt, 0) {
		return fmt.Errorf("dt must be positive and finite, got %v: %w", cfg.Dt, dynamo.ErrInvalidParameter)
	}
	if cfg.Duration <= 0 || math.IsNaN(cfg.Duration) || math.IsInf(cfg.Duration, 0) {
		return fmt.Errorf("duration must be positive and finite, got %v: %w", cfg.Duration, dynamo.ErrInvalidParameter)
	}
	if n := math.Floor(cfg.Duration / cfg.Dt); math.IsInf(n, 0) || n > MaxSteps {
		return fmt.Errorf("duration/dt = %v exceeds the %d sample limit: %w", n, MaxSteps, dynamo.ErrInvalidParameter)
	}
	if len(x0) != s.dyn.StateDim() {
		return fmt.Errorf("initial state has %d components, system expects %d: %w",
			len(x0), s.dyn.StateDim(), dynamo.ErrDimensionMismatch)
	}
	return nil
}
