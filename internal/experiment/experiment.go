package experiment

import (
	"math"

	"github.com/san-kum/predprey/internal/dynamo"
	"github.com/san-kum/predprey/internal/integrators"
	"github.com/san-kum/predprey/internal/physics"
	"github.com/san-kum/predprey/internal/sim"
)

// Params is the full parameter set for one run. Populations are in
// thousands; rates are per week; Horizon and TimeStep are in weeks.
type Params struct {
	Alpha           float64 // prey growth rate
	Gamma           float64 // predator death rate
	Delta           float64 // predator growth rate per prey consumed
	Beta            float64 // prey death rate due to predation
	InitialPrey     float64
	InitialPredator float64
	Horizon         int
	TimeStep        float64
}

// Labels name the two series on the chart. They never affect the numbers.
type Labels struct {
	Prey     string
	Predator string
}

// Trajectory is the sampled output of one run: three slices of equal length.
type Trajectory struct {
	Times    []float64
	Prey     []float64
	Predator []float64
}

func (t *Trajectory) Len() int {
	return len(t.Times)
}

// End is the time of the last sample, or 0 for an empty trajectory.
func (t *Trajectory) End() float64 {
	if len(t.Times) == 0 {
		return 0
	}
	return t.Times[len(t.Times)-1]
}

// Diverged reports the first sample where either population is NaN or
// infinite as a *dynamo.SimulationError wrapping dynamo.ErrNonFinite, or nil.
func (t *Trajectory) Diverged() error {
	for i := range t.Times {
		x := dynamo.State{t.Prey[i], t.Predator[i]}
		if !x.IsValid() {
			return &dynamo.SimulationError{Step: i, Time: t.Times[i], State: x, Wrapped: dynamo.ErrNonFinite}
		}
	}
	return nil
}

// Window returns samples [from, to) clamped to the trajectory bounds. The
// returned slices share storage with t.
func (t *Trajectory) Window(from, to int) *Trajectory {
	from = max(0, min(from, t.Len()))
	to = max(from, min(to, t.Len()))
	return &Trajectory{
		Times:    t.Times[from:to],
		Prey:     t.Prey[from:to],
		Predator: t.Predator[from:to],
	}
}

func (p Params) Model() *physics.LotkaVolterra {
	return physics.NewLotkaVolterra(p.Alpha, p.Beta, p.Gamma, p.Delta)
}

func (p Params) SimConfig() dynamo.Config {
	return dynamo.Config{
		Dt:       p.TimeStep,
		Duration: float64(p.Horizon),
	}
}

// Simulate runs the forward Euler integration for p and splits the result
// into prey and predator series.
func Simulate(p Params, observers ...dynamo.Observer) (*Trajectory, error) {
	s := sim.New(p.Model(), integrators.NewEuler())
	for _, o := range observers {
		s.AddObserver(o)
	}

	result, err := s.Run(dynamo.State{p.InitialPrey, p.InitialPredator}, p.SimConfig())
	if err != nil {
		return nil, err
	}

	return &Trajectory{
		Times:    result.Times,
		Prey:     result.Series(0),
		Predator: result.Series(1),
	}, nil
}

// TruncateHorizon converts a horizon read as a real number to whole weeks,
// truncating toward zero. Negative and NaN inputs become 0 and values past
// the int range saturate.
func TruncateHorizon(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	default:
		return int(v)
	}
}
