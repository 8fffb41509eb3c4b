package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Control []float64

type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

// Constrained systems project a freshly integrated state back onto their
// admissible set. Constrain mutates x in place.
type Constrained interface {
	Constrain(x State)
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

type Observer interface {
	OnStep(step int, x State, t float64)
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

type Config struct {
	Dt       float64
	Duration float64
}
