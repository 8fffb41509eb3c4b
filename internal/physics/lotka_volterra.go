package physics

import (
	"fmt"

	"github.com/san-kum/predprey/internal/dynamo"
)

var (
	_ dynamo.System       = (*LotkaVolterra)(nil)
	_ dynamo.Constrained  = (*LotkaVolterra)(nil)
	_ dynamo.Configurable = (*LotkaVolterra)(nil)
)

// LotkaVolterra is the classic two-species predator-prey system. State is
// {prey, predator}.
type LotkaVolterra struct {
	Alpha float64 // prey growth rate
	Beta  float64 // prey death rate due to predation
	Gamma float64 // predator death rate
	Delta float64 // predator growth rate per prey consumed
}

func NewLotkaVolterra(alpha, beta, gamma, delta float64) *LotkaVolterra {
	return &LotkaVolterra{
		Alpha: alpha,
		Beta:  beta,
		Gamma: gamma,
		Delta: delta,
	}
}

func (lv *LotkaVolterra) StateDim() int   { return 2 }
func (lv *LotkaVolterra) ControlDim() int { return 0 }

// Derive evaluates both rates from the same (pre-update) state.
func (lv *LotkaVolterra) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	prey := x[0]
	pred := x[1]

	return dynamo.State{
		lv.Alpha*prey - lv.Beta*prey*pred,
		lv.Delta*prey*pred - lv.Gamma*pred,
	}
}

// Constrain clamps negative populations to zero. NaN is left untouched.
func (lv *LotkaVolterra) Constrain(x dynamo.State) {
	for i := range x {
		if x[i] < 0 {
			x[i] = 0
		}
	}
}

// Equilibrium returns the coexistence fixed point (gamma/delta, alpha/beta).
// Either component is +Inf when the matching rate is zero.
func (lv *LotkaVolterra) Equilibrium() dynamo.State {
	return dynamo.State{lv.Gamma / lv.Delta, lv.Alpha / lv.Beta}
}

func (lv *LotkaVolterra) GetParams() map[string]float64 {
	return map[string]float64{
		"alpha": lv.Alpha,
		"beta":  lv.Beta,
		"gamma": lv.Gamma,
		"delta": lv.Delta,
	}
}

func (lv *LotkaVolterra) SetParam(name string, value float64) error {
	switch name {
	case "alpha":
		lv.Alpha = value
	case "beta":
		lv.Beta = value
	case "gamma":
		lv.Gamma = value
	case "delta":
		lv.Delta = value
	default:
		return fmt.Errorf("%w: %s", dynamo.ErrUnknownParameter, name)
	}
	return nil
}
