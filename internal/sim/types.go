package sim

import "github.com/san-kum/predprey/internal/dynamo"

// Result holds one sample per step. Times[i] and States[i] describe the
// state recorded before step i was applied.
type Result struct {
	Times  []float64
	States []dynamo.State
}

func (r *Result) Len() int {
	return len(r.Times)
}

// Series extracts component idx of every recorded state.
func (r *Result) Series(idx int) []float64 {
	out := make([]float64, len(r.States))
	for i, x := range r.States {
		out[i] = x[idx]
	}
	return out
}
