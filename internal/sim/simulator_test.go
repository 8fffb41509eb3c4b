package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/predprey/internal/dynamo"
	"github.com/san-kum/predprey/internal/integrators"
	"github.com/san-kum/predprey/internal/physics"
	"github.com/san-kum/predprey/internal/sim"
)

type recordingObserver struct {
	steps []int
	times []float64
}

func (r *recordingObserver) OnStep(step int, x dynamo.State, t float64) {
	r.steps = append(r.steps, step)
	r.times = append(r.times, t)
}

func newLV() *sim.Simulator {
	return sim.New(physics.NewLotkaVolterra(0.1, 0.01, 0.1, 0.01), integrators.NewEuler())
}

var _ = Describe("Simulator", func() {
	Describe("fixed-step sampling", func() {
		It("records only the initial sample when the horizon equals one step", func() {
			res, err := newLV().Run(dynamo.State{50, 10}, dynamo.Config{Dt: 1, Duration: 1})
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Times).To(Equal([]float64{0}))
			Expect(res.Series(0)).To(Equal([]float64{50}))
			Expect(res.Series(1)).To(Equal([]float64{10}))
		})

		It("applies one Euler update before the second sample", func() {
			res, err := newLV().Run(dynamo.State{50, 10}, dynamo.Config{Dt: 1, Duration: 2})
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Times).To(Equal([]float64{0, 1}))
			Expect(res.Series(0)).To(Equal([]float64{50, 50}))
			Expect(res.Series(1)).To(Equal([]float64{10, 14}))
		})

		DescribeTable("produces floor(duration/dt) samples at exact multiples of dt",
			func(dt, duration float64, want int) {
				res, err := newLV().Run(dynamo.State{50, 10}, dynamo.Config{Dt: dt, Duration: duration})
				Expect(err).NotTo(HaveOccurred())

				Expect(res.Len()).To(Equal(want))
				Expect(res.States).To(HaveLen(want))
				for i, tm := range res.Times {
					Expect(tm).To(Equal(float64(i) * dt))
				}
			},
			Entry("default horizon", 0.1, 200.0, int(math.Floor(200.0/0.1))),
			Entry("whole steps", 1.0, 10.0, 10),
			Entry("fractional remainder", 0.3, 1.0, 3),
			Entry("horizon shorter than one step", 2.0, 1.0, 0),
		)

		It("leaves the initial sample untouched", func() {
			x0 := dynamo.State{50, 10}
			res, err := newLV().Run(x0, dynamo.Config{Dt: 0.1, Duration: 200})
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Times[0]).To(Equal(0.0))
			Expect(res.States[0]).To(Equal(dynamo.State{50, 10}))
			Expect(x0).To(Equal(dynamo.State{50, 10}))
		})

		It("is deterministic", func() {
			cfg := dynamo.Config{Dt: 0.1, Duration: 200}
			a, err := newLV().Run(dynamo.State{50, 10}, cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := newLV().Run(dynamo.State{50, 10}, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(a.Times).To(Equal(b.Times))
			for i := range a.States {
				Expect(math.Float64bits(a.States[i][0])).To(Equal(math.Float64bits(b.States[i][0])))
				Expect(math.Float64bits(a.States[i][1])).To(Equal(math.Float64bits(b.States[i][1])))
			}
		})
	})

	Describe("non-negativity clamp", func() {
		It("keeps both populations non-negative under a coarse step", func() {
			s := sim.New(physics.NewLotkaVolterra(0.5, 0.2, 0.8, 0.05), integrators.NewEuler())
			res, err := s.Run(dynamo.State{80, 40}, dynamo.Config{Dt: 5, Duration: 500})
			Expect(err).NotTo(HaveOccurred())

			for i := range res.States {
				Expect(res.States[i][0]).To(BeNumerically(">=", 0), "prey at step %d", i)
				Expect(res.States[i][1]).To(BeNumerically(">=", 0), "predator at step %d", i)
			}
		})

		It("clamps after the step so the overshoot shows up in the next sample", func() {
			// prey: 10 + (1*10 - 1*10*20)*1 = -180 -> 0
			s := sim.New(physics.NewLotkaVolterra(1, 1, 0, 0), integrators.NewEuler())
			res, err := s.Run(dynamo.State{10, 20}, dynamo.Config{Dt: 1, Duration: 2})
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Series(0)).To(Equal([]float64{10, 0}))
			Expect(res.Series(1)).To(Equal([]float64{20, 20}))
		})

		It("holds the zero-population fixed point", func() {
			res, err := newLV().Run(dynamo.State{0, 0}, dynamo.Config{Dt: 0.1, Duration: 50})
			Expect(err).NotTo(HaveOccurred())

			for _, x := range res.States {
				Expect(x).To(Equal(dynamo.State{0, 0}))
			}
		})
	})

	Describe("invalid configuration", func() {
		DescribeTable("rejects non-positive or non-finite bounds",
			func(cfg dynamo.Config) {
				_, err := newLV().Run(dynamo.State{50, 10}, cfg)
				Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
			},
			Entry("zero dt", dynamo.Config{Dt: 0, Duration: 1}),
			Entry("negative dt", dynamo.Config{Dt: -0.1, Duration: 1}),
			Entry("NaN dt", dynamo.Config{Dt: math.NaN(), Duration: 1}),
			Entry("infinite dt", dynamo.Config{Dt: math.Inf(1), Duration: 1}),
			Entry("zero duration", dynamo.Config{Dt: 0.1, Duration: 0}),
			Entry("negative duration", dynamo.Config{Dt: 0.1, Duration: -1}),
			Entry("infinite duration", dynamo.Config{Dt: 0.1, Duration: math.Inf(1)}),
			Entry("step too small for the horizon", dynamo.Config{Dt: 1e-300, Duration: 200}),
			Entry("horizon at the int limit", dynamo.Config{Dt: 0.1, Duration: float64(math.MaxInt)}),
			Entry("one sample past the limit", dynamo.Config{Dt: 1, Duration: sim.MaxSteps + 1}),
		)

		It("accepts exactly MaxSteps samples", func() {
			Expect(sim.Steps(dynamo.Config{Dt: 1, Duration: sim.MaxSteps})).To(Equal(sim.MaxSteps))
		})

		It("rejects a state of the wrong dimension", func() {
			_, err := newLV().Run(dynamo.State{50}, dynamo.Config{Dt: 0.1, Duration: 1})
			Expect(err).To(MatchError(dynamo.ErrDimensionMismatch))
		})
	})

	Describe("pathological rates", func() {
		It("propagates non-finite values without failing", func() {
			s := sim.New(physics.NewLotkaVolterra(math.Inf(1), 0, 0, 0), integrators.NewEuler())
			res, err := s.Run(dynamo.State{1, 1}, dynamo.Config{Dt: 1, Duration: 3})
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Len()).To(Equal(3))
			Expect(res.States[0].IsValid()).To(BeTrue())
			Expect(math.IsInf(res.States[1][0], 1)).To(BeTrue())
			Expect(math.IsNaN(res.States[2][0])).To(BeTrue())
		})
	})

	Describe("observers", func() {
		It("sees every recorded sample in order", func() {
			s := newLV()
			obs := &recordingObserver{}
			s.AddObserver(obs)
			s.AddObserver(&sim.LogObserver{Every: 2, Labels: []string{"prey", "predator"}})

			res, err := s.Run(dynamo.State{50, 10}, dynamo.Config{Dt: 0.5, Duration: 5})
			Expect(err).NotTo(HaveOccurred())

			Expect(obs.steps).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
			Expect(obs.times).To(Equal(res.Times))
		})
	})
})
