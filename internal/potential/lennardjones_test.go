package potential_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ljlab/ljcut/internal/potential"
)

var _ = Describe("LennardJones", func() {
	var lj potential.LennardJones

	BeforeEach(func() {
		lj = potential.New()
	})

	It("matches the closed form in reduced units", func() {
		for _, r := range []float64{0.95, 1.0, 1.3, 1.5, 2.0, 2.5, 3.0, 4.0} {
			want := 4 * (math.Pow(1/r, 12) - math.Pow(1/r, 6))
			Expect(lj.Evaluate(r)).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("crosses zero at r = σ", func() {
		Expect(lj.Evaluate(1.0)).To(BeZero())
	})

	It("has its minimum at 2^(1/6)σ with depth −ε", func() {
		rmin, vmin := lj.Minimum()
		Expect(rmin).To(BeNumerically("~", math.Pow(2, 1.0/6.0), 1e-12))
		Expect(vmin).To(Equal(-1.0))
		Expect(lj.Evaluate(rmin)).To(BeNumerically("~", -1.0, 1e-12))
		Expect(lj.Evaluate(rmin - 1e-3)).To(BeNumerically(">", vmin))
		Expect(lj.Evaluate(rmin + 1e-3)).To(BeNumerically(">", vmin))
	})

	It("reproduces the standard cutoff values", func() {
		Expect(lj.Evaluate(2.0)).To(BeNumerically("~", -0.0615234375, 1e-12))
		Expect(lj.Evaluate(2.5)).To(BeNumerically("~", -0.016316891136, 1e-9))
		Expect(lj.Evaluate(3.0)).To(BeNumerically("~", -0.005479441744, 1e-9))
	})

	It("returns +Inf below the near-zero threshold", func() {
		Expect(math.IsInf(lj.Evaluate(0.009), 1)).To(BeTrue())
		Expect(math.IsInf(lj.Evaluate(0), 1)).To(BeTrue())
		Expect(math.IsInf(lj.Evaluate(-1), 1)).To(BeTrue())
		Expect(math.IsInf(lj.Evaluate(potential.MinSeparation), 1)).To(BeFalse())
	})

	It("never yields NaN at or above the threshold", func() {
		for r := potential.MinSeparation; r < 10; r += 0.037 {
			Expect(math.IsNaN(lj.Evaluate(r))).To(BeFalse())
		}
	})

	It("is deterministic", func() {
		first := lj.Evaluate(1.37)
		for i := 0; i < 100; i++ {
			Expect(lj.Evaluate(1.37)).To(Equal(first))
		}
	})

	It("scales with ε and σ", func() {
		argon := potential.LennardJones{Epsilon: 0.997, Sigma: 3.4}
		Expect(argon.Evaluate(3.4)).To(BeNumerically("~", 0, 1e-12))
		Expect(argon.Evaluate(2 * 3.4)).To(BeNumerically("~", 0.997*lj.Evaluate(2.0), 1e-12))
		rmin, vmin := argon.Minimum()
		Expect(rmin).To(BeNumerically("~", math.Pow(2, 1.0/6.0)*3.4, 1e-12))
		Expect(vmin).To(Equal(-0.997))
	})

	Describe("At", func() {
		It("quotes distances in units of σ", func() {
			argon := potential.LennardJones{Epsilon: 0.997, Sigma: 3.4}
			Expect(argon.At(2.5)).To(Equal(argon.Evaluate(2.5 * 3.4)))
			Expect(lj.At(2.5)).To(Equal(lj.Evaluate(2.5)))
		})
	})

	Describe("Force", func() {
		It("vanishes at the well minimum", func() {
			rmin, _ := lj.Minimum()
			Expect(lj.Force(rmin)).To(BeNumerically("~", 0, 1e-12))
		})

		It("is repulsive inside σ and attractive beyond the well", func() {
			Expect(lj.Force(0.9)).To(BeNumerically(">", 0))
			Expect(lj.Force(2.0)).To(BeNumerically("<", 0))
		})

		It("agrees with the numerical derivative of V", func() {
			const h = 1e-6
			for _, r := range []float64{1.05, 1.3, 1.8, 2.5, 3.5} {
				dv := (lj.Evaluate(r+h) - lj.Evaluate(r-h)) / (2 * h)
				Expect(lj.Force(r)).To(BeNumerically("~", -dv, 1e-4))
			}
		})
	})

	Describe("parameters", func() {
		It("exposes epsilon and sigma by name", func() {
			Expect(lj.GetParams()).To(Equal(map[string]float64{
				"epsilon": 1.0,
				"sigma":   1.0,
			}))
		})

		It("updates named parameters", func() {
			Expect(lj.SetParam("epsilon", 0.997)).To(Succeed())
			Expect(lj.SetParam("sigma", 3.4)).To(Succeed())
			Expect(lj.Epsilon).To(Equal(0.997))
			Expect(lj.Sigma).To(Equal(3.4))
			Expect(lj.Evaluate(3.4)).To(BeNumerically("~", 0, 1e-12))
		})

		It("rejects unknown parameter names", func() {
			Expect(lj.SetParam("mass", 1.0)).To(HaveOccurred())
		})
	})

	Describe("TailPercent", func() {
		It("reports the standard cutoff magnitudes", func() {
			Expect(lj.TailPercent(2.0)).To(BeNumerically("~", 6.15234375, 1e-9))
			Expect(lj.TailPercent(2.5)).To(BeNumerically("~", 1.6316891, 1e-6))
			Expect(lj.TailPercent(3.0)).To(BeNumerically("~", 0.5479442, 1e-6))
		})

		It("is independent of ε and σ", func() {
			argon := potential.LennardJones{Epsilon: 0.997, Sigma: 3.4}
			Expect(argon.TailPercent(2.5)).To(BeNumerically("~", lj.TailPercent(2.5), 1e-9))
		})
	})
})
