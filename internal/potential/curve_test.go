package potential_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ljlab/ljcut/internal/potential"
)

var _ = Describe("Linspace", func() {
	It("spaces points evenly with inclusive endpoints", func() {
		xs := potential.Linspace(0, 1, 5)
		Expect(xs).To(HaveLen(5))
		for i, want := range []float64{0, 0.25, 0.5, 0.75, 1} {
			Expect(xs[i]).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("lands exactly on both endpoints", func() {
		xs := potential.Linspace(0.9, 4.0, 1000)
		Expect(xs[0]).To(Equal(0.9))
		Expect(xs[999]).To(Equal(4.0))
	})

	It("collapses degenerate counts to a single sample", func() {
		Expect(potential.Linspace(1.5, 2.0, 1)).To(Equal([]float64{1.5}))
		Expect(potential.Linspace(1.5, 2.0, 0)).To(Equal([]float64{1.5}))
	})
})

var _ = Describe("Sample", func() {
	It("spans the requested range", func() {
		c := potential.New().Sample(0.9, 4.0, 1000)
		Expect(c.Len()).To(Equal(1000))
		Expect(c.R[0]).To(Equal(0.9))
		Expect(c.R[999]).To(Equal(4.0))
	})

	It("evaluates the potential at every sample", func() {
		lj := potential.New()
		c := lj.Sample(2.0, 4.0, 500)
		for i := range c.R {
			Expect(c.V[i]).To(Equal(lj.At(c.R[i])))
		}
	})

	It("quotes sample distances in units of σ", func() {
		argon := potential.LennardJones{Epsilon: 0.997, Sigma: 3.4}
		c := argon.Sample(1.0, 2.0, 3)
		Expect(c.R[1]).To(BeNumerically("~", 1.5, 1e-12))
		Expect(c.V[1]).To(Equal(argon.Evaluate(1.5 * 3.4)))
	})
})
