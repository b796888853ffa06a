package potential

import (
	"fmt"
	"math"
)

const (
	// MinSeparation is the distance below which Evaluate returns +Inf
	// rather than evaluating the diverging formula.
	MinSeparation = 0.01

	// DefaultEpsilon and DefaultSigma give the reduced-unit
	// parameterization used by the standard cutoff analysis.
	DefaultEpsilon = 1.0
	DefaultSigma   = 1.0
)

// LennardJones is the 12-6 pair potential with well depth Epsilon and
// zero-crossing distance Sigma. The zero value is unusable; construct with
// New or set both fields explicitly.
type LennardJones struct {
	Epsilon float64 // well depth ε, energy units
	Sigma   float64 // zero-crossing distance σ, length units
}

// New returns the potential in reduced units (ε = σ = 1).
func New() LennardJones {
	return LennardJones{Epsilon: DefaultEpsilon, Sigma: DefaultSigma}
}

// Evaluate returns V(r) at absolute distance r. Distances below
// MinSeparation, including zero and negatives, return +Inf. For r at or
// above MinSeparation the result is always finite and never NaN.
func (lj LennardJones) Evaluate(r float64) float64 {
	if r < MinSeparation {
		return math.Inf(1)
	}
	sr6 := math.Pow(lj.Sigma/r, 6)
	return 4 * lj.Epsilon * (sr6*sr6 - sr6)
}

// Force returns −dV/dr at absolute distance r. Positive means repulsive.
// Same near-zero clamp as Evaluate.
func (lj LennardJones) Force(r float64) float64 {
	if r < MinSeparation {
		return math.Inf(1)
	}
	sr6 := math.Pow(lj.Sigma/r, 6)
	return 24 * lj.Epsilon * (2*sr6*sr6 - sr6) / r
}

// Minimum returns the well location and depth: r = 2^(1/6)·σ, V = −ε.
func (lj LennardJones) Minimum() (r, v float64) {
	return math.Pow(2, 1.0/6.0) * lj.Sigma, -lj.Epsilon
}

func (lj LennardJones) GetParams() map[string]float64 {
	return map[string]float64{
		"epsilon": lj.Epsilon,
		"sigma":   lj.Sigma,
	}
}

func (lj *LennardJones) SetParam(name string, value float64) error {
	switch name {
	case "epsilon":
		lj.Epsilon = value
	case "sigma":
		lj.Sigma = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// At evaluates the potential at a distance of x·σ.
func (lj LennardJones) At(x float64) float64 {
	return lj.Evaluate(x * lj.Sigma)
}

// TailPercent reports |V| at x·σ as a percentage of the well depth ε.
// This is the quantity cutoff significance tiers are graded on.
func (lj LennardJones) TailPercent(x float64) float64 {
	return math.Abs(lj.At(x)/lj.Epsilon) * 100
}
