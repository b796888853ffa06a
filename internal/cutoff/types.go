// Package cutoff compares candidate truncation radii for the Lennard-Jones
// potential: how much of the well depth each discards, roughly how many
// neighbors it keeps in range, and what it costs relative to a baseline.
package cutoff

import "math"

// Spec names one candidate truncation radius. Distance is in units of σ;
// Label is the display form ("2.5σ").
type Spec struct {
	Distance float64
	Label    string
}

// StandardSpecs returns the three radii compared throughout the molecular
// simulation literature: the aggressive 2.0σ, the conventional 2.5σ and the
// conservative 3.0σ, in that order.
func StandardSpecs() []Spec {
	return []Spec{
		{Distance: 2.0, Label: "2.0σ"},
		{Distance: 2.5, Label: "2.5σ"},
		{Distance: 3.0, Label: "3.0σ"},
	}
}

// Tier grades how much of the well depth a truncated tail discards.
type Tier int

const (
	TierNegligible Tier = iota
	TierModerate
	TierSignificant
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "High"
	case TierSignificant:
		return "Significant"
	case TierModerate:
		return "Moderate"
	default:
		return "Negligible"
	}
}

// Tier breakpoints in percent of well depth. Bounds are strict and checked
// from the highest tier down; landing exactly on a breakpoint takes the tier
// below it.
const (
	HighPercent        = 5.0
	SignificantPercent = 2.0
	ModeratePercent    = 1.0
)

// Classify assigns a tier to a tail magnitude given in percent of ε.
func Classify(percent float64) Tier {
	switch {
	case percent > HighPercent:
		return TierHigh
	case percent > SignificantPercent:
		return TierSignificant
	case percent > ModeratePercent:
		return TierModerate
	default:
		return TierNegligible
	}
}

// DefaultDensity is the reduced number density assumed by the neighbor
// estimate, typical of a Lennard-Jones liquid.
const DefaultDensity = 0.8

// ReferenceCutoff is the baseline radius for relative-cost figures in the
// comparison report.
const ReferenceCutoff = 2.0

// NeighborEstimate approximates how many particles a cutoff sphere holds at
// number density ρ: (4/3)π·rc³·ρ. An order-of-magnitude indicator, not a
// packing model.
func NeighborEstimate(rc, density float64) float64 {
	return (4.0 / 3.0) * math.Pi * rc * rc * rc * density
}

// RelativeCost scales pairwise work with swept volume: (rc/ref)³.
func RelativeCost(rc, ref float64) float64 {
	q := rc / ref
	return q * q * q
}

// Row is one fully derived comparison record. Rows are computed once per run
// and never mutated.
type Row struct {
	Spec      Spec
	Potential float64 // V at the cutoff
	Percent   float64 // |V|/ε × 100
	Tier      Tier
	Neighbors float64 // estimated particles inside the cutoff sphere
	Cost      float64 // work relative to the reference radius
}
