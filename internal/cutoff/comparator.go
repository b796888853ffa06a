package cutoff

import (
	"github.com/ljlab/ljcut/internal/potential"
)

// Comparator derives comparison rows for a fixed, ordered cutoff list.
type Comparator struct {
	LJ        potential.LennardJones
	Specs     []Spec
	Reference float64 // relative-cost baseline, units of σ
	Density   float64 // number density for the neighbor estimate
}

// NewComparator builds a comparator over the standard cutoff list with the
// conventional reference radius and liquid density.
func NewComparator(lj potential.LennardJones) *Comparator {
	return &Comparator{
		LJ:        lj,
		Specs:     StandardSpecs(),
		Reference: ReferenceCutoff,
		Density:   DefaultDensity,
	}
}

// Compare evaluates every cutoff and returns one row per spec, preserving
// the spec order.
func (c *Comparator) Compare() []Row {
	rows := make([]Row, 0, len(c.Specs))
	for _, spec := range c.Specs {
		pct := c.LJ.TailPercent(spec.Distance)
		rows = append(rows, Row{
			Spec:      spec,
			Potential: c.LJ.At(spec.Distance),
			Percent:   pct,
			Tier:      Classify(pct),
			Neighbors: NeighborEstimate(spec.Distance, c.Density),
			Cost:      RelativeCost(spec.Distance, c.Reference),
		})
	}
	return rows
}
