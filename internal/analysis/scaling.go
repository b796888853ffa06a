package analysis

import (
	"math"

	"github.com/ljlab/ljcut/internal/cutoff"
	"github.com/ljlab/ljcut/internal/potential"
)

// ScanReference is the default relative-cost baseline for sweeps. The
// comparison report normalizes against 2.0σ; sweeps follow the conventional
// 2.5σ so the standard choice reads as cost 1.
const ScanReference = 2.5

// ScanPoint records the discarded tail magnitude and relative cost at one
// candidate cutoff. Cutoff is in units of σ.
type ScanPoint struct {
	Cutoff    float64
	Magnitude float64 // |V| at the cutoff
	Cost      float64 // (rc/ref)³
}

// Scan is an ordered cutoff sweep.
type Scan struct {
	Points    []ScanPoint
	Reference float64
}

// ScanCutoffs sweeps n radii evenly spaced over [lo, hi] (units of σ),
// recording |V| and the cost relative to ref at each.
func ScanCutoffs(lj potential.LennardJones, lo, hi float64, n int, ref float64) Scan {
	rs := potential.Linspace(lo, hi, n)
	points := make([]ScanPoint, len(rs))
	for i, rc := range rs {
		points[i] = ScanPoint{
			Cutoff:    rc,
			Magnitude: math.Abs(lj.At(rc)),
			Cost:      cutoff.RelativeCost(rc, ref),
		}
	}
	return Scan{Points: points, Reference: ref}
}

// Cutoffs projects the sweep into a plottable distance series.
func (s Scan) Cutoffs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Cutoff
	}
	return out
}

// Magnitudes projects the sweep into a plottable |V| series.
func (s Scan) Magnitudes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Magnitude
	}
	return out
}

// Costs projects the sweep into a plottable relative-cost series.
func (s Scan) Costs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Cost
	}
	return out
}
