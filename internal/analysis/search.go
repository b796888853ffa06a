package analysis

import (
	"errors"

	"github.com/ljlab/ljcut/internal/potential"
)

// ErrTargetUnreachable is returned when no cutoff in the searched range
// meets the requested tail magnitude.
var ErrTargetUnreachable = errors.New("analysis: no cutoff in range meets target")

// MinimalCutoff finds the smallest radius in [lo, hi] (units of σ) whose
// discarded tail is at most maxPercent of the well depth. The tail magnitude
// only shrinks beyond the well minimum, so lo is clamped there and the
// answer bracketed by bisection.
func MinimalCutoff(lj potential.LennardJones, maxPercent, lo, hi float64) (float64, error) {
	rmin, _ := lj.Minimum()
	if wellX := rmin / lj.Sigma; lo < wellX {
		lo = wellX
	}
	if hi <= lo {
		return 0, ErrTargetUnreachable
	}
	if lj.TailPercent(hi) > maxPercent {
		return 0, ErrTargetUnreachable
	}
	if lj.TailPercent(lo) <= maxPercent {
		return lo, nil
	}

	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		if lj.TailPercent(mid) <= maxPercent {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
