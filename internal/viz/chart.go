package viz

import (
	"math"

	"github.com/ljlab/ljcut/internal/cutoff"
	"github.com/ljlab/ljcut/internal/potential"
)

// Chart viewports. The full curve clips the repulsive wall so the well stays
// readable; the tail view zooms to a narrow band around zero.
const (
	CurveViewYMin = -1.2
	CurveViewYMax = 2.0
	TailViewYMin  = -0.08
	TailViewYMax  = 0.08
)

// Chart renders the sampled curve on a braille canvas with a zero axis, a
// dashed vertical guide per cutoff and a marker at each (rc, V(rc)).
func Chart(curve potential.Curve, rows []cutoff.Row, width, height int, ymin, ymax float64) string {
	if curve.Len() == 0 || width < 1 || height < 1 {
		return ""
	}
	c := NewCanvas(width, height, curve.R[0], curve.R[curve.Len()-1], ymin, ymax)
	c.HLine(0)
	for _, row := range rows {
		c.VLine(row.Spec.Distance)
	}
	c.Plot(curve.R, curve.V)
	for _, row := range rows {
		c.Mark(row.Spec.Distance, row.Potential)
	}
	return c.String()
}

// ClampSeries bounds values to [lo, hi] for fixed-viewport line charts.
// Infinities collapse onto the nearer bound, NaN onto lo.
func ClampSeries(values []float64, lo, hi float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = lo
		case v > hi:
			out[i] = hi
		case v < lo:
			out[i] = lo
		default:
			out[i] = v
		}
	}
	return out
}

// LogSeries maps magnitudes to log10 for tail-decay charts. Values at or
// below zero and non-finite values land on the floor decade.
func LogSeries(values []float64, floor float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			out[i] = floor
			continue
		}
		l := math.Log10(v)
		if l < floor {
			l = floor
		}
		out[i] = l
	}
	return out
}
