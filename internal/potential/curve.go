package potential

// Curve is an ordered set of (r, V) samples over a distance range. R holds
// distances in units of σ, V the potential at each.
type Curve struct {
	R []float64
	V []float64
}

// Len reports the number of samples.
func (c Curve) Len() int { return len(c.R) }

// Linspace returns n evenly spaced values from lo to hi, endpoints
// inclusive. n below 2 collapses to a single sample at lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Sample evaluates the potential at n evenly spaced distances in
// [lo·σ, hi·σ] and returns them as a curve.
func (lj LennardJones) Sample(lo, hi float64, n int) Curve {
	r := Linspace(lo, hi, n)
	v := make([]float64, len(r))
	for i, x := range r {
		v[i] = lj.At(x)
	}
	return Curve{R: r, V: v}
}
