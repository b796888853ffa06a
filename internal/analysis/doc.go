// Package analysis provides cutoff sweeps over the potential tail.
//
// The package answers two questions about truncating the Lennard-Jones
// potential:
//
//   - [ScanCutoffs]: how do discarded tail magnitude and pairwise cost
//     trade off across a range of candidate radii
//   - [MinimalCutoff]: what is the smallest radius whose discarded tail
//     stays under a given fraction of the well depth
//
// # Picking a cutoff
//
// A tail target of 1% of ε lands between the conventional 2.5σ and the
// conservative 3.0σ:
//
//	rc, err := analysis.MinimalCutoff(lj, 1.0, 1.8, 4.0)
//	if err == nil {
//	    // rc ≈ 2.71σ
//	}
package analysis
