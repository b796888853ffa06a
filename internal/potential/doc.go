// Package potential provides closed-form pair potential models.
//
// The only model is [LennardJones], the 12-6 potential used throughout
// molecular simulation:
//
//	V(r) = 4ε[(σ/r)^12 − (σ/r)^6]
//
// Evaluation is pure: same inputs, same output, no hidden state. The single
// special case is the near-zero clamp — distances below [MinSeparation]
// evaluate to +Inf because the true potential diverges there.
//
// # Units
//
// [LennardJones.Evaluate] takes an absolute distance. The convenience methods
// [LennardJones.At], [LennardJones.TailPercent] and [LennardJones.Sample]
// take distances in units of σ, which is how cutoff radii are quoted
// (2.5σ and so on). With the default ε = σ = 1 the two coincide.
package potential
