// Package gibbs implements two-block Gibbs samplers for the semi-conjugate
// Gaussian and linear-regression models.
//
// 🚀 Models
//
//	Gaussian    μ ~ N(μ0, 1/τ),   σ² ~ InvGamma(ν0/2, λ0/2),  y_i ~ N(μ, σ²)
//	Regression  b ~ N(b0, A0⁻¹),  σ² ~ InvGamma(ν0/2, λ0/2),  y ~ N(Xb, σ²I)
//
// The mean (or coefficient) prior is independent of σ², so the joint posterior
// has no closed form and is explored by alternating the two full conditionals.
//
// ✨ Running
//
//   - NewGaussian / NewRegression validate the data and prior once and
//     precompute sufficient statistics; a model is read-only afterwards and
//     may be Run concurrently.
//   - Run(ctx, src) draws Options.Iterations rows into a chain.Chain with
//     burn-in marked logically. The chain is frozen on return.
//   - Cancelling ctx stops the sampler between iterations; Run then returns the
//     frozen partial chain together with ctx.Err().
//   - RunChains runs independent chains in parallel, chain i seeded seed+i.
//
// ⚙️ Randomness
//
//	Every draw goes through the Sampler interface (satisfied by *rng.Source).
//	A fixed seed reproduces a chain bit for bit.
package gibbs
