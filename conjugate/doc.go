// Package conjugate implements closed-form posterior updates for the four
// conjugate model families supported by lvbayes.
//
// 🚀 Families
//
//	BernoulliBeta       y ∈ {0,1}    q ~ Beta(a, b)
//	PoissonGamma        y ∈ ℕ        λ ~ Gamma(shape, rate)
//	NormalInverseGamma  y ∈ ℝ        μ | σ² ~ N(μ0, σ²/n0), σ² ~ InvGamma(ν0/2, λ0/2)
//	Regression          y = Xb + ε   b | σ² ~ N(b0, σ²A0⁻¹), σ² ~ InvGamma(ν0/2, λ0/2)
//
// Each update is a pure function returning the posterior record (same family as
// the prior) and a summary.Table with mean, median, mode, sd, equal-tailed and
// HPD intervals per parameter. When the HPD solver cannot converge the row keeps
// the equal-tailed interval, sets Statistics.HPDFallback and the table carries a
// bayeserr.HPDFallback warning.
//
// ⚙️ Errors
//
//   - bayeserr.ErrInvalidParameter: empty data, non-finite values, data outside the
//     likelihood's support, non-positive hyperparameters, mass ∉ (0,1).
//   - bayeserr.ErrLinearAlgebra: singular XᵗX or posterior precision, prior precision
//     not positive definite.
package conjugate
