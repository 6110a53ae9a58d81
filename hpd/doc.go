// Package hpd locates highest-posterior-density intervals of unimodal
// univariate densities.
//
// 🚀 What is solved?
//
//	For a density f with CDF F and a mass p ∈ (0,1), find lo < hi with
//	  F(hi) − F(lo) = p          (mass)
//	  log f(hi) = log f(lo)      (equal density)
//	For a unimodal f the pair is the narrowest interval holding p.
//
// ✨ How?
//
//   - Damped Newton on the 2×2 system with the analytic Jacobian
//     [[−f(lo), f(hi)], [−g(lo), g(hi)]], g = d/dx log f.
//   - Start from the equal-tailed interval (or WithInitial).
//   - Each step is halved until the iterate stays ordered inside the support
//     and the squared residual decreases.
//   - Densities peaking at a support bound (Beta α ≤ 1, Gamma shape ≤ 1) are
//     monotone; their interval is anchored at that bound and read off the quantile.
//   - When the mode falls outside the equal-tailed interval (shapes just above
//     those thresholds) Solve bisects on the lower tail mass u of [Q(u), Q(u+p)].
//
// ⚙️ Failure:
//
//	Solve returns *bayeserr.ConvergenceError when the budget runs out.
//	SolveOrEqualTailed makes the equal-tailed fallback explicit: it reports
//	fellBack=true and the caller is expected to surface it.
package hpd
