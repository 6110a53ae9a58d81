// Package lvbayes is a toolkit for closed-form and simulation-based Bayesian
// posterior inference, from conjugate updates to Gibbs chains and their diagnostics.
//
// 🚀 What is lvbayes?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Conjugate updates: Bernoulli–Beta, Poisson–Gamma, Gaussian–NIG, Regression–NIG
//		• HPD intervals: a 2-D Newton solver over Beta, Gamma, InverseGamma, Student-t
//		• Gibbs sampling: Gaussian mean/variance and regression coefficients/variance
//		• Diagnostics: percentile CI, sample HPD, batch-means MCSE, R-hat, KDE
//
// ✨ Why choose lvbayes?
//
//   - Reproducible: randomness is an injected, seeded source owned by one chain
//   - Honest: HPD fallbacks and convergence problems are reported, never hidden
//   - Composable: every result is a summary.Table you can print, marshal, or inspect
//
// Under the hood, everything is organized in focused subpackages:
//
//	bayeserr/    error taxonomy (invalid parameter, linear algebra, convergence) + warnings
//	matrix/      row-major Dense, Gram/Solve/Inverse/Cholesky
//	density/     univariate families over gonum distuv, tagged by Family
//	hpd/         HPD interval solver with explicit equal-tailed fallback
//	summary/     Interval, Statistics, Table
//	conjugate/   closed-form posterior updates
//	rng/         seedable random source (Normal, MVN, Gamma, InverseGamma, …)
//	chain/       pre-sized sample chain with logical burn-in
//	gibbs/       two-block Gibbs samplers, parallel independent chains
//	diagnostics/ chain summaries and convergence metrics
//	config/      TOML/YAML run configuration
//	dataset/     CSV ingestion into responses and design matrices
//	cmd/lvbayes  command-line entry point
//
//	go get github.com/katalvlaran/lvbayes
package lvbayes
