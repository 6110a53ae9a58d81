// Package density wraps the univariate posterior families used across lvbayes
// behind one tagged type.
//
// 🚀 What lives here?
//
//	A Density is a value of one Family (Beta, Gamma, InverseGamma, StudentT, Normal)
//	with fixed parameters. It exposes exactly what the rest of the module needs:
//	  • PDF / LogPDF / CDF / Quantile, delegated to gonum's stat/distuv
//	  • LogPDFDeriv, the analytic slope of the log-density (HPD Jacobian)
//	  • Mean, Median, Mode, StdDev with NaN/+Inf where a moment is undefined
//	  • EqualTailed credible intervals and evaluation Grids for plotting
//
// ✨ Parameter conventions:
//   - Gamma is (shape, rate); InverseGamma is (shape, scale).
//   - StudentT is (ν, location, scale); Normal is (mean, sd).
//   - Every parameter must be finite and the shape/scale ones strictly positive;
//     violations return bayeserr.ErrInvalidParameter.
//
// ⚙️ Usage:
//
//	d, err := density.NewInverseGamma(0.5*nuStar, 0.5*lamStar)
//	ci, err := d.EqualTailed(0.95)
//	fmt.Println(d.Mean(), d.Mode(), ci.Lower, ci.Upper)
package density
