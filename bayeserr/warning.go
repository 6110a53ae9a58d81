package bayeserr

import "fmt"

// WarningKind classifies a non-fatal diagnostic.
type WarningKind int

const (
	// HighRHat: the potential-scale-reduction statistic exceeds the threshold.
	HighRHat WarningKind = iota + 1

	// TruncatedBatches: the batch count did not divide the post-burn-in length and
	// leading draws were dropped from the batch statistics.
	TruncatedBatches

	// HPDFallback: the HPD solver failed and the equal-tailed interval was reported instead.
	HPDFallback
)

// String returns a stable lowercase name usable as a log field.
func (k WarningKind) String() string {
	switch k {
	case HighRHat:
		return "high_rhat"
	case TruncatedBatches:
		return "truncated_batches"
	case HPDFallback:
		return "hpd_fallback"
	default:
		return fmt.Sprintf("warning(%d)", int(k))
	}
}

// Warning is a non-fatal condition attached to a summary table.
type Warning struct {
	Kind    WarningKind
	Param   string  // parameter the warning refers to; empty for table-wide warnings
	Value   float64 // offending value (R-hat, dropped draws, ...)
	Message string
}

func (w Warning) String() string {
	if w.Param == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}

	return fmt.Sprintf("%s[%s]: %s", w.Kind, w.Param, w.Message)
}
