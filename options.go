package bcxform

import "github.com/bcxform/bcxform/estimator"

// AutoOptions configures an auto-mode search: which estimator scores
// candidates and how many candidates are evaluated. It mirrors the
// C-ABI auto-builder functions of §6.3 one-to-one. The capi package does
// not use it: its handle context keeps its own estimator and mode fields.
type AutoOptions struct {
	est  estimator.Estimator
	mode SearchMode
}

// NewAutoOptions returns options defaulting to Fast mode with the given
// estimator.
func NewAutoOptions(est estimator.Estimator) *AutoOptions {
	return &AutoOptions{est: est, mode: SearchFast}
}

// WithEstimator replaces the estimator used to score candidates.
func (o *AutoOptions) WithEstimator(est estimator.Estimator) *AutoOptions {
	o.est = est
	return o
}

// WithMode sets the search mode directly.
func (o *AutoOptions) WithMode(mode SearchMode) *AutoOptions {
	o.mode = mode
	return o
}

// WithAllDecorrelationModes is the boolean form the C-ABI's
// use_all_decorrelation_modes switch maps to: true selects
// Comprehensive (all eight candidates), false selects Fast.
func (o *AutoOptions) WithAllDecorrelationModes(all bool) *AutoOptions {
	if all {
		o.mode = SearchComprehensive
	} else {
		o.mode = SearchFast
	}
	return o
}

// Estimator returns the configured estimator.
func (o *AutoOptions) Estimator() estimator.Estimator { return o.est }

// Mode returns the configured search mode.
func (o *AutoOptions) Mode() SearchMode { return o.mode }
