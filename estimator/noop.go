package estimator

// NoEstimation always returns zero and never differentiates by data
// type. It exists so callers that build a search-shaped call (e.g. the
// C-ABI auto-builder path) but only ever use manual transforms have a
// valid, cheap Estimator to plug in.
type NoEstimation struct{}

func (NoEstimation) MaxOutputSize(inputLen int) (int, error) { return 0, nil }

func (NoEstimation) Estimate(input []byte, _ DataType, _ []byte) (int, error) { return 0, nil }

func (NoEstimation) SupportsDataTypeDifferentiation() bool { return false }
