package kappa

// Test bridge: expose the unexported pipeline stages to the black-box
// kappa_test package without widening the production API.
var (
	BuildWeights = buildWeights
	Preprocess   = preprocess
)
