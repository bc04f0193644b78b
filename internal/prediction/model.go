// Package prediction wraps a fitted binary classifier that estimates career success
// from a six-feature profile, and derives rule-based recommendations.
package prediction

// Model is the inference interface of a fitted binary classifier. Implementations must be
// safe for concurrent use.
type Model interface {
	// PredictProbability returns [P(class 0), P(class 1)] for a feature vector ordered as
	// types.FeatureNames.
	PredictProbability(features []float64) ([]float64, error)
	// FeatureImportances returns one non-negative global importance per feature.
	FeatureImportances() []float64
}
