package prediction

import (
	"sort"
	"sync/atomic"

	"github.com/jonathan/career-advisor/internal/logger"
	"github.com/jonathan/career-advisor/internal/numeric"
	"github.com/jonathan/career-advisor/internal/types"
)

const topFactorCount = 3

// Recommendations emitted by Predict.
const (
	RecExpandSkills   = "Expand your skill set to increase market value"
	RecGainExperience = "Gain more hands-on experience through projects"
	RecEducation      = "Consider advanced certifications or degrees"
	RecStability      = "Show stability in your next role"
	RecOnTrack        = "You're on a great track! Keep building expertise in your domain"
)

type handle struct {
	model Model
}

// Predictor serves predictions from the currently loaded model. The model can be
// replaced at any time with Swap; a prediction always runs entirely against one model.
type Predictor struct {
	current atomic.Pointer[handle]
}

// NewPredictor creates a predictor. model may be nil, in which case Predict reports
// unavailability until a model is swapped in.
func NewPredictor(model Model) *Predictor {
	p := &Predictor{}
	p.Swap(model)
	return p
}

// Swap atomically replaces the active model. A nil model unloads it.
func (p *Predictor) Swap(model Model) {
	if model == nil {
		p.current.Store(nil)
		return
	}
	p.current.Store(&handle{model: model})
}

// Loaded reports whether a model is active.
func (p *Predictor) Loaded() bool {
	return p.current.Load() != nil
}

// Predict scores in with the active model. It returns false when no model is loaded or
// the model fails to produce a probability.
func (p *Predictor) Predict(in types.PredictionInput) (*types.PredictionResult, bool) {
	h := p.current.Load()
	if h == nil {
		return nil, false
	}

	proba, err := h.model.PredictProbability(in.Features())
	if err != nil || len(proba) < 2 {
		logger.Error().Err(err).Msg("model prediction failed")
		return nil, false
	}

	return &types.PredictionResult{
		SuccessProbability: numeric.Round2(numeric.Clamp(proba[1]*100, 0, 100)),
		TopFactors:         topFactors(h.model.FeatureImportances(), topFactorCount),
		Recommendations:    Recommendations(in),
	}, true
}

// topFactors names the n features with the highest global importance. Ties keep
// feature order.
func topFactors(importances []float64, n int) []string {
	count := min(len(importances), len(types.FeatureNames))
	idx := make([]int, count)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return importances[idx[a]] > importances[idx[b]]
	})

	names := make([]string, 0, n)
	for _, i := range idx[:min(n, count)] {
		names = append(names, types.FeatureNames[i])
	}
	return names
}

// Recommendations derives advice from the raw input, independent of the model.
func Recommendations(in types.PredictionInput) []string {
	var recs []string
	if in.NumSkills < 8 {
		recs = append(recs, RecExpandSkills)
	}
	if in.ExperienceYears < 5 {
		recs = append(recs, RecGainExperience)
	}
	if in.EducationLevel < 3 {
		recs = append(recs, RecEducation)
	}
	if in.JobChanges > 5 {
		recs = append(recs, RecStability)
	}
	if len(recs) == 0 {
		recs = append(recs, RecOnTrack)
	}
	return recs
}
