package prediction

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

type stubModel struct {
	proba       []float64
	importances []float64
	err         error
}

func (s stubModel) PredictProbability([]float64) ([]float64, error) { return s.proba, s.err }
func (s stubModel) FeatureImportances() []float64                    { return s.importances }

var exampleInput = types.PredictionInput{
	Age:             30,
	ExperienceYears: 2,
	EducationLevel:  2,
	NumSkills:       3,
	LocationTier:    2,
	JobChanges:      6,
}

func TestPredict_NoModel(t *testing.T) {
	p := NewPredictor(nil)

	result, ok := p.Predict(exampleInput)
	assert.False(t, ok)
	assert.Nil(t, result)
	assert.False(t, p.Loaded())
}

func TestPredict_ExampleProfile(t *testing.T) {
	forest, err := LoadForest("testdata/forest.json")
	require.NoError(t, err)
	p := NewPredictor(forest)

	result, ok := p.Predict(exampleInput)
	require.True(t, ok)

	assert.Equal(t, 15.0, result.SuccessProbability)
	assert.Equal(t, []string{"education_level", "num_skills", "experience_years"}, result.TopFactors)
	assert.Contains(t, result.Recommendations, RecStability)
	assert.Contains(t, result.Recommendations, RecExpandSkills)
	assert.Equal(t, []string{RecExpandSkills, RecGainExperience, RecEducation, RecStability}, result.Recommendations)
}

func TestPredict_ProbabilityRoundedAndClamped(t *testing.T) {
	imp := []float64{1, 1, 1, 1, 1, 1}

	p := NewPredictor(stubModel{proba: []float64{0.12345, 0.87655}, importances: imp})
	result, ok := p.Predict(exampleInput)
	require.True(t, ok)
	assert.Equal(t, 87.66, result.SuccessProbability)

	p.Swap(stubModel{proba: []float64{-0.5, 1.5}, importances: imp})
	result, ok = p.Predict(exampleInput)
	require.True(t, ok)
	assert.Equal(t, 100.0, result.SuccessProbability)
}

func TestPredict_ModelFailure(t *testing.T) {
	p := NewPredictor(stubModel{err: errors.New("boom")})

	result, ok := p.Predict(exampleInput)
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestTopFactors_TiesKeepFeatureOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"age", "experience_years", "education_level"},
		topFactors([]float64{0.2, 0.2, 0.2, 0.2, 0.1, 0.1}, 3))
	assert.Equal(t,
		[]string{"job_changes", "location_tier", "age"},
		topFactors([]float64{0.1, 0, 0, 0, 0.3, 0.6}, 3))
	assert.Len(t, topFactors([]float64{0.5, 0.5}, 3), 2)
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name string
		in   types.PredictionInput
		want []string
	}{
		{
			name: "on track",
			in:   types.PredictionInput{Age: 40, ExperienceYears: 10, EducationLevel: 3, NumSkills: 8, LocationTier: 1, JobChanges: 5},
			want: []string{RecOnTrack},
		},
		{
			name: "only stability",
			in:   types.PredictionInput{Age: 40, ExperienceYears: 10, EducationLevel: 4, NumSkills: 12, LocationTier: 1, JobChanges: 6},
			want: []string{RecStability},
		},
		{
			name: "junior",
			in:   types.PredictionInput{Age: 22, ExperienceYears: 0, EducationLevel: 3, NumSkills: 10, LocationTier: 2, JobChanges: 0},
			want: []string{RecGainExperience},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommendations(tt.in))
		})
	}
}

func TestSwap_ConcurrentPredictions(t *testing.T) {
	low := stubModel{proba: []float64{0.9, 0.1}, importances: []float64{1, 0, 0, 0, 0, 0}}
	high := stubModel{proba: []float64{0.1, 0.9}, importances: []float64{0, 0, 0, 0, 0, 1}}
	p := NewPredictor(low)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				result, ok := p.Predict(exampleInput)
				if !ok {
					continue
				}
				// probability and factors always come from the same model
				if result.SuccessProbability == 10 {
					assert.Equal(t, "age", result.TopFactors[0])
				} else {
					assert.Equal(t, 90.0, result.SuccessProbability)
					assert.Equal(t, "job_changes", result.TopFactors[0])
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			p.Swap(high)
		} else {
			p.Swap(low)
		}
	}
	wg.Wait()
}
