package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionInput_FeaturesOrder(t *testing.T) {
	in := PredictionInput{
		Age:             30,
		ExperienceYears: 2,
		EducationLevel:  2,
		NumSkills:       3,
		LocationTier:    2,
		JobChanges:      6,
	}

	features := in.Features()
	require.Len(t, features, len(FeatureNames))
	assert.Equal(t, []float64{30, 2, 2, 3, 2, 6}, features)
}

func TestPredictionInput_Validate(t *testing.T) {
	valid := PredictionInput{Age: 30, ExperienceYears: 5, EducationLevel: 3, NumSkills: 8, LocationTier: 1, JobChanges: 1}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*PredictionInput)
	}{
		{"education below range", func(in *PredictionInput) { in.EducationLevel = 0 }},
		{"education above range", func(in *PredictionInput) { in.EducationLevel = 5 }},
		{"location tier above range", func(in *PredictionInput) { in.LocationTier = 4 }},
		{"negative experience", func(in *PredictionInput) { in.ExperienceYears = -1 }},
		{"negative job changes", func(in *PredictionInput) { in.JobChanges = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			assert.Error(t, in.Validate())
		})
	}
}
