package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-advisor/internal/types"
)

type fixedScorer float64

func (f fixedScorer) Polarity(string) float64 { return float64(f) }

func TestSentiment_Thresholds(t *testing.T) {
	tests := []struct {
		polarity float64
		label    types.SentimentLabel
		rounded  float64
	}{
		{0.5, types.SentimentPositive, 0.5},
		{0.11, types.SentimentPositive, 0.11},
		{0.1, types.SentimentNeutral, 0.1},
		{0, types.SentimentNeutral, 0},
		{-0.1, types.SentimentNeutral, -0.1},
		{-0.456, types.SentimentNegative, -0.46},
		{-3, types.SentimentNegative, -1},
	}
	for _, tt := range tests {
		label, polarity := Sentiment(fixedScorer(tt.polarity), "ignored")
		assert.Equal(t, tt.label, label, "polarity %v", tt.polarity)
		assert.Equal(t, tt.rounded, polarity, "polarity %v", tt.polarity)
	}
}

func TestVaderScorer(t *testing.T) {
	v := NewVaderScorer()

	label, _ := Sentiment(v, "I love this wonderful, excellent team")
	assert.Equal(t, types.SentimentPositive, label)

	label, _ = Sentiment(v, "This was a terrible, awful, horrible failure")
	assert.Equal(t, types.SentimentNegative, label)

	label, polarity := Sentiment(v, "")
	assert.Equal(t, types.SentimentNeutral, label)
	assert.Equal(t, 0.0, polarity)
}
