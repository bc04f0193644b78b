package analysis

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/jonathan/career-advisor/internal/numeric"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// PolarityScorer maps text to a polarity in [-1, 1].
type PolarityScorer interface {
	Polarity(text string) float64
}

// VaderScorer scores polarity with the VADER lexicon, using the compound score.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity implements PolarityScorer.
func (v *VaderScorer) Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return v.analyzer.PolarityScores(text).Compound
}

// Sentiment labels text as positive, negative or neutral and returns the polarity
// rounded to two decimals.
func Sentiment(scorer PolarityScorer, text string) (types.SentimentLabel, float64) {
	polarity := numeric.Clamp(scorer.Polarity(text), -1, 1)
	return labelFor(polarity), numeric.Round2(polarity)
}

func labelFor(polarity float64) types.SentimentLabel {
	switch {
	case polarity > positiveThreshold:
		return types.SentimentPositive
	case polarity < negativeThreshold:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}
