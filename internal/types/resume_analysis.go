package types

// SentimentLabel classifies the overall tone of a resume.
type SentimentLabel string

// Sentiment labels derived from polarity thresholds of +/-0.1.
const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// ResumeAnalysis is the result of scoring a free-text resume.
type ResumeAnalysis struct {
	Skills           []string       `json:"skills"`
	Sentiment        SentimentLabel `json:"sentiment"`
	Polarity         float64        `json:"polarity"`
	ReadabilityScore float64        `json:"readability_score"`
	ATSScore         float64        `json:"ats_score"`
	BiasDetected     []string       `json:"bias_detected"`
	ImprovementTips  []string       `json:"improvement_tips"`
}
