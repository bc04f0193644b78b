package analysis

import (
	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/numeric"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	atsBase         = 50
	atsPointsPerHit = 3
	atsSkillCap     = 30
	atsKeywordCap   = 20

	minSkillCount  = 5
	minReadability = 50
	minATSScore    = 70
)

// Improvement tips emitted by Analyze.
const (
	TipAddSkills       = "Add more specific technical skills"
	TipSimplify        = "Simplify language for better readability"
	TipActionVerbs     = "Include more action verbs and achievements"
	TipRemoveBias      = "Remove gendered language to avoid bias"
	TipPositiveFraming = "Use more positive, achievement-focused language"
	TipDefault         = "Great resume! Consider adding quantifiable achievements"
)

// ATSScore scores keyword-filter compatibility from the number of extracted skills and
// distinct action keyword hits: 50 base, +3 per skill up to 30, +3 per keyword up to 20.
func ATSScore(skillCount, keywordHits int) float64 {
	score := atsBase +
		min(atsSkillCap, max(0, skillCount)*atsPointsPerHit) +
		min(atsKeywordCap, max(0, keywordHits)*atsPointsPerHit)
	return numeric.Clamp(float64(score), 0, 100)
}

// Analyzer combines extraction, sentiment and scoring into a full resume analysis.
// It has no mutable state; identical text always yields identical results.
type Analyzer struct {
	extractor *Extractor
	scorer    PolarityScorer
}

// NewAnalyzer creates an analyzer over the catalog. A nil scorer selects VADER.
func NewAnalyzer(cat *catalog.Catalog, scorer PolarityScorer) *Analyzer {
	if scorer == nil {
		scorer = NewVaderScorer()
	}
	return &Analyzer{extractor: NewExtractor(cat), scorer: scorer}
}

// Analyze runs every metric over text and derives improvement tips.
func (a *Analyzer) Analyze(text string) *types.ResumeAnalysis {
	skills := a.extractor.ExtractSkills(text)
	label, polarity := Sentiment(a.scorer, text)
	bias := a.extractor.DetectBias(text)
	readability := Readability(text)
	ats := ATSScore(len(skills), a.extractor.ActionKeywordHits(text))

	return &types.ResumeAnalysis{
		Skills:           skills,
		Sentiment:        label,
		Polarity:         polarity,
		ReadabilityScore: readability,
		ATSScore:         ats,
		BiasDetected:     bias,
		ImprovementTips:  tips(len(skills), readability, ats, len(bias) > 0, label),
	}
}

func tips(skillCount int, readability, ats float64, biased bool, label types.SentimentLabel) []string {
	var out []string
	if skillCount < minSkillCount {
		out = append(out, TipAddSkills)
	}
	if readability < minReadability {
		out = append(out, TipSimplify)
	}
	if ats < minATSScore {
		out = append(out, TipActionVerbs)
	}
	if biased {
		out = append(out, TipRemoveBias)
	}
	if label == types.SentimentNegative {
		out = append(out, TipPositiveFraming)
	}
	if len(out) == 0 {
		out = append(out, TipDefault)
	}
	return out
}
