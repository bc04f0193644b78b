// Package analysis scores free-text resumes: skill extraction, sentiment, bias detection,
// readability and ATS compatibility.
package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/numeric"
)

// neutralReadability is returned when text has no words to measure.
const neutralReadability = 50.0

var vowelGroups = regexp.MustCompile(`[aeiou]+`)

// Extractor pulls vocabulary matches out of resume text. It holds only precompiled,
// read-only state and is safe for concurrent use.
type Extractor struct {
	skills         []string
	actionKeywords []string
	biasTerms      []string
	biasPatterns   []*regexp.Regexp
}

// NewExtractor builds an extractor over the catalog's vocabularies.
func NewExtractor(cat *catalog.Catalog) *Extractor {
	e := &Extractor{
		skills:         cat.Skills(),
		actionKeywords: cat.ActionKeywords(),
		biasTerms:      cat.BiasTerms(),
	}
	e.biasPatterns = make([]*regexp.Regexp, len(e.biasTerms))
	for i, term := range e.biasTerms {
		e.biasPatterns[i] = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(term) + `(?:$|[^\p{L}\p{N}_])`)
	}
	return e
}

// ExtractSkills returns every catalog skill that occurs as a substring of the lowercased
// text, in catalog order and without duplicates. Short skills such as "ai" also match
// inside longer words.
func (e *Extractor) ExtractSkills(text string) []string {
	return containedTerms(normalize(text), e.skills)
}

// DetectBias returns the distinct bias terms that occur as whole words in text. Any
// Unicode letter, digit or underscore counts as a word character.
func (e *Extractor) DetectBias(text string) []string {
	lower := normalize(text)
	found := []string{}
	for i, re := range e.biasPatterns {
		if re.MatchString(lower) {
			found = appendUnique(found, e.biasTerms[i])
		}
	}
	return found
}

// ActionKeywordHits counts the distinct action keywords contained in text.
func (e *Extractor) ActionKeywordHits(text string) int {
	return len(containedTerms(normalize(text), e.actionKeywords))
}

// Readability approximates the Flesch Reading Ease score of text, clamped to [0, 100]
// and rounded to two decimals. Sentences are split on '.', words on whitespace, and
// syllables are counted as vowel groups with a minimum of one per word.
func Readability(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return neutralReadability
	}
	sentences := len(strings.Split(text, "."))

	syllables := 0
	for _, w := range words {
		syllables += max(1, len(vowelGroups.FindAllStringIndex(strings.ToLower(w), -1)))
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord

	return numeric.Round2(numeric.Clamp(score, 0, 100))
}

func normalize(text string) string {
	return strings.ToLower(strings.ToValidUTF8(text, ""))
}

func containedTerms(lower string, vocabulary []string) []string {
	found := []string{}
	for _, term := range vocabulary {
		if term != "" && strings.Contains(lower, term) {
			found = appendUnique(found, term)
		}
	}
	return found
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
