package similarity

import (
	"math"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// tokenPattern selects runs of two or more word characters, so single-letter
// words never become terms.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// tokenize lowercases text and splits it into terms. Invalid UTF-8 is dropped.
func tokenize(text string) []string {
	text = strings.ToLower(strings.ToValidUTF8(text, ""))
	return tokenPattern.FindAllString(text, -1)
}

// vectorize builds L2-normalized TF-IDF vectors for docs over their shared vocabulary.
// IDF is smoothed: idf(t) = ln((1+n)/(1+df(t))) + 1.
func vectorize(docs []string) [][]float64 {
	tokens := make([][]string, len(docs))
	vocab := make(map[string]int)
	for i, doc := range docs {
		tokens[i] = tokenize(doc)
		for _, term := range tokens[i] {
			if _, ok := vocab[term]; !ok {
				vocab[term] = len(vocab)
			}
		}
	}

	df := make([]float64, len(vocab))
	counts := make([][]float64, len(docs))
	for i, terms := range tokens {
		counts[i] = make([]float64, len(vocab))
		for _, term := range terms {
			counts[i][vocab[term]]++
		}
		for j, c := range counts[i] {
			if c > 0 {
				df[j]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for j := range idf {
		idf[j] = math.Log((1+n)/(1+df[j])) + 1
	}

	for _, vec := range counts {
		floats.Mul(vec, idf)
		if norm := floats.Norm(vec, 2); norm > 0 {
			floats.Scale(1/norm, vec)
		}
	}
	return counts
}

// cosine returns the cosine similarity of two L2-normalized vectors.
// A zero vector has similarity 0 with everything.
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	sim := floats.Dot(a, b)
	if math.IsNaN(sim) {
		return 0
	}
	return sim
}
