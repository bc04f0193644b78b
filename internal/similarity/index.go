// Package similarity provides a term-weighted vector space over a fixed document collection
// and ranks collection members by cosine similarity to an arbitrary query.
//
// Every query is vectorized together with the collection, so IDF weights are computed over
// {query} ∪ collection. Scores for the same document can therefore differ slightly between
// queries.
package similarity

import (
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/numeric"
)

// Scored pairs a collection item with its similarity to the query, scaled to [0, 100].
type Scored[T any] struct {
	Item  T
	Score float64
}

// Index is an immutable collection of items, each reduced to a bag-of-terms document.
// It is safe for concurrent use.
type Index[T any] struct {
	items []T
	docs  []string
}

// New builds an index over items. text extracts the document text for each item.
func New[T any](items []T, text func(T) string) *Index[T] {
	ix := &Index[T]{
		items: append([]T(nil), items...),
		docs:  make([]string, len(items)),
	}
	for i, item := range ix.items {
		ix.docs[i] = text(item)
	}
	return ix
}

// Len returns the number of items in the collection.
func (ix *Index[T]) Len() int {
	return len(ix.items)
}

// Rank returns the topN items most similar to the space-joined queryTerms, ordered by
// descending score with ties kept in collection order. Scores are rounded to two decimals.
// An empty query, an empty collection or a non-positive topN yields an empty result.
func (ix *Index[T]) Rank(queryTerms []string, topN int) []Scored[T] {
	if len(queryTerms) == 0 || len(ix.items) == 0 || topN <= 0 {
		return []Scored[T]{}
	}

	docs := make([]string, 0, len(ix.docs)+1)
	docs = append(docs, strings.Join(queryTerms, " "))
	docs = append(docs, ix.docs...)
	vectors := vectorize(docs)

	query := vectors[0]
	results := make([]Scored[T], len(ix.items))
	for i, item := range ix.items {
		score := numeric.Round2(cosine(query, vectors[i+1]) * 100)
		results[i] = Scored[T]{Item: item, Score: numeric.Clamp(score, 0, 100)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topN < len(results) {
		results = results[:topN]
	}
	return results
}
