package prediction

import (
	"fmt"

	"github.com/jonathan/career-advisor/internal/types"
)

const leaf = -1

// Node is one split or leaf of a decision tree. Leaves have Left and Right set to -1.
// Value holds the class distribution observed at the node.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value"`
}

// Tree is a decision tree stored as a flat node array rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is a random forest classifier exported for inference.
type Forest struct {
	Version      string    `json:"version,omitempty"`
	FeatureNames []string  `json:"feature_names"`
	NClasses     int       `json:"n_classes"`
	Importances  []float64 `json:"feature_importances"`
	Trees        []Tree    `json:"trees"`
}

// PredictProbability averages the normalized leaf distributions of every tree.
// At each split, x[feature] <= threshold descends left.
func (f *Forest) PredictProbability(x []float64) ([]float64, error) {
	if len(x) != len(types.FeatureNames) {
		return nil, fmt.Errorf("expected %d features, got %d", len(types.FeatureNames), len(x))
	}

	proba := make([]float64, f.NClasses)
	for ti := range f.Trees {
		dist, err := f.Trees[ti].leafDistribution(x)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", ti, err)
		}
		for c := range proba {
			proba[c] += dist[c]
		}
	}
	for c := range proba {
		proba[c] /= float64(len(f.Trees))
	}
	return proba, nil
}

// FeatureImportances returns a copy of the forest's global importances.
func (f *Forest) FeatureImportances() []float64 {
	return append([]float64(nil), f.Importances...)
}

func (t *Tree) leafDistribution(x []float64) ([]float64, error) {
	i := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[i]
		if n.Left == leaf {
			return normalized(n.Value), nil
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return nil, fmt.Errorf("no leaf reached after %d steps", len(t.Nodes)+1)
}

func normalized(value []float64) []float64 {
	sum := 0.0
	for _, v := range value {
		sum += v
	}
	out := make([]float64, len(value))
	for i, v := range value {
		out[i] = v / sum
	}
	return out
}

// check verifies structure the schema cannot express: feature order, node references
// and non-empty leaf distributions.
func (f *Forest) check() error {
	for i, name := range types.FeatureNames {
		if f.FeatureNames[i] != name {
			return fmt.Errorf("feature %d is %q, expected %q", i, f.FeatureNames[i], name)
		}
	}
	for ti, tree := range f.Trees {
		for ni, n := range tree.Nodes {
			if err := checkNode(n, len(tree.Nodes)); err != nil {
				return fmt.Errorf("tree %d node %d: %w", ti, ni, err)
			}
		}
	}
	return nil
}

func checkNode(n Node, count int) error {
	if (n.Left == leaf) != (n.Right == leaf) {
		return fmt.Errorf("exactly one child is a leaf marker")
	}
	if n.Left == leaf {
		if n.Value[0]+n.Value[1] <= 0 {
			return fmt.Errorf("leaf has empty class distribution")
		}
		return nil
	}
	if n.Feature < 0 || n.Feature >= len(types.FeatureNames) {
		return fmt.Errorf("split feature %d out of range", n.Feature)
	}
	if n.Left >= count || n.Right >= count {
		return fmt.Errorf("child index out of range")
	}
	return nil
}
