// Package tree implements recursive binary decision-tree induction over
// a forest/dataset.Dataset, using forest/split's SplitEvaluator for
// attribute scoring, plus DOT serialisation for visualisation tooling.
package tree

import (
	"math/rand"

	"forestlab/forest/dataset"
	"forestlab/forest/split"
)

// minEntropyToSplit is the stopping-rule entropy threshold below which
// a node is considered pure enough to leaf out. Arbitrary per spec, not
// exposed as a tunable hyperparameter.
const minEntropyToSplit = 0.01

// DecisionTree owns its root node and is read-only once Fit returns.
// Hyperparameters are fixed at construction.
type DecisionTree struct {
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int

	rng  *rand.Rand
	Root Node

	featureNames []string
	categorical  map[int]struct{}
}

// New returns a DecisionTree configured with the given hyperparameters
// that draws its feature samples from rng directly (rng is kept, not
// copied: pass a *rand.Rand that no other tree or goroutine uses).
func New(maxDepth, minSamplesSplit, maxFeatures int, rng *rand.Rand) *DecisionTree {
	return &DecisionTree{
		MaxDepth:        maxDepth,
		MinSamplesSplit: minSamplesSplit,
		MaxFeatures:     maxFeatures,
		rng:             rng,
	}
}

// Fit grows the tree from ds. Fit may be called at most once.
func (t *DecisionTree) Fit(ds *dataset.Dataset) {
	t.featureNames = ds.FeatureNames()
	t.categorical = ds.CategoricalIndices()

	n := ds.SampleCount()
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	f := ds.FeatureCount()
	attrs := make([]int, f)
	for i := range attrs {
		attrs[i] = i
	}

	ev := split.New(ds)
	t.Root = t.buildTree(ev, rows, attrs, 0)
}

// buildTree is the core recursion described in spec.md 4.3.
func (t *DecisionTree) buildTree(ev *split.Evaluator, rows []int, attrs []int, depth int) Node {
	h := ev.Entropy(rows)

	if len(attrs) == 0 || h < minEntropyToSplit || depth >= t.MaxDepth || len(rows) < t.MinSamplesSplit {
		return &LeafNode{Class: ev.MostCommon(rows), Samples: len(rows)}
	}

	candidates := attrs
	if len(attrs) > t.MaxFeatures {
		candidates = t.sampleFeatures(attrs, t.MaxFeatures)
	}

	bestAttr := -1
	bestIGR := 0.0
	for _, a := range candidates {
		igr := ev.ComputeIGR(a, rows, h)
		if igr > bestIGR {
			bestIGR = igr
			bestAttr = a
		}
	}

	if bestAttr == -1 || bestIGR <= 0 {
		return &LeafNode{Class: ev.MostCommon(rows), Samples: len(rows)}
	}

	left, right := ev.Split(bestAttr, rows)
	if len(left) == 0 || len(right) == 0 {
		return &LeafNode{Class: ev.MostCommon(rows), Samples: len(rows)}
	}

	remaining := removeAttr(attrs, bestAttr)
	leftChild := t.buildTree(ev, left, remaining, depth+1)
	rightChild := t.buildTree(ev, right, remaining, depth+1)

	if lf, ok := leftChild.(*LeafNode); ok {
		if rt, ok := rightChild.(*LeafNode); ok && lf.Class == rt.Class {
			return &LeafNode{Class: lf.Class, Samples: len(rows)}
		}
	}

	descriptor, _ := ev.Descriptor(bestAttr)
	return &InternalNode{
		Attribute: bestAttr,
		Split:     descriptor,
		Left:      leftChild,
		Right:     rightChild,
		Samples:   len(rows),
	}
}

// sampleFeatures draws a k-sized sample from attrs via Fisher-Yates,
// Algorithm P (Knuth, TAOCP Vol. 2, p. 145) -- the same technique
// random-forest implementations use to draw a candidate feature subset
// at each split without materialising a full permutation.
func (t *DecisionTree) sampleFeatures(attrs []int, k int) []int {
	pool := make([]int, len(attrs))
	copy(pool, attrs)
	n := len(pool)
	for i := 0; i < k && i < n-1; i++ {
		j := i + t.rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func removeAttr(attrs []int, drop int) []int {
	out := make([]int, 0, len(attrs)-1)
	for _, a := range attrs {
		if a != drop {
			out = append(out, a)
		}
	}
	return out
}

// Predict descends from the root and returns the predicted class for a
// single feature vector.
func (t *DecisionTree) Predict(features []float64) int {
	n := t.Root
	for {
		switch v := n.(type) {
		case *LeafNode:
			return v.Class
		case *InternalNode:
			if v.Split.GoesLeft(features[v.Attribute]) {
				n = v.Left
			} else {
				n = v.Right
			}
		}
	}
}
