// Package split implements the per-tree split-scoring scratch space:
// Laplace-smoothed entropy, information-gain-ratio over numeric and
// categorical attributes, and the memoised split descriptor each
// attribute resolves to once the caller commits to it.
package split

import (
	"math"
	"sort"

	"forestlab/forest/dataset"
)

// laplaceAlpha is the additive smoothing constant used throughout
// entropy and probability calculations (spec's alpha=1 Laplace rule).
const laplaceAlpha = 1.0

// Evaluator scopes split scoring to a single tree build over a fixed
// Dataset. It is private, mutable scratch space: create one per tree,
// never share it across goroutines.
type Evaluator struct {
	ds         *dataset.Dataset
	thresholds map[int]Descriptor // attribute -> memoised best descriptor
}

// New returns an Evaluator over ds. ds is read-only for the lifetime of
// the Evaluator.
func New(ds *dataset.Dataset) *Evaluator {
	return &Evaluator{
		ds:         ds,
		thresholds: make(map[int]Descriptor),
	}
}

// Entropy computes the Laplace-smoothed (alpha=1) Shannon entropy, base
// 2, of the label distribution over rows. Returns 0 for an empty row
// set.
func (e *Evaluator) Entropy(rows []int) float64 {
	if len(rows) == 0 {
		return 0
	}
	return entropyFromCounts(classCounts(e.ds, rows), len(rows))
}

// classCounts tallies labels 0/1 over rows.
func classCounts(ds *dataset.Dataset, rows []int) [2]int {
	var c [2]int
	for _, r := range rows {
		c[ds.Label(r)]++
	}
	return c
}

// entropyFromCounts applies the Laplace-smoothed entropy formula to a
// pair of class counts and the total T = len(rows) they came from. k is
// fixed at 2 (binary classification), matching spec.md's "k observed
// classes" generalised to the binary case used throughout this engine.
func entropyFromCounts(counts [2]int, total int) float64 {
	if total == 0 {
		return 0
	}
	const k = 2.0
	denom := float64(total) + laplaceAlpha*k
	h := 0.0
	for _, c := range counts {
		p := (float64(c) + laplaceAlpha) / denom
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// IsCategorical reports whether attribute a is a categorical column on
// the underlying Dataset.
func (e *Evaluator) IsCategorical(a int) bool { return e.ds.IsCategorical(a) }

// MostCommon returns the majority class over rows, breaking ties toward
// class 1 deterministically (count[1] >= count[0] wins).
func (e *Evaluator) MostCommon(rows []int) int {
	c := classCounts(e.ds, rows)
	if c[0] > c[1] {
		return 0
	}
	return 1
}

// ComputeIGR returns the information gain ratio for the best binary
// split of attribute a over rows, given the parent entropy h. It
// memoises the winning split descriptor for a so Split/GetSplitThreshold/
// GetCategoricalSplit can retrieve it once the caller commits to a. A
// return of 0 means no informative split was found; nothing useful is
// memoised in that case.
func (e *Evaluator) ComputeIGR(a int, rows []int, h float64) float64 {
	if e.ds.IsCategorical(a) {
		return e.computeCategoricalIGR(a, rows, h)
	}
	return e.computeNumericIGR(a, rows, h)
}

// computeNumericIGR implements spec.md 4.2's numeric sweep: sort rows by
// attribute value, then move samples one at a time from the right side
// to the left, evaluating a candidate threshold at every value change.
func (e *Evaluator) computeNumericIGR(a int, rows []int, h float64) float64 {
	n := len(rows)
	if n < 2 {
		return 0
	}

	sorted := make([]int, n)
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return e.ds.Row(sorted[i])[a] < e.ds.Row(sorted[j])[a]
	})

	var leftCounts, rightCounts [2]int
	rightCounts = classCounts(e.ds, sorted)
	leftSize, rightSize := 0, n

	bestGainRatio := 0.0
	bestThreshold := 0.0
	found := false

	for i := 0; i < n-1; i++ {
		label := e.ds.Label(sorted[i])
		leftCounts[label]++
		rightCounts[label]--
		leftSize++
		rightSize--

		vi := e.ds.Row(sorted[i])[a]
		viNext := e.ds.Row(sorted[i+1])[a]
		if vi == viNext {
			continue
		}

		gainRatio, threshold := e.scoreNumericSplit(h, leftCounts, rightCounts, leftSize, rightSize, n, vi, viNext)
		if gainRatio > bestGainRatio {
			bestGainRatio = gainRatio
			bestThreshold = threshold
			found = true
		}
	}

	if !found {
		return 0
	}
	e.thresholds[a] = Threshold{Value: bestThreshold}
	return bestGainRatio
}

func (e *Evaluator) scoreNumericSplit(h float64, leftCounts, rightCounts [2]int, leftSize, rightSize, n int, vi, viNext float64) (gainRatio, threshold float64) {
	leftEntropy := entropyFromCounts(leftCounts, leftSize)
	rightEntropy := entropyFromCounts(rightCounts, rightSize)

	wl := float64(leftSize) / float64(n)
	wr := float64(rightSize) / float64(n)
	weightedEntropy := wl*leftEntropy + wr*rightEntropy
	infoGain := h - weightedEntropy

	splitInfo := weightedSplitInfo(wl, wr)
	if splitInfo == 0 {
		return 0, (vi + viNext) / 2
	}
	return infoGain / splitInfo, (vi + viNext) / 2
}

// weightedSplitInfo computes -sum(w*log2(w)) over the nonzero weights.
func weightedSplitInfo(weights ...float64) float64 {
	info := 0.0
	for _, w := range weights {
		if w > 0 {
			info -= w * math.Log2(w)
		}
	}
	return info
}

// computeCategoricalIGR implements spec.md 4.2's purity-ordered
// sequential merge: categories are ranked by purity ascending (ties by
// ascending category id), then evaluated as sequential prefixes
// absorbed into the left side.
func (e *Evaluator) computeCategoricalIGR(a int, rows []int, h float64) float64 {
	catCounts := make(map[int][2]int)
	for _, r := range rows {
		cat := int(e.ds.Row(r)[a])
		c := catCounts[cat]
		c[e.ds.Label(r)]++
		catCounts[cat] = c
	}
	if len(catCounts) < 2 {
		return 0
	}

	cats := make([]int, 0, len(catCounts))
	for cat := range catCounts {
		cats = append(cats, cat)
	}
	// Categories of equal purity keep ascending id order, so the result
	// does not depend on map iteration order.
	sort.Ints(cats)
	sort.SliceStable(cats, func(i, j int) bool {
		return purity(catCounts[cats[i]]) < purity(catCounts[cats[j]])
	})

	n := len(rows)
	var leftCounts, rightCounts [2]int
	rightCounts = classCounts(e.ds, rows)
	leftSize, rightSize := 0, n

	bestGainRatio := 0.0
	var bestPrefix []int
	found := false

	for i := 0; i < len(cats)-1; i++ {
		cat := cats[i]
		c := catCounts[cat]
		leftCounts[0] += c[0]
		leftCounts[1] += c[1]
		rightCounts[0] -= c[0]
		rightCounts[1] -= c[1]
		leftSize += c[0] + c[1]
		rightSize -= c[0] + c[1]

		leftEntropy := entropyFromCounts(leftCounts, leftSize)
		rightEntropy := entropyFromCounts(rightCounts, rightSize)
		wl := float64(leftSize) / float64(n)
		wr := float64(rightSize) / float64(n)
		weightedEntropy := wl*leftEntropy + wr*rightEntropy
		infoGain := h - weightedEntropy

		splitInfo := weightedSplitInfo(wl, wr)
		gainRatio := 0.0
		if splitInfo != 0 {
			gainRatio = infoGain / splitInfo
		}

		if gainRatio > bestGainRatio {
			bestGainRatio = gainRatio
			bestPrefix = append([]int(nil), cats[:i+1]...)
			found = true
		}
	}

	if !found {
		return 0
	}
	left := make(map[int]struct{}, len(bestPrefix))
	for _, c := range bestPrefix {
		left[c] = struct{}{}
	}
	e.thresholds[a] = CategorySet{Categories: left}
	return bestGainRatio
}

// purity returns maxClassCount/totalCount for a pair of class counts.
func purity(counts [2]int) float64 {
	total := counts[0] + counts[1]
	if total == 0 {
		return 0
	}
	maxCount := counts[0]
	if counts[1] > maxCount {
		maxCount = counts[1]
	}
	return float64(maxCount) / float64(total)
}

// Split partitions rows into left/right using the descriptor memoised
// for attribute a by the most recent ComputeIGR call. Callers must have
// called ComputeIGR(a, rows, ...) first.
func (e *Evaluator) Split(a int, rows []int) (left, right []int) {
	d, ok := e.thresholds[a]
	if !ok {
		return rows, nil
	}
	for _, r := range rows {
		if d.GoesLeft(e.ds.Row(r)[a]) {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return left, right
}

// GetSplitThreshold returns the memoised numeric threshold for a, if
// attribute a's best split was numeric.
func (e *Evaluator) GetSplitThreshold(a int) (float64, bool) {
	d, ok := e.thresholds[a]
	if !ok {
		return 0, false
	}
	t, ok := d.(Threshold)
	return t.Value, ok
}

// GetCategoricalSplit returns the memoised left-category set for a, if
// attribute a's best split was categorical.
func (e *Evaluator) GetCategoricalSplit(a int) (map[int]struct{}, bool) {
	d, ok := e.thresholds[a]
	if !ok {
		return nil, false
	}
	c, ok := d.(CategorySet)
	return c.Categories, ok
}

// Descriptor returns the memoised descriptor for a, for callers (such
// as DecisionTree) that want the sum type directly instead of the
// type-specific accessors above.
func (e *Evaluator) Descriptor(a int) (Descriptor, bool) {
	d, ok := e.thresholds[a]
	return d, ok
}
