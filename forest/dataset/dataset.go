// Package dataset holds the immutable feature matrix and label vector
// the rest of the forest package family trains and predicts against.
package dataset

import "fmt"

// Dataset is an immutable N x F feature matrix paired with a binary
// label vector of length N. A subset of the feature columns may be
// categorical; their values are whole-number category identifiers, the
// fractional part is ignored everywhere a split consumes them.
type Dataset struct {
	features     [][]float64
	labels       []int
	featureNames []string
	categorical  map[int]struct{}
}

// New validates and constructs a Dataset. featureNames may be nil, in
// which case callers receive "Feat i" when a name is requested.
// categoricalIdx lists the feature columns treated as categorical.
func New(features [][]float64, labels []int, featureNames []string, categoricalIdx []int) (*Dataset, error) {
	n := len(features)
	if n != len(labels) {
		return nil, fmt.Errorf("dataset: %d rows but %d labels", n, len(labels))
	}
	if n == 0 {
		return nil, fmt.Errorf("dataset: no rows")
	}
	f := len(features[0])
	for i, row := range features {
		if len(row) != f {
			return nil, fmt.Errorf("dataset: row %d has %d features, want %d", i, len(row), f)
		}
	}
	if featureNames != nil && len(featureNames) != f {
		return nil, fmt.Errorf("dataset: %d feature names, want %d", len(featureNames), f)
	}
	for i, y := range labels {
		if y != 0 && y != 1 {
			return nil, fmt.Errorf("dataset: label at row %d is %d, want 0 or 1", i, y)
		}
	}
	cat := make(map[int]struct{}, len(categoricalIdx))
	for _, c := range categoricalIdx {
		if c < 0 || c >= f {
			return nil, fmt.Errorf("dataset: categorical index %d out of range [0,%d)", c, f)
		}
		cat[c] = struct{}{}
	}

	return &Dataset{
		features:     features,
		labels:       labels,
		featureNames: featureNames,
		categorical:  cat,
	}, nil
}

// SampleCount returns N, the number of rows.
func (d *Dataset) SampleCount() int { return len(d.features) }

// FeatureCount returns F, the number of columns.
func (d *Dataset) FeatureCount() int {
	if len(d.features) == 0 {
		return 0
	}
	return len(d.features[0])
}

// Row returns the feature vector at index i. Callers must not mutate it.
func (d *Dataset) Row(i int) []float64 { return d.features[i] }

// Label returns the binary label at index i.
func (d *Dataset) Label(i int) int { return d.labels[i] }

// FeatureName returns the name of feature a, or "Feat a" if no names
// were supplied at construction.
func (d *Dataset) FeatureName(a int) string {
	if d.featureNames != nil {
		return d.featureNames[a]
	}
	return fmt.Sprintf("Feat %d", a)
}

// FeatureNames returns the dataset's feature-name vector, or nil.
func (d *Dataset) FeatureNames() []string { return d.featureNames }

// IsCategorical reports whether feature a is a categorical attribute.
func (d *Dataset) IsCategorical(a int) bool {
	_, ok := d.categorical[a]
	return ok
}

// CategoricalIndices returns the set of categorical feature indices.
// The returned map must not be mutated by callers.
func (d *Dataset) CategoricalIndices() map[int]struct{} { return d.categorical }

// Subset returns a new Dataset whose rows follow the given index list,
// in order. The underlying row storage is shared; Dataset rows are
// never mutated in place, so sharing is safe.
func (d *Dataset) Subset(indices []int) *Dataset {
	features := make([][]float64, len(indices))
	labels := make([]int, len(indices))
	for i, idx := range indices {
		features[i] = d.features[idx]
		labels[i] = d.labels[idx]
	}
	return &Dataset{
		features:     features,
		labels:       labels,
		featureNames: d.featureNames,
		categorical:  d.categorical,
	}
}
