package ensemble

import (
	"math/rand"
	"testing"

	"forestlab/forest/dataset"
	"forestlab/forest/tree"
)

func makeSeparableDataset(t *testing.T, n int) *dataset.Dataset {
	rng := rand.New(rand.NewSource(42))
	var features [][]float64
	var labels []int
	for i := 0; i < n; i++ {
		label := i % 2
		x := rng.NormFloat64()
		if label == 1 {
			x += 6
		}
		features = append(features, []float64{x, rng.Float64()})
		labels = append(labels, label)
	}
	ds, err := dataset.New(features, labels, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestFitProducesOneTreePerEstimator(t *testing.T) {
	ds := makeSeparableDataset(t, 60)
	rf := New(7, 5, 2, 2, 1)
	if err := rf.Fit(ds); err != nil {
		t.Fatal(err)
	}
	if len(rf.Trees) != 7 {
		t.Errorf("expected 7 trees, got %d", len(rf.Trees))
	}
}

func TestFitIsDeterministicUnderSeed(t *testing.T) {
	ds := makeSeparableDataset(t, 60)
	a := New(10, 5, 2, 2, 99)
	b := New(10, 5, 2, 2, 99)
	if err := a.Fit(ds); err != nil {
		t.Fatal(err)
	}
	if err := b.Fit(ds); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < ds.SampleCount(); i++ {
		row := ds.Row(i)
		if a.Predict(row) != b.Predict(row) {
			t.Fatalf("expected two forests fit with the same seed to agree on row %d", i)
		}
	}
}

func TestFitRejectsInvalidHyperparameters(t *testing.T) {
	ds := makeSeparableDataset(t, 10)
	cases := []*RandomForest{
		New(0, 5, 2, 1, 1),
		New(5, 0, 2, 1, 1),
		New(5, 5, 1, 1, 1),
		New(5, 5, 2, 0, 1),
		New(5, 5, 2, 99, 1),
	}
	for i, rf := range cases {
		if err := rf.Fit(ds); err == nil {
			t.Errorf("case %d: expected an error for invalid hyperparameters", i)
		}
	}
}

func TestScoreOnSeparableDataIsHigh(t *testing.T) {
	ds := makeSeparableDataset(t, 200)
	rf := New(20, 6, 2, 2, 7)
	if err := rf.Fit(ds); err != nil {
		t.Fatal(err)
	}
	score := rf.Score(ds)
	if score < 0.9 {
		t.Errorf("expected accuracy on a cleanly separable dataset to be at least 0.9, got %f", score)
	}
}

func TestPredictProbabilityIsBoundedAndConsistentWithPredict(t *testing.T) {
	ds := makeSeparableDataset(t, 100)
	rf := New(11, 5, 2, 2, 3)
	if err := rf.Fit(ds); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < ds.SampleCount(); i++ {
		row := ds.Row(i)
		p := rf.PredictProbability(row)
		if p <= 0 || p >= 1 {
			t.Fatalf("expected a Laplace-smoothed probability strictly in (0,1), got %f", p)
		}
		pred := rf.Predict(row)
		if pred == 1 && p < 0.5-1e-9 {
			t.Errorf("row %d: predicted class 1 but probability %f is below 0.5", i, p)
		}
		if pred == 0 && p > 0.5+1e-9 {
			t.Errorf("row %d: predicted class 0 but probability %f is above 0.5", i, p)
		}
	}
}

func TestPredictBreaksTiesTowardClassOne(t *testing.T) {
	rf := &RandomForest{Trees: []*tree.DecisionTree{
		{Root: &tree.LeafNode{Class: 0}},
		{Root: &tree.LeafNode{Class: 1}},
	}}
	if got := rf.Predict([]float64{0}); got != 1 {
		t.Errorf("expected an equal vote split to predict class 1, got %d", got)
	}
}

func TestPredictMatrixMatchesPerRowPredict(t *testing.T) {
	ds := makeSeparableDataset(t, 30)
	rf := New(9, 5, 2, 2, 5)
	if err := rf.Fit(ds); err != nil {
		t.Fatal(err)
	}
	matrix := make([][]float64, ds.SampleCount())
	for i := range matrix {
		matrix[i] = ds.Row(i)
	}
	batch := rf.PredictMatrix(matrix)
	for i, row := range matrix {
		if batch[i] != rf.Predict(row) {
			t.Errorf("row %d: PredictMatrix disagrees with Predict", i)
		}
	}
}
