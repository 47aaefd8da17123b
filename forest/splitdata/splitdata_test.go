package splitdata

import (
	"testing"

	"forestlab/forest/dataset"
)

func makeDataset(t *testing.T, n int) *dataset.Dataset {
	var features [][]float64
	var labels []int
	for i := 0; i < n; i++ {
		features = append(features, []float64{float64(i)})
		labels = append(labels, i%2)
	}
	ds, err := dataset.New(features, labels, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestTrainTestSplitPartitionsAllRows(t *testing.T) {
	ds := makeDataset(t, 50)
	train, test, err := TrainTestSplit(ds, 0.2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if train.SampleCount()+test.SampleCount() != ds.SampleCount() {
		t.Errorf("expected train+test to cover every row, got %d+%d != %d", train.SampleCount(), test.SampleCount(), ds.SampleCount())
	}
	if test.SampleCount() != 10 {
		t.Errorf("expected 20%% of 50 rows (10) held out, got %d", test.SampleCount())
	}
}

func TestTrainTestSplitRejectsOutOfRangeFraction(t *testing.T) {
	ds := makeDataset(t, 10)
	if _, _, err := TrainTestSplit(ds, 0, 1); err == nil {
		t.Error("expected an error for testFraction=0")
	}
	if _, _, err := TrainTestSplit(ds, 1, 1); err == nil {
		t.Error("expected an error for testFraction=1")
	}
}

func TestTrainTestSplitIsDeterministic(t *testing.T) {
	ds := makeDataset(t, 40)
	train1, test1, err := TrainTestSplit(ds, 0.25, 7)
	if err != nil {
		t.Fatal(err)
	}
	train2, test2, err := TrainTestSplit(ds, 0.25, 7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < train1.SampleCount(); i++ {
		if train1.Row(i)[0] != train2.Row(i)[0] {
			t.Fatalf("expected identical seeds to produce identical train partitions, mismatch at row %d", i)
		}
	}
	for i := 0; i < test1.SampleCount(); i++ {
		if test1.Row(i)[0] != test2.Row(i)[0] {
			t.Fatalf("expected identical seeds to produce identical test partitions, mismatch at row %d", i)
		}
	}
}

func TestKFoldSplitFoldsAreDisjointAndCoverAllRows(t *testing.T) {
	ds := makeDataset(t, 53)
	folds, err := KFoldSplit(ds, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(folds) != 5 {
		t.Fatalf("expected 5 folds, got %d", len(folds))
	}
	for i, f := range folds {
		if f.Train.SampleCount()+f.Validation.SampleCount() != ds.SampleCount() {
			t.Errorf("fold %d: train+validation does not cover all rows", i)
		}
		seen := map[float64]bool{}
		for j := 0; j < f.Train.SampleCount(); j++ {
			seen[f.Train.Row(j)[0]] = true
		}
		for j := 0; j < f.Validation.SampleCount(); j++ {
			v := f.Validation.Row(j)[0]
			if seen[v] {
				t.Errorf("fold %d: value %v present in both train and validation", i, v)
			}
		}
	}
}

func TestKFoldSplitRejectsInvalidK(t *testing.T) {
	ds := makeDataset(t, 10)
	if _, err := KFoldSplit(ds, 1, 1); err == nil {
		t.Error("expected an error for k=1")
	}
	if _, err := KFoldSplit(ds, 11, 1); err == nil {
		t.Error("expected an error for k greater than the sample count")
	}
}
