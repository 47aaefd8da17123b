package dataset

import "testing"

func TestNewRejectsRowLabelMismatch(t *testing.T) {
	_, err := New([][]float64{{1, 2}}, []int{0, 1}, nil, nil)
	if err == nil {
		t.Error("expected an error for mismatched row/label counts")
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil, nil, nil, nil)
	if err == nil {
		t.Error("expected an error for an empty dataset")
	}
}

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([][]float64{{1, 2}, {1, 2, 3}}, []int{0, 1}, nil, nil)
	if err == nil {
		t.Error("expected an error for ragged feature rows")
	}
}

func TestNewRejectsNonBinaryLabel(t *testing.T) {
	_, err := New([][]float64{{1}, {2}}, []int{0, 2}, nil, nil)
	if err == nil {
		t.Error("expected an error for a non-binary label")
	}
}

func TestNewRejectsOutOfRangeCategorical(t *testing.T) {
	_, err := New([][]float64{{1, 2}}, []int{0}, nil, []int{5})
	if err == nil {
		t.Error("expected an error for an out-of-range categorical index")
	}
}

func TestFeatureNameFallback(t *testing.T) {
	ds, err := New([][]float64{{1, 2}}, []int{0}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := ds.FeatureName(0); got != "Feat 0" {
		t.Errorf("expected fallback name 'Feat 0', got %q", got)
	}
}

func TestSubsetPreservesMetadata(t *testing.T) {
	ds, err := New([][]float64{{1, 2}, {3, 4}, {5, 6}}, []int{0, 1, 0}, []string{"a", "b"}, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	sub := ds.Subset([]int{2, 0})
	if sub.SampleCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", sub.SampleCount())
	}
	if sub.Row(0)[0] != 5 || sub.Label(0) != 0 {
		t.Errorf("expected row 0 of subset to be the original row 2, got %v label %d", sub.Row(0), sub.Label(0))
	}
	if sub.Row(1)[0] != 1 || sub.Label(1) != 0 {
		t.Errorf("expected row 1 of subset to be the original row 0, got %v label %d", sub.Row(1), sub.Label(1))
	}
	if !sub.IsCategorical(1) {
		t.Error("expected subset to preserve categorical indices")
	}
	if sub.FeatureName(0) != "a" {
		t.Error("expected subset to preserve feature names")
	}
}
