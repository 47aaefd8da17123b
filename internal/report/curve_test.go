package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestCurveSizesEndsAtTotalAndIsStrictlyIncreasing(t *testing.T) {
	sizes := curveSizes(1000, 8)
	if sizes[len(sizes)-1] != 1000 {
		t.Errorf("expected the last curve size to equal the total, got %d", sizes[len(sizes)-1])
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Errorf("expected strictly increasing sizes, got %v", sizes)
		}
	}
}

func TestWritePredictionsCSVWritesExpectedColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_predictions.csv")
	predicted := []int{1, 0, 1}
	actual := []int{1, 0, 0}
	probabilities := []float64{0.9, 0.1, 1.5}

	if err := WritePredictionsCSV(path, predicted, actual, probabilities); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(predicted)+1 {
		t.Fatalf("expected %d rows plus a header, got %d", len(predicted), len(rows))
	}
	wantHeader := []string{"sample_index", "prediction", "actual", "prob_heart_disease", "confidence", "correct"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("column %d: got %q, want %q", i, rows[0][i], col)
		}
	}
	// row index 2 has a probability clamped to 1.0 and an incorrect prediction.
	if rows[3][3] != "1.000000" {
		t.Errorf("expected clamped probability 1.000000, got %q", rows[3][3])
	}
	if rows[3][5] != "false" {
		t.Errorf("expected correct=false for a mismatched row, got %q", rows[3][5])
	}
}

func TestWritePredictionsCSVRejectsMismatchedLengths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_predictions.csv")
	if err := WritePredictionsCSV(path, []int{1}, []int{1, 0}, []float64{0.5}); err == nil {
		t.Error("expected an error on mismatched slice lengths")
	}
}

func TestCurveSizesHandlesSmallTotal(t *testing.T) {
	sizes := curveSizes(5, 8)
	if len(sizes) == 0 {
		t.Fatal("expected at least one size")
	}
	if sizes[len(sizes)-1] != 5 {
		t.Errorf("expected the last size to equal the total, got %d", sizes[len(sizes)-1])
	}
}
