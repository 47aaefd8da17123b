package gendata

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateWritesExpectedColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthetic.csv")
	cfg := Config{
		Rows:           100,
		NumNumeric:     3,
		NumCategorical: 2,
		CategoryCounts: 4,
		Separability:   0.9,
		PositiveRate:   0.5,
		Seed:           1,
	}
	if err := Generate(cfg, path); err != nil {
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
	if len(rows) != cfg.Rows+1 {
		t.Fatalf("expected %d data rows plus a header, got %d rows total", cfg.Rows, len(rows))
	}
	wantCols := cfg.NumNumeric + cfg.NumCategorical + 1
	if len(rows[0]) != wantCols {
		t.Fatalf("expected %d columns, got %d", wantCols, len(rows[0]))
	}
	if rows[0][len(rows[0])-1] != "label" {
		t.Errorf("expected last header column to be 'label', got %q", rows[0][len(rows[0])-1])
	}
}

func TestGenerateRejectsNoFeatureColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthetic.csv")
	cfg := Config{Rows: 10}
	if err := Generate(cfg, path); err == nil {
		t.Error("expected an error when no feature columns are requested")
	}
}

func TestCategoricalNames(t *testing.T) {
	names := CategoricalNames(3)
	want := []string{"cat_0", "cat_1", "cat_2"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("index %d: got %q, want %q", i, names[i], w)
		}
	}
}
