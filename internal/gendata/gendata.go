// Package gendata synthesizes tabular numeric+categorical CSVs for
// exercising forest/ensemble without a real dataset, the way
// internal/data/generate.go synthesized expense records for the
// original fraud model, generalized here to an arbitrary numeric and
// categorical feature mix and a tunable class separability instead of
// a fixed expense schema.
package gendata

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

// Config controls synthetic dataset generation.
type Config struct {
	Rows             int
	NumNumeric       int
	NumCategorical   int
	CategoryCounts   int     // categories per categorical column
	Separability     float64 // 0 = features independent of the label; larger = stronger label signal
	PositiveRate     float64
	Seed             int64
}

// Generate writes a header CSV to path: NumNumeric real-valued
// columns named "num_i", NumCategorical integer-coded columns named
// "cat_i", and a trailing "label" column in {0,1}.
//
// Each row's label is drawn first (1 with probability PositiveRate).
// For label-1 rows every numeric feature (standard normal noise) is
// shifted up by Separability, and each categorical feature is set to
// the last category code with probability Separability; label-0 rows
// get unshifted noise and uniform category codes. A single
// separability knob replaces generate.go's hand-tuned per-field weights.
func Generate(cfg Config, path string) error {
	if cfg.Rows <= 0 {
		return fmt.Errorf("gendata: rows must be positive")
	}
	if cfg.NumNumeric+cfg.NumCategorical == 0 {
		return fmt.Errorf("gendata: need at least one feature column")
	}
	if cfg.CategoryCounts < 2 {
		cfg.CategoryCounts = 2
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gendata: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, cfg.NumNumeric+cfg.NumCategorical+1)
	for i := 0; i < cfg.NumNumeric; i++ {
		header = append(header, fmt.Sprintf("num_%d", i))
	}
	for i := 0; i < cfg.NumCategorical; i++ {
		header = append(header, fmt.Sprintf("cat_%d", i))
	}
	header = append(header, "label")
	if err := w.Write(header); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	for i := 0; i < cfg.Rows; i++ {
		label := 0
		if rng.Float64() < cfg.PositiveRate {
			label = 1
		}

		row := make([]string, 0, len(header))
		signal := 0.0
		for j := 0; j < cfg.NumNumeric; j++ {
			base := rng.NormFloat64()
			if label == 1 {
				base += cfg.Separability
			}
			signal += base
			row = append(row, strconv.FormatFloat(base, 'f', 6, 64))
		}
		for j := 0; j < cfg.NumCategorical; j++ {
			code := rng.Intn(cfg.CategoryCounts)
			if label == 1 && rng.Float64() < cfg.Separability {
				code = cfg.CategoryCounts - 1
			}
			row = append(row, strconv.Itoa(code))
		}
		row = append(row, strconv.Itoa(label))

		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// CategoricalNames returns the header names of the categorical
// columns Generate writes, for feeding straight into
// internal/ingest.LoadCSV.
func CategoricalNames(numCategorical int) []string {
	names := make([]string, numCategorical)
	for i := range names {
		names[i] = fmt.Sprintf("cat_%d", i)
	}
	return names
}
