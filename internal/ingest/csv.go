// Package ingest binds the CORE's dataset-agnostic contract (feature
// matrix, label vector, feature names, categorical-index set) to a
// header CSV whose last column is the binary target, per spec.md's
// dataset-ingestion collaborator contract.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"forestlab/forest/dataset"
)

// LoadCSV reads a header CSV from path. The header's last column is
// taken as the label name; every other column is a feature, parsed as
// a real number. categoricalNames lists the feature columns (by header
// name) to mark categorical; their values are still parsed as real
// numbers, truncation to whole numbers happens at split time. Empty
// lines are skipped.
func LoadCSV(path string, categoricalNames []string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("ingest: %s has no data rows", path)
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("ingest: %s header needs at least one feature column plus a label column", path)
	}
	featureNames := header[:len(header)-1]

	categorical := make(map[string]struct{}, len(categoricalNames))
	for _, name := range categoricalNames {
		categorical[name] = struct{}{}
	}
	var categoricalIdx []int
	for i, name := range featureNames {
		if _, ok := categorical[name]; ok {
			categoricalIdx = append(categoricalIdx, i)
		}
	}

	var features [][]float64
	var labels []int
	for lineNo, row := range rows[1:] {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("ingest: %s line %d has %d columns, want %d", path, lineNo+2, len(row), len(header))
		}

		vec := make([]float64, len(featureNames))
		for i := range featureNames {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("ingest: %s line %d column %q: %w", path, lineNo+2, featureNames[i], err)
			}
			vec[i] = v
		}

		label, err := strconv.Atoi(strings.TrimSpace(row[len(row)-1]))
		if err != nil {
			return nil, fmt.Errorf("ingest: %s line %d label column: %w", path, lineNo+2, err)
		}

		features = append(features, vec)
		labels = append(labels, label)
	}

	return dataset.New(features, labels, featureNames, categoricalIdx)
}

// WriteCSV writes ds back out as a header CSV in the same layout
// LoadCSV reads: feature columns in dataset order, label last. Feature
// names fall back to "Feat i" when ds carries none.
func WriteCSV(ds *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ingest: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, ds.FeatureCount()+1)
	for a := 0; a < ds.FeatureCount(); a++ {
		header = append(header, ds.FeatureName(a))
	}
	header = append(header, "label")
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < ds.SampleCount(); i++ {
		row := ds.Row(i)
		rec := make([]string, 0, len(row)+1)
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'f', 6, 64))
		}
		rec = append(rec, strconv.Itoa(ds.Label(i)))
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
