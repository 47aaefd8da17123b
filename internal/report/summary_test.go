package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"forestlab/forest/metrics"
	"forestlab/forest/tuning"
)

func TestRunSummaryWriteJSON(t *testing.T) {
	cm := metrics.ConfusionMatrix{TP: 8, FP: 2, TN: 7, FN: 3}
	s := NewRunSummary(42, tuning.Tuple{NEstimators: 50, MaxDepth: 6, MinSamplesSplit: 2, MaxFeatures: 3}, cm, time.Unix(0, 0))

	path := filepath.Join(t.TempDir(), "summary.json")
	if err := s.WriteJSON(path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded RunSummary
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Seed != 42 || decoded.Tuple.NEstimators != 50 {
		t.Errorf("unexpected decoded summary: %+v", decoded)
	}
	if decoded.Accuracy != s.Accuracy {
		t.Errorf("expected accuracy %f, got %f", s.Accuracy, decoded.Accuracy)
	}
}

func TestWriteTreeDOTWritesFile(t *testing.T) {
	dir := t.TempDir()
	if err := WriteTreeDOT(dir, 0, "digraph DecisionTree {\n}\n"); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "tree_viz_0.dot"))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "digraph DecisionTree {\n}\n" {
		t.Errorf("unexpected dot content: %q", raw)
	}
}

func TestRunDirCreatesDirectory(t *testing.T) {
	base := t.TempDir()
	dir, err := RunDir(base, 7, "20260101-000000")
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("expected RunDir to create a directory")
	}
}
