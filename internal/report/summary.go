package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"forestlab/forest/metrics"
	"forestlab/forest/tuning"

	"codeberg.org/go-pdf/fpdf"
)

// RunSummary is the JSON-serializable record of one fit run: the
// hyperparameters used, the seed, and the resulting holdout metrics.
// Grounded on RunOutputs.java in original_source, which bundles the
// same fields into one artifact per run rather than scattering them
// across log lines.
type RunSummary struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Seed        int64                `json:"seed"`
	Tuple       tuning.Tuple         `json:"tuple"`
	Confusion   metrics.ConfusionMatrix `json:"confusion"`
	Accuracy    float64              `json:"accuracy"`
	Precision   float64              `json:"precision"`
	Recall      float64              `json:"recall"`
	F1          float64              `json:"f1"`
}

// NewRunSummary builds a RunSummary from a confusion matrix, computing
// the derived metrics once.
func NewRunSummary(seed int64, tuple tuning.Tuple, cm metrics.ConfusionMatrix, generatedAt time.Time) RunSummary {
	return RunSummary{
		GeneratedAt: generatedAt,
		Seed:        seed,
		Tuple:       tuple,
		Confusion:   cm,
		Accuracy:    cm.Accuracy(),
		Precision:   cm.Precision(),
		Recall:      cm.Recall(),
		F1:          cm.F1(),
	}
}

// WriteJSON writes s to path as indented JSON.
func (s RunSummary) WriteJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: encoding summary: %w", err)
	}
	return nil
}

// SummaryPDF renders a one-page PDF summary of s plus the path to a
// previously generated learning-curve PNG, if any. Grounded on
// RunOutputs.java's PDF export and wired through fpdf, the PDF
// library the rest of the example pack reaches for.
func SummaryPDF(path string, s RunSummary, curvePNG string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Random forest run summary", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	line("Generated at", s.GeneratedAt.Format(time.RFC3339))
	line("Seed", fmt.Sprintf("%d", s.Seed))
	line("Trees", fmt.Sprintf("%d", s.Tuple.NEstimators))
	line("Max depth", fmt.Sprintf("%d", s.Tuple.MaxDepth))
	line("Min samples split", fmt.Sprintf("%d", s.Tuple.MinSamplesSplit))
	line("Max features", fmt.Sprintf("%d", s.Tuple.MaxFeatures))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Holdout metrics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	line("Accuracy", fmt.Sprintf("%.4f", s.Accuracy))
	line("Precision", fmt.Sprintf("%.4f", s.Precision))
	line("Recall", fmt.Sprintf("%.4f", s.Recall))
	line("F1", fmt.Sprintf("%.4f", s.F1))
	line("TP / FP / TN / FN", fmt.Sprintf("%d / %d / %d / %d", s.Confusion.TP, s.Confusion.FP, s.Confusion.TN, s.Confusion.FN))

	if curvePNG != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Learning curve", "", 1, "L", false, 0, "")
		pdf.ImageOptions(curvePNG, 10, pdf.GetY(), 180, 0, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("report: writing pdf %s: %w", path, err)
	}
	return nil
}
