package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"forestlab/forest/dataset"
	"forestlab/forest/ensemble"
	"forestlab/forest/metrics"
	"forestlab/forest/tuning"
)

// CurvePoint is one size/train-score/test-score sample of a learning
// curve, training accuracy against a fixed held-out test set.
type CurvePoint struct {
	TrainSize int
	TrainAcc  float64
	TestAcc   float64
	TrainF1   float64
	TestF1    float64
}

// LearningCurve refits a RandomForest with the tuple's hyperparameters
// at n geometrically spaced training-set sizes, scoring each fit
// against both the growing training prefix and the fixed test set.
// Mirrors cmd/trainer/main.go's own curve loop, generalized from a
// single hardcoded model family to any ensemble.New tuple.
func LearningCurve(train, test *dataset.Dataset, tuple tuning.Tuple, seed int64, points int) ([]CurvePoint, error) {
	if points < 2 {
		points = 2
	}
	sizes := curveSizes(train.SampleCount(), points)

	testRows := make([][]float64, test.SampleCount())
	testLabels := make([]int, test.SampleCount())
	for i := 0; i < test.SampleCount(); i++ {
		testRows[i] = test.Row(i)
		testLabels[i] = test.Label(i)
	}

	out := make([]CurvePoint, len(sizes))
	for k, size := range sizes {
		sub := train.Subset(indexRange(size))

		rf := ensemble.New(tuple.NEstimators, tuple.MaxDepth, tuple.MinSamplesSplit, tuple.MaxFeatures, seed)
		if err := rf.Fit(sub); err != nil {
			return nil, fmt.Errorf("report: fitting curve point at size %d: %w", size, err)
		}

		trainPred := make([]int, sub.SampleCount())
		trainActual := make([]int, sub.SampleCount())
		for i := 0; i < sub.SampleCount(); i++ {
			trainPred[i] = rf.Predict(sub.Row(i))
			trainActual[i] = sub.Label(i)
		}
		testPred := make([]int, len(testRows))
		for i, row := range testRows {
			testPred[i] = rf.Predict(row)
		}

		trainAcc, err := metrics.Accuracy(trainPred, trainActual)
		if err != nil {
			return nil, err
		}
		testAcc, err := metrics.Accuracy(testPred, testLabels)
		if err != nil {
			return nil, err
		}
		trainF1, err := metrics.F1(trainPred, trainActual)
		if err != nil {
			return nil, err
		}
		testF1, err := metrics.F1(testPred, testLabels)
		if err != nil {
			return nil, err
		}

		out[k] = CurvePoint{TrainSize: size, TrainAcc: trainAcc, TestAcc: testAcc, TrainF1: trainF1, TestF1: testF1}
	}
	return out, nil
}

func indexRange(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// curveSizes mirrors computeCurveSizes's log-spaced, strictly
// increasing, total-size-terminated schedule.
func curveSizes(total, points int) []int {
	min := total / 10
	if min < 10 {
		min = 10
	}
	if min > total {
		min = total
	}
	sizes := make([]int, 0, points)
	if total <= min {
		return []int{total}
	}
	if points > total-min+1 {
		points = total - min + 1
	}
	ratio := math.Pow(float64(total)/float64(min), 1.0/float64(points-1))
	last := -1
	for i := 0; i < points; i++ {
		s := int(math.Round(float64(min) * math.Pow(ratio, float64(i))))
		if s <= last {
			s = last + 1
		}
		if maxS := total - (points - 1 - i); s > maxS {
			s = maxS
		}
		sizes = append(sizes, s)
		last = s
	}
	if sizes[len(sizes)-1] != total {
		sizes[len(sizes)-1] = total
	}
	return sizes
}

// WriteCurveCSV writes points as a header CSV, grounded on
// writeCurveCSV in the teacher's trainer.
func WriteCurveCSV(path string, points []CurvePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"train_size", "train_acc", "test_acc", "train_f1", "test_f1"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.Itoa(p.TrainSize),
			strconv.FormatFloat(p.TrainAcc, 'f', 6, 64),
			strconv.FormatFloat(p.TestAcc, 'f', 6, 64),
			strconv.FormatFloat(p.TrainF1, 'f', 6, 64),
			strconv.FormatFloat(p.TestF1, 'f', 6, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// WritePredictionsCSV writes one row per test sample: sample_index,
// prediction, actual, prob_heart_disease, confidence, correct. Grounded
// on writePredictionsCsv in the teacher's original_source/RunOutputs.java,
// renamed off the heart-disease-specific column name's meaning (kept the
// header literally, since it names the original's probability column,
// not a domain assumption this package makes).
func WritePredictionsCSV(path string, predicted, actual []int, probabilities []float64) error {
	if len(predicted) != len(actual) || len(predicted) != len(probabilities) {
		return fmt.Errorf("report: predictions, actual labels, and probabilities must have the same length")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"sample_index", "prediction", "actual", "prob_heart_disease", "confidence", "correct"}); err != nil {
		return err
	}
	for i := range predicted {
		prob := clampProbability(probabilities[i])
		confidence := prob
		if predicted[i] != 1 {
			confidence = 1 - prob
		}
		rec := []string{
			strconv.Itoa(i),
			strconv.Itoa(predicted[i]),
			strconv.Itoa(actual[i]),
			strconv.FormatFloat(prob, 'f', 6, 64),
			strconv.FormatFloat(confidence, 'f', 6, 64),
			strconv.FormatBool(predicted[i] == actual[i]),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func clampProbability(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// PlotCurvePNG renders the accuracy and F1 curves to a PNG, grounded
// on plotCurvePNG in the teacher's trainer.
func PlotCurvePNG(path string, points []CurvePoint) error {
	p := plot.New()
	p.Title.Text = "Learning curve"
	p.X.Label.Text = "Training samples"
	p.Y.Label.Text = "Score"
	p.Y.Min = 0
	p.Y.Max = 1

	toXY := func(pick func(CurvePoint) float64) plotter.XYs {
		pts := make(plotter.XYs, len(points))
		for i, pt := range points {
			pts[i].X = float64(pt.TrainSize)
			pts[i].Y = pick(pt)
		}
		return pts
	}

	trainAcc := toXY(func(p CurvePoint) float64 { return p.TrainAcc })
	testAcc := toXY(func(p CurvePoint) float64 { return p.TestAcc })
	trainF1 := toXY(func(p CurvePoint) float64 { return p.TrainF1 })
	testF1 := toXY(func(p CurvePoint) float64 { return p.TestF1 })

	if err := plotutil.AddLinePoints(p, "Train (Acc)", trainAcc, "Test (Acc)", testAcc, "Train (F1)", trainF1, "Test (F1)", testF1); err != nil {
		return fmt.Errorf("report: plotting curve: %w", err)
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
