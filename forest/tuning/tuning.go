// Package tuning implements K-fold cross-validation grid search over
// RandomForest hyperparameters, driving the same fit/score pipeline per
// parameter tuple and per fold, then selecting the tuple with the
// highest mean validation metric.
package tuning

import (
	"fmt"
	"math"

	"forestlab/forest/dataset"
	"forestlab/forest/ensemble"
	"forestlab/forest/metrics"
	"forestlab/forest/splitdata"
)

// UnlimitedDepth is the sentinel max-depth candidate meaning
// "unlimited"; it maps to the maximum representable depth when a
// RandomForest is constructed from a ParameterGrid tuple.
const UnlimitedDepth = -1

const maxRepresentableDepth = math.MaxInt32

// Metric identifies which score ParameterGrid search optimises.
type Metric int

const (
	MetricAccuracy Metric = iota
	MetricF1
	MetricPrecision
	MetricRecall
)

func (m Metric) String() string {
	switch m {
	case MetricAccuracy:
		return "accuracy"
	case MetricF1:
		return "f1"
	case MetricPrecision:
		return "precision"
	case MetricRecall:
		return "recall"
	default:
		return "unknown"
	}
}

func (m Metric) score(predicted, actual []int) (float64, error) {
	switch m {
	case MetricAccuracy:
		return metrics.Accuracy(predicted, actual)
	case MetricF1:
		return metrics.F1(predicted, actual)
	case MetricPrecision:
		return metrics.Precision(predicted, actual)
	case MetricRecall:
		return metrics.Recall(predicted, actual)
	default:
		return 0, fmt.Errorf("tuning: unknown metric %d", m)
	}
}

// ParameterGrid is the cartesian product of four hyperparameter
// candidate sets.
type ParameterGrid struct {
	TreeCounts       []int
	MaxDepths        []int // may include UnlimitedDepth
	MinSamplesSplits []int
	MaxFeatures      []int
}

// Tuple is one point in the grid.
type Tuple struct {
	NEstimators     int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int
}

func (g ParameterGrid) tuples() []Tuple {
	var out []Tuple
	for _, t := range g.TreeCounts {
		for _, d := range g.MaxDepths {
			depth := d
			if depth == UnlimitedDepth {
				depth = maxRepresentableDepth
			}
			for _, m := range g.MinSamplesSplits {
				for _, f := range g.MaxFeatures {
					out = append(out, Tuple{NEstimators: t, MaxDepth: depth, MinSamplesSplit: m, MaxFeatures: f})
				}
			}
		}
	}
	return out
}

func (g ParameterGrid) empty() bool {
	return len(g.TreeCounts) == 0 || len(g.MaxDepths) == 0 || len(g.MinSamplesSplits) == 0 || len(g.MaxFeatures) == 0
}

// TuningResult is the winning tuple plus the mean and population
// standard deviation of the optimised metric across folds.
type TuningResult struct {
	Tuple     Tuple
	MeanScore float64
	StdScore  float64
	Metric    Metric
}

// Tuner runs K-fold grid search over a ParameterGrid.
type Tuner struct {
	K      int
	Seed   int64
	Metric Metric
}

// Tune partitions ds into K folds once, then for every tuple in grid
// trains a RandomForest on the union of the other K-1 folds and scores
// it on the held-out fold, for every fold. The tuple with the highest
// mean score wins; ties break by first occurrence in grid iteration
// order.
func (tu Tuner) Tune(ds *dataset.Dataset, grid ParameterGrid) (TuningResult, error) {
	if grid.empty() {
		return TuningResult{}, fmt.Errorf("tuning: parameter grid is empty")
	}

	folds, err := splitdata.KFoldSplit(ds, tu.K, tu.Seed)
	if err != nil {
		return TuningResult{}, err
	}

	var best TuningResult
	bestSet := false

	for _, tuple := range grid.tuples() {
		scores := make([]float64, len(folds))
		for i, fold := range folds {
			rf := ensemble.New(tuple.NEstimators, tuple.MaxDepth, tuple.MinSamplesSplit, tuple.MaxFeatures, tu.Seed)
			if err := rf.Fit(fold.Train); err != nil {
				return TuningResult{}, err
			}

			n := fold.Validation.SampleCount()
			predicted := make([]int, n)
			actual := make([]int, n)
			for j := 0; j < n; j++ {
				predicted[j] = rf.Predict(fold.Validation.Row(j))
				actual[j] = fold.Validation.Label(j)
			}
			score, err := tu.Metric.score(predicted, actual)
			if err != nil {
				return TuningResult{}, err
			}
			scores[i] = score
		}

		mean, std := meanStd(scores)
		if !bestSet || mean > best.MeanScore {
			best = TuningResult{Tuple: tuple, MeanScore: mean, StdScore: std, Metric: tu.Metric}
			bestSet = true
		}
	}

	return best, nil
}

// meanStd returns the mean and population standard deviation of xs.
func meanStd(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	mean = sum / float64(len(xs))

	variance := 0.0
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return mean, math.Sqrt(variance)
}
