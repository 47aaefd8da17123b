// Package ensemble implements the random forest: bootstrap aggregation
// of forest/tree.DecisionTree instances, trained in parallel with
// pre-derived per-tree seeds so tree content never depends on
// scheduling, plus majority-vote prediction and Laplace-smoothed
// probability.
package ensemble

import (
	"fmt"
	"math/rand"
	"sync"

	"forestlab/forest/dataset"
	"forestlab/forest/tree"
)

// RandomForest owns a sequence of trees plus the ensemble's
// hyperparameters. Invariant after Fit: len(Trees) == NEstimators.
type RandomForest struct {
	NEstimators     int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int
	Seed            int64

	Trees []*tree.DecisionTree
}

// New constructs a RandomForest without validating its arguments.
// T>=1, D>=1, m>=2, 1<=f<=F is enforced lazily at Fit time, once F is
// known from the dataset.
func New(nEstimators, maxDepth, minSamplesSplit, maxFeatures int, seed int64) *RandomForest {
	return &RandomForest{
		NEstimators:     nEstimators,
		MaxDepth:        maxDepth,
		MinSamplesSplit: minSamplesSplit,
		MaxFeatures:     maxFeatures,
		Seed:            seed,
	}
}

// Fit clears any previously trained trees and retrains the ensemble
// over ds. Trees are trained concurrently; tree i's content depends
// only on the master seed and i, never on goroutine scheduling.
func (f *RandomForest) Fit(ds *dataset.Dataset) error {
	if f.NEstimators < 1 {
		return fmt.Errorf("ensemble: NEstimators must be >= 1, got %d", f.NEstimators)
	}
	if f.MaxDepth < 1 {
		return fmt.Errorf("ensemble: MaxDepth must be >= 1, got %d", f.MaxDepth)
	}
	if f.MinSamplesSplit < 2 {
		return fmt.Errorf("ensemble: MinSamplesSplit must be >= 2, got %d", f.MinSamplesSplit)
	}
	fCount := ds.FeatureCount()
	if f.MaxFeatures < 1 || f.MaxFeatures > fCount {
		return fmt.Errorf("ensemble: MaxFeatures must be in [1,%d], got %d", fCount, f.MaxFeatures)
	}

	master := rand.New(rand.NewSource(f.Seed))
	childSeeds := make([]int64, f.NEstimators)
	for i := range childSeeds {
		childSeeds[i] = master.Int63()
	}

	f.Trees = make([]*tree.DecisionTree, f.NEstimators)
	f.fitParallel(ds, childSeeds)
	return nil
}

// fitParallel runs bootstrap + tree fit for each tree on a bounded
// worker pool, writing results directly into f.Trees[i] so the final
// ordering matches the i=0..T-1 enumeration regardless of which worker
// finished which job first.
func (f *RandomForest) fitParallel(ds *dataset.Dataset, childSeeds []int64) {
	nWorkers := len(childSeeds)
	if nWorkers > maxWorkers {
		nWorkers = maxWorkers
	}

	jobs := make(chan int, len(childSeeds))
	for i := range childSeeds {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(nWorkers)
	for w := 0; w < nWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				f.Trees[i] = f.fitOneTree(ds, childSeeds[i])
			}
		}()
	}
	wg.Wait()
}

// maxWorkers bounds concurrency; the actual worker count used is the
// smaller of this and the number of trees being fit.
const maxWorkers = 8

func (f *RandomForest) fitOneTree(ds *dataset.Dataset, seed int64) *tree.DecisionTree {
	rng := rand.New(rand.NewSource(seed))

	n := ds.SampleCount()
	bootstrapIdx := make([]int, n)
	for i := range bootstrapIdx {
		bootstrapIdx[i] = rng.Intn(n)
	}
	bootstrap := ds.Subset(bootstrapIdx)

	t := tree.New(f.MaxDepth, f.MinSamplesSplit, f.MaxFeatures, rng)
	t.Fit(bootstrap)
	return t
}

// Predict returns the ensemble's majority-vote class for a single
// feature vector. Ties (equal vote counts) resolve to class 1.
func (f *RandomForest) Predict(features []float64) int {
	votes := f.voteCounts(features)
	if votes[0] > votes[1] {
		return 0
	}
	return 1
}

func (f *RandomForest) voteCounts(features []float64) [2]int {
	var votes [2]int
	for _, t := range f.Trees {
		votes[t.Predict(features)]++
	}
	return votes
}

// PredictMatrix applies Predict row-wise over a feature matrix.
func (f *RandomForest) PredictMatrix(matrix [][]float64) []int {
	out := make([]int, len(matrix))
	for i, row := range matrix {
		out[i] = f.Predict(row)
	}
	return out
}

// PredictProbability returns the Laplace-smoothed probability of class
// 1 for a single feature vector: (positiveVotes+1)/(T+2).
func (f *RandomForest) PredictProbability(features []float64) float64 {
	votes := f.voteCounts(features)
	return (float64(votes[1]) + 1) / (float64(len(f.Trees)) + 2)
}

// Score returns the fraction of ds correctly predicted.
func (f *RandomForest) Score(ds *dataset.Dataset) float64 {
	n := ds.SampleCount()
	if n == 0 {
		return 0
	}
	correct := 0
	for i := 0; i < n; i++ {
		if f.Predict(ds.Row(i)) == ds.Label(i) {
			correct++
		}
	}
	return float64(correct) / float64(n)
}
