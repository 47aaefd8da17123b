// Package splitdata provides deterministic, seeded dataset partitioning:
// a shuffled train/test split and a K-fold partition, both built on the
// same shuffle-then-slice idiom.
package splitdata

import (
	"fmt"
	"math/rand"

	"forestlab/forest/dataset"
)

// Fold is one (train, validation) pair produced by KFoldSplit.
type Fold struct {
	Train      *dataset.Dataset
	Validation *dataset.Dataset
}

// TrainTestSplit shuffles [0, N) with a seeded PRNG and takes the first
// N-floor(N*p) indices as train, the remainder as test. p must be in
// (0,1).
func TrainTestSplit(ds *dataset.Dataset, testFraction float64, seed int64) (train, test *dataset.Dataset, err error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("splitdata: testFraction must be in (0,1), got %f", testFraction)
	}
	n := ds.SampleCount()
	rng := rand.New(rand.NewSource(seed))
	shuffled := rng.Perm(n)

	nTest := int(float64(n) * testFraction)
	nTrain := n - nTest

	train = ds.Subset(shuffled[:nTrain])
	test = ds.Subset(shuffled[nTrain:])
	return train, test, nil
}

// KFoldSplit partitions ds into K folds by shuffling indices with a
// seeded PRNG, then slicing into K contiguous blocks of size
// ceil(N/K) or floor(N/K); the first N mod K folds get the larger size.
// It returns K (train, validation) pairs, one per held-out fold.
func KFoldSplit(ds *dataset.Dataset, k int, seed int64) ([]Fold, error) {
	n := ds.SampleCount()
	if k < 2 || k > n {
		return nil, fmt.Errorf("splitdata: k must be in [2,%d], got %d", n, k)
	}

	rng := rand.New(rand.NewSource(seed))
	shuffled := rng.Perm(n)

	blocks := make([][]int, k)
	base := n / k
	extra := n % k
	pos := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		blocks[i] = shuffled[pos : pos+size]
		pos += size
	}

	folds := make([]Fold, k)
	for i := 0; i < k; i++ {
		var validationIdx []int
		var trainIdx []int
		for j := 0; j < k; j++ {
			if j == i {
				validationIdx = blocks[j]
			} else {
				trainIdx = append(trainIdx, blocks[j]...)
			}
		}
		folds[i] = Fold{
			Train:      ds.Subset(trainIdx),
			Validation: ds.Subset(validationIdx),
		}
	}
	return folds, nil
}
