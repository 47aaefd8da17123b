// Package metrics computes accuracy, precision, recall, F1, and the
// confusion matrix for equal-length binary prediction/ground-truth
// vectors, with class 1 as positive.
package metrics

import "fmt"

// ConfusionMatrix counts true/false positives and negatives with class
// 1 as positive.
type ConfusionMatrix struct {
	TP, FP, TN, FN int
}

// Confusion builds a ConfusionMatrix from predictions and ground truth.
// Mismatched lengths are a caller error and fail fast.
func Confusion(predicted, actual []int) (ConfusionMatrix, error) {
	if len(predicted) != len(actual) {
		return ConfusionMatrix{}, fmt.Errorf("metrics: predicted has %d entries, actual has %d", len(predicted), len(actual))
	}
	var cm ConfusionMatrix
	for i := range predicted {
		switch {
		case predicted[i] == 1 && actual[i] == 1:
			cm.TP++
		case predicted[i] == 1 && actual[i] == 0:
			cm.FP++
		case predicted[i] == 0 && actual[i] == 0:
			cm.TN++
		default:
			cm.FN++
		}
	}
	return cm, nil
}

// Accuracy is (TP+TN)/N.
func (cm ConfusionMatrix) Accuracy() float64 {
	n := cm.TP + cm.FP + cm.TN + cm.FN
	if n == 0 {
		return 0
	}
	return float64(cm.TP+cm.TN) / float64(n)
}

// Precision is TP/(TP+FP), or 0 when the denominator is 0.
func (cm ConfusionMatrix) Precision() float64 {
	if cm.TP+cm.FP == 0 {
		return 0
	}
	return float64(cm.TP) / float64(cm.TP+cm.FP)
}

// Recall is TP/(TP+FN), or 0 when the denominator is 0.
func (cm ConfusionMatrix) Recall() float64 {
	if cm.TP+cm.FN == 0 {
		return 0
	}
	return float64(cm.TP) / float64(cm.TP+cm.FN)
}

// F1 is the harmonic mean of Precision and Recall, or 0 when both are 0.
func (cm ConfusionMatrix) F1() float64 {
	p, r := cm.Precision(), cm.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Accuracy computes (TP+TN)/N directly from predicted/actual vectors.
func Accuracy(predicted, actual []int) (float64, error) {
	cm, err := Confusion(predicted, actual)
	if err != nil {
		return 0, err
	}
	return cm.Accuracy(), nil
}

// Precision computes precision directly from predicted/actual vectors.
func Precision(predicted, actual []int) (float64, error) {
	cm, err := Confusion(predicted, actual)
	if err != nil {
		return 0, err
	}
	return cm.Precision(), nil
}

// Recall computes recall directly from predicted/actual vectors.
func Recall(predicted, actual []int) (float64, error) {
	cm, err := Confusion(predicted, actual)
	if err != nil {
		return 0, err
	}
	return cm.Recall(), nil
}

// F1 computes the F1 score directly from predicted/actual vectors.
func F1(predicted, actual []int) (float64, error) {
	cm, err := Confusion(predicted, actual)
	if err != nil {
		return 0, err
	}
	return cm.F1(), nil
}
