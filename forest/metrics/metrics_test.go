package metrics

import (
	"math"
	"testing"
)

func TestConfusionCounts(t *testing.T) {
	predicted := []int{1, 0, 1, 0, 1}
	actual := []int{1, 0, 0, 0, 1}
	cm, err := Confusion(predicted, actual)
	if err != nil {
		t.Fatal(err)
	}
	if cm.TP != 2 || cm.FP != 1 || cm.TN != 2 || cm.FN != 0 {
		t.Errorf("unexpected confusion matrix: %+v", cm)
	}
}

func TestConfusionRejectsMismatchedLengths(t *testing.T) {
	_, err := Confusion([]int{1}, []int{1, 0})
	if err == nil {
		t.Error("expected an error for mismatched lengths")
	}
}

func TestAccuracyPrecisionRecallF1(t *testing.T) {
	cm := ConfusionMatrix{TP: 3, FP: 1, TN: 4, FN: 2}
	if got, want := cm.Accuracy(), 7.0/10.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("accuracy: got %f, want %f", got, want)
	}
	if got, want := cm.Precision(), 3.0/4.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("precision: got %f, want %f", got, want)
	}
	if got, want := cm.Recall(), 3.0/5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("recall: got %f, want %f", got, want)
	}
	p, r := cm.Precision(), cm.Recall()
	want := 2 * p * r / (p + r)
	if got := cm.F1(); math.Abs(got-want) > 1e-9 {
		t.Errorf("f1: got %f, want %f", got, want)
	}
}

func TestZeroDenominatorsReturnZero(t *testing.T) {
	cm := ConfusionMatrix{}
	if cm.Accuracy() != 0 {
		t.Error("expected accuracy of an empty confusion matrix to be 0")
	}
	if cm.Precision() != 0 {
		t.Error("expected precision with no predicted positives to be 0")
	}
	if cm.Recall() != 0 {
		t.Error("expected recall with no actual positives to be 0")
	}
	if cm.F1() != 0 {
		t.Error("expected f1 with both precision and recall 0 to be 0")
	}
}

func TestPackageLevelHelpersMatchMethods(t *testing.T) {
	predicted := []int{1, 1, 0, 0}
	actual := []int{1, 0, 0, 1}
	cm, err := Confusion(predicted, actual)
	if err != nil {
		t.Fatal(err)
	}
	acc, err := Accuracy(predicted, actual)
	if err != nil || acc != cm.Accuracy() {
		t.Errorf("Accuracy helper disagrees with method: %f vs %f (err=%v)", acc, cm.Accuracy(), err)
	}
	prec, err := Precision(predicted, actual)
	if err != nil || prec != cm.Precision() {
		t.Errorf("Precision helper disagrees with method")
	}
	rec, err := Recall(predicted, actual)
	if err != nil || rec != cm.Recall() {
		t.Errorf("Recall helper disagrees with method")
	}
	f1, err := F1(predicted, actual)
	if err != nil || f1 != cm.F1() {
		t.Errorf("F1 helper disagrees with method")
	}
}
