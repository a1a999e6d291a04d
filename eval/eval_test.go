package eval

import (
	"reflect"
	"testing"
)

func blobs() ([][]float32, []string) {
	// Two well-separated clusters of six samples each.
	var features [][]float32
	var labels []string
	for i := 0; i < 6; i++ {
		features = append(features, []float32{float32(i) * 0.1, float32(i) * 0.1})
		labels = append(labels, "low")
	}
	for i := 0; i < 6; i++ {
		features = append(features, []float32{10 + float32(i)*0.1, 10 + float32(i)*0.1})
		labels = append(labels, "high")
	}
	return features, labels
}

func TestAccuracy(t *testing.T) {
	acc, err := Accuracy([]string{"a", "b", "a", "b"}, []string{"a", "b", "b", "b"})
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	if acc != 0.75 {
		t.Fatalf("Accuracy = %v, want 0.75", acc)
	}

	if _, err := Accuracy([]string{"a"}, []string{"a", "b"}); err == nil {
		t.Fatalf("Accuracy on mismatched lengths succeeded, want error")
	}
	if _, err := Accuracy(nil, nil); err == nil {
		t.Fatalf("Accuracy on empty sets succeeded, want error")
	}
}

func TestTrainTestSplit_DeterministicAndDisjoint(t *testing.T) {
	features, labels := blobs()

	first, err := TrainTestSplit(features, labels, 0.25, 42)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}
	again, err := TrainTestSplit(features, labels, 0.25, 42)
	if err != nil {
		t.Fatalf("TrainTestSplit (repeat) failed: %v", err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("same seed produced different splits")
	}

	if len(first.TestFeatures) != 3 {
		t.Fatalf("test portion has %d samples, want 3", len(first.TestFeatures))
	}
	if len(first.TrainFeatures)+len(first.TestFeatures) != len(features) {
		t.Fatalf("split dropped samples: %d train + %d test != %d",
			len(first.TrainFeatures), len(first.TestFeatures), len(features))
	}
	if len(first.TrainFeatures) != len(first.TrainLabels) || len(first.TestFeatures) != len(first.TestLabels) {
		t.Fatalf("features and labels misaligned after split")
	}

	other, err := TrainTestSplit(features, labels, 0.25, 7)
	if err != nil {
		t.Fatalf("TrainTestSplit (seed 7) failed: %v", err)
	}
	if reflect.DeepEqual(first.TestFeatures, other.TestFeatures) {
		t.Logf("seeds 42 and 7 produced the same test portion; unusual but not an error")
	}
}

func TestTrainTestSplit_InvalidArguments(t *testing.T) {
	features, labels := blobs()
	if _, err := TrainTestSplit(features, labels[:3], 0.25, 1); err == nil {
		t.Fatalf("mismatched lengths succeeded, want error")
	}
	if _, err := TrainTestSplit(features[:1], labels[:1], 0.25, 1); err == nil {
		t.Fatalf("single sample succeeded, want error")
	}
	if _, err := TrainTestSplit(features, labels, 0, 1); err == nil {
		t.Fatalf("zero test fraction succeeded, want error")
	}
	if _, err := TrainTestSplit(features, labels, 1, 1); err == nil {
		t.Fatalf("full test fraction succeeded, want error")
	}
}

func TestKFoldAccuracy_SeparableClusters(t *testing.T) {
	features, labels := blobs()
	mean, accuracies, err := KFoldAccuracy(features, labels, 3, 4, 42)
	if err != nil {
		t.Fatalf("KFoldAccuracy failed: %v", err)
	}
	if len(accuracies) != 4 {
		t.Fatalf("got %d fold accuracies, want 4", len(accuracies))
	}
	// The clusters are far apart, so every fold should classify perfectly.
	if mean != 1 {
		t.Fatalf("mean accuracy = %v (folds %v), want 1", mean, accuracies)
	}
}

func TestKFoldAccuracy_InvalidArguments(t *testing.T) {
	features, labels := blobs()
	if _, _, err := KFoldAccuracy(features, labels, 3, 1, 42); err == nil {
		t.Fatalf("folds=1 succeeded, want error")
	}
	if _, _, err := KFoldAccuracy(features[:2], labels[:2], 1, 4, 42); err == nil {
		t.Fatalf("more folds than samples succeeded, want error")
	}
	if _, _, err := KFoldAccuracy(features, labels[:3], 3, 4, 42); err == nil {
		t.Fatalf("mismatched lengths succeeded, want error")
	}
}
