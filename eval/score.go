package eval

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/viant/sqlite-knn/classifier"
)

// Accuracy returns the fraction of predictions that match the actual labels.
// It fails when the slices differ in length or are empty.
func Accuracy(predicted, actual []string) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("eval: predicted and actual length mismatch: %d != %d", len(predicted), len(actual))
	}
	if len(predicted) == 0 {
		return 0, fmt.Errorf("eval: accuracy on empty label sets")
	}
	correct := 0
	for i := range predicted {
		if predicted[i] == actual[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(predicted)), nil
}

// KFoldAccuracy cross-validates the KNN classifier: the labeled set is
// shuffled with the given seed, partitioned into folds contiguous in shuffle
// order, and each fold is scored while the remaining folds train the
// classifier. It returns the mean accuracy across folds along with the
// per-fold values.
func KFoldAccuracy(features [][]float32, labels []string, k, folds int, seed int64) (float64, []float64, error) {
	if len(features) != len(labels) {
		return 0, nil, fmt.Errorf("eval: features and labels length mismatch: %d != %d", len(features), len(labels))
	}
	if folds < 2 {
		return 0, nil, fmt.Errorf("eval: need at least 2 folds, got %d", folds)
	}
	if len(features) < folds {
		return 0, nil, fmt.Errorf("eval: %d samples cannot fill %d folds", len(features), folds)
	}

	perm := randPerm(len(features), seed)
	accuracies := make([]float64, 0, folds)
	for f := 0; f < folds; f++ {
		lo := f * len(perm) / folds
		hi := (f + 1) * len(perm) / folds

		var trainFeatures, testFeatures [][]float32
		var trainLabels, testLabels []string
		for rank, idx := range perm {
			if rank >= lo && rank < hi {
				testFeatures = append(testFeatures, features[idx])
				testLabels = append(testLabels, labels[idx])
				continue
			}
			trainFeatures = append(trainFeatures, features[idx])
			trainLabels = append(trainLabels, labels[idx])
		}

		predicted, err := classifier.Predict(trainFeatures, trainLabels, testFeatures, k)
		if err != nil {
			return 0, nil, err
		}
		acc, err := Accuracy(predicted, testLabels)
		if err != nil {
			return 0, nil, err
		}
		accuracies = append(accuracies, acc)
	}

	mean, err := stats.Mean(accuracies)
	if err != nil {
		return 0, nil, err
	}
	return mean, accuracies, nil
}
