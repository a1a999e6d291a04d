package eval

import (
	"fmt"
	"math/rand"
)

// Split holds the result of a train/test partition. The slices alias rows of
// the input; they are not deep copies.
type Split struct {
	TrainFeatures [][]float32
	TrainLabels   []string
	TestFeatures  [][]float32
	TestLabels    []string
}

// TrainTestSplit shuffles the labeled set with the given seed and partitions
// it so that roughly testFraction of the samples land in the test portion.
// Both portions are guaranteed non-empty, which requires at least two
// samples. The same inputs and seed always produce the same split.
func TrainTestSplit(features [][]float32, labels []string, testFraction float64, seed int64) (*Split, error) {
	if len(features) != len(labels) {
		return nil, fmt.Errorf("eval: features and labels length mismatch: %d != %d", len(features), len(labels))
	}
	if len(features) < 2 {
		return nil, fmt.Errorf("eval: need at least 2 samples to split, got %d", len(features))
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, fmt.Errorf("eval: test fraction must be in (0, 1), got %v", testFraction)
	}

	perm := randPerm(len(features), seed)
	testN := int(float64(len(features)) * testFraction)
	if testN < 1 {
		testN = 1
	}
	if testN >= len(features) {
		testN = len(features) - 1
	}

	s := &Split{
		TrainFeatures: make([][]float32, 0, len(features)-testN),
		TrainLabels:   make([]string, 0, len(features)-testN),
		TestFeatures:  make([][]float32, 0, testN),
		TestLabels:    make([]string, 0, testN),
	}
	for rank, idx := range perm {
		if rank < testN {
			s.TestFeatures = append(s.TestFeatures, features[idx])
			s.TestLabels = append(s.TestLabels, labels[idx])
			continue
		}
		s.TrainFeatures = append(s.TrainFeatures, features[idx])
		s.TrainLabels = append(s.TrainLabels, labels[idx])
	}
	return s, nil
}

// randPerm returns a seeded permutation of [0, n).
func randPerm(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}
