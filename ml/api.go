package ml

// Classifier is the delegation seam for external, pre-built classifiers.
// Classes are small integers; features are dense float vectors.
type Classifier interface {
	// Train fits the underlying model on feature rows and their classes.
	Train(data [][]float64, classes []int) error

	// Classify predicts the class of a single feature vector.
	Classify(data []float64) (int, error)
}

// Score returns the fraction of rows the trained classifier labels
// correctly. It mirrors the usual held-out evaluation flow: train elsewhere,
// score here against labels the model has not seen.
func Score(c Classifier, data [][]float64, classes []int) (float64, error) {
	if len(data) != len(classes) {
		return 0, errLengthMismatch(len(data), len(classes))
	}
	if len(data) == 0 {
		return 0, errEmptyData()
	}
	correct := 0
	for i, row := range data {
		got, err := c.Classify(row)
		if err != nil {
			return 0, err
		}
		if got == classes[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(data)), nil
}
