package ml

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"
	"github.com/sjwhitworth/golearn/neural"
)

func errLengthMismatch(data, classes int) error {
	return errors.Errorf("ml: data and classes not the same lengths %d %d", data, classes)
}

func errEmptyData() error { return errors.New("ml: no data") }

// GoLearnKNNClassifier delegates to golearn's k-nearest-neighbor
// implementation with Euclidean distance and a linear scan.
type GoLearnKNNClassifier struct {
	k          int
	classifier base.Classifier
	format     *base.DenseInstances
}

// NewGoLearnKNNClassifier creates a delegate with the given neighbor count.
func NewGoLearnKNNClassifier(k int) *GoLearnKNNClassifier {
	if k < 1 {
		k = 1
	}
	return &GoLearnKNNClassifier{k: k}
}

// Train fits the underlying golearn KNN classifier.
func (c *GoLearnKNNClassifier) Train(data [][]float64, classes []int) error {
	grid, err := buildInstances(data, classes)
	if err != nil {
		return err
	}
	c.format = base.NewStructuralCopy(grid)
	c.classifier = knn.NewKnnClassifier("euclidean", "linear", c.k)
	return c.classifier.Fit(grid)
}

// Classify predicts the class of a single feature vector.
func (c *GoLearnKNNClassifier) Classify(data []float64) (int, error) {
	if c.classifier == nil {
		return 0, errors.New("ml: Classify before Train")
	}
	grid, err := buildClassifyInstance(c.format, data)
	if err != nil {
		return 0, err
	}
	res, err := c.classifier.Predict(grid)
	if err != nil {
		return 0, err
	}
	return singleResult(res)
}

// GoLearnNeuralClassifier delegates to golearn's multi-layer neural network.
type GoLearnNeuralClassifier struct {
	hidden     []int
	classifier *neural.MultiLayerNet
	format     *base.DenseInstances
}

// NewGoLearnNeuralClassifier creates a delegate with the given hidden-layer
// sizes. With no sizes given it defaults to a single hidden layer of 10.
func NewGoLearnNeuralClassifier(hidden ...int) *GoLearnNeuralClassifier {
	if len(hidden) == 0 {
		hidden = []int{10}
	}
	return &GoLearnNeuralClassifier{hidden: hidden}
}

// Train fits the underlying network.
func (c *GoLearnNeuralClassifier) Train(data [][]float64, classes []int) error {
	grid, err := buildInstances(data, classes)
	if err != nil {
		return err
	}
	c.format = base.NewStructuralCopy(grid)
	c.classifier = neural.NewMultiLayerNet(c.hidden)
	c.classifier.Fit(grid)
	return nil
}

// Classify predicts the class of a single feature vector.
func (c *GoLearnNeuralClassifier) Classify(data []float64) (int, error) {
	if c.classifier == nil {
		return 0, errors.New("ml: Classify before Train")
	}
	grid, err := buildClassifyInstance(c.format, data)
	if err != nil {
		return 0, err
	}
	res := c.classifier.Predict(grid)
	return singleResult(res)
}

// buildInstances converts feature rows and classes into a golearn dense grid
// with the class stored as a trailing float attribute.
func buildInstances(data [][]float64, classes []int) (base.FixedDataGrid, error) {
	if len(data) == 0 {
		return nil, errEmptyData()
	}
	if len(data) != len(classes) {
		return nil, errLengthMismatch(len(data), len(classes))
	}

	grid := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(data[0])+1)
	for x := range data[0] {
		specs[x] = grid.AddAttribute(base.NewFloatAttribute(fmt.Sprintf("v%d", x)))
	}
	classAttr := base.NewFloatAttribute("class")
	specs[len(data[0])] = grid.AddAttribute(classAttr)
	if err := grid.AddClassAttribute(classAttr); err != nil {
		return nil, err
	}

	if err := grid.Extend(len(data)); err != nil {
		return nil, err
	}
	for x, row := range data {
		if len(row) != len(data[0]) {
			return nil, errors.Errorf("ml: row %d has %d features, want %d", x, len(row), len(data[0]))
		}
		for y, v := range row {
			grid.Set(specs[y], x, base.PackFloatToBytes(v))
		}
		grid.Set(specs[len(row)], x, base.PackFloatToBytes(float64(classes[x])))
	}
	return grid, nil
}

// buildClassifyInstance wraps a single feature vector in a one-row grid with
// the structure of the training data.
func buildClassifyInstance(format base.FixedDataGrid, data []float64) (*base.DenseInstances, error) {
	if format == nil {
		return nil, errors.New("ml: missing training format")
	}
	grid := base.NewStructuralCopy(format)
	if err := grid.Extend(1); err != nil {
		return nil, err
	}
	for x, attr := range grid.AllAttributes() {
		if x >= len(data) {
			break
		}
		spec, err := grid.GetAttribute(attr)
		if err != nil {
			return nil, errors.Wrap(err, "ml: resolving attribute")
		}
		grid.Set(spec, 0, base.PackFloatToBytes(data[x]))
	}
	return grid, nil
}

// singleResult extracts the predicted class from a one-row prediction grid.
func singleResult(res base.FixedDataGrid) (int, error) {
	attrs := res.AllAttributes()
	if len(attrs) != 1 {
		return 0, errors.Errorf("ml: prediction grid has %d attributes, want 1", len(attrs))
	}
	spec, err := res.GetAttribute(attrs[0])
	if err != nil {
		return 0, errors.Wrap(err, "ml: resolving prediction attribute")
	}
	raw := res.Get(spec, 0)
	if len(raw) != 8 {
		return 0, errors.Errorf("ml: prediction cell has %d bytes, want 8", len(raw))
	}
	return int(math.Round(base.UnpackBytesToFloat(raw))), nil
}
