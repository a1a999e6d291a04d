package classifier

import (
	"fmt"
	"sort"

	"github.com/viant/vec/search"
)

// KNN is a k-nearest-neighbor classifier. Fit stores a copy of the training
// set; Predict ranks training points by Euclidean distance to each query
// point and returns the majority label among the k closest.
//
// When k exceeds the training-set size, it is clamped to the training-set
// size by default; WithStrictK switches this to an ErrInvalidArgument
// failure instead. A fitted classifier is immutable and safe for concurrent
// Predict calls.
type KNN struct {
	k        int
	strictK  bool
	dim      int
	features [][]float32
	labels   []string
}

// Option configures a KNN classifier.
type Option func(*KNN)

// WithStrictK makes Predict fail with ErrInvalidArgument when k exceeds the
// training-set size instead of clamping k.
func WithStrictK() Option {
	return func(m *KNN) { m.strictK = true }
}

// New creates a KNN classifier with the given neighbor count. k is validated
// on Predict so that a misconfigured classifier surfaces a descriptive error
// rather than a panic.
func New(k int, opts ...Option) *KNN {
	m := &KNN{k: k}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// K returns the configured neighbor count.
func (m *KNN) K() int { return m.k }

// Len returns the number of fitted training samples.
func (m *KNN) Len() int { return len(m.features) }

// Dim returns the feature dimensionality of the fitted training set.
func (m *KNN) Dim() int { return m.dim }

// Fit stores the training set. KNN is a lazy learner: there is nothing to
// optimize, so fitting only validates and copies the inputs.
func (m *KNN) Fit(features [][]float32, labels []string) error {
	if len(features) == 0 {
		return fmt.Errorf("classifier: empty training set: %w", ErrInvalidArgument)
	}
	if len(features) != len(labels) {
		return fmt.Errorf("classifier: features and labels length mismatch: %d != %d: %w", len(features), len(labels), ErrInvalidArgument)
	}
	dim := len(features[0])
	for i := range features {
		if len(features[i]) != dim {
			return fmt.Errorf("classifier: inconsistent training dims %d vs %d at index %d: %w", len(features[i]), dim, i, ErrInvalidArgument)
		}
	}
	m.features = append([][]float32(nil), features...)
	m.labels = append([]string(nil), labels...)
	m.dim = dim
	return nil
}

// Predict returns one label per query point, positionally aligned with
// queries. All parameters are validated before any distance is computed, so
// the caller receives either a complete prediction slice or a single error.
func (m *KNN) Predict(queries [][]float32) ([]string, error) {
	if len(m.features) == 0 {
		return nil, fmt.Errorf("classifier: Predict on unfitted classifier: %w", ErrInvalidArgument)
	}
	if m.k <= 0 {
		return nil, fmt.Errorf("classifier: k must be positive, got %d: %w", m.k, ErrInvalidArgument)
	}
	k := m.k
	if k > len(m.features) {
		if m.strictK {
			return nil, fmt.Errorf("classifier: k %d exceeds training-set size %d: %w", k, len(m.features), ErrInvalidArgument)
		}
		k = len(m.features)
	}
	for i := range queries {
		if len(queries[i]) != m.dim {
			return nil, fmt.Errorf("classifier: query dim %d != training dim %d at index %d: %w", len(queries[i]), m.dim, i, ErrInvalidArgument)
		}
	}

	out := make([]string, len(queries))
	for i := range queries {
		out[i] = m.predictOne(queries[i], k)
	}
	return out, nil
}

// predictOne classifies a single query point with an already-clamped k.
func (m *KNN) predictOne(query []float32, k int) string {
	type candidate struct {
		idx  int
		dist float32
	}
	cands := make([]candidate, len(m.features))
	q := search.Float32s(query)
	for j := range m.features {
		cands[j] = candidate{idx: j, dist: q.EuclideanDistance(m.features[j])}
	}
	// Stable sort keeps equidistant training points in original index order,
	// which fixes the distance tie-break.
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].dist < cands[b].dist })

	counts := make(map[string]int, k)
	best := 0
	for n := 0; n < k; n++ {
		label := m.labels[cands[n].idx]
		counts[label]++
		if counts[label] > best {
			best = counts[label]
		}
	}
	// A vote tie goes to the label whose closest member ranks first, so the
	// winner never depends on map iteration order.
	for n := 0; n < k; n++ {
		label := m.labels[cands[n].idx]
		if counts[label] == best {
			return label
		}
	}
	return "" // unreachable for k >= 1
}

// Predict is the one-shot form: it fits a throwaway classifier on the given
// training set and predicts labels for the query points. k > len(features)
// is clamped to len(features).
func Predict(features [][]float32, labels []string, queries [][]float32, k int) ([]string, error) {
	m := New(k)
	if err := m.Fit(features, labels); err != nil {
		return nil, err
	}
	return m.Predict(queries)
}
