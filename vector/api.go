package vector

import (
	"context"
)

// Sample represents one labeled data point stored in the sample store.
type Sample struct {
	// ID is the logical identifier of the sample within its dataset.
	ID string

	// Label is the categorical class assigned to the sample.
	Label string

	// Features is the fixed-length feature vector describing the sample.
	Features []float32
}

// Store defines the application-level sample store API. Implementations in
// this module use SQLite for durable storage; classification itself happens
// in the classifier package on vectors loaded from here.
type Store interface {
	// AddSamples inserts labeled samples into the named dataset and returns
	// their assigned IDs. If a Sample has ID set, implementations should
	// attempt to honor it (subject to uniqueness constraints).
	AddSamples(ctx context.Context, dataset string, samples []Sample) ([]string, error)

	// LoadDataset returns all samples of the named dataset in insertion
	// order, decoded feature vectors included.
	LoadDataset(ctx context.Context, dataset string) ([]Sample, error)

	// Remove deletes the sample with the given ID from the named dataset.
	Remove(ctx context.Context, dataset, id string) error
}
