package knnutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/sqlite-knn/classifier"
	"github.com/viant/sqlite-knn/vector"
)

// Fit loads the named dataset from the sample store and fits a KNN
// classifier with the given neighbor count on it.
func Fit(ctx context.Context, db *sql.DB, dataset string, k int, opts ...classifier.Option) (*classifier.KNN, error) {
	if db == nil {
		return nil, fmt.Errorf("knnutil: db is nil")
	}
	store, err := vector.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}
	samples, err := store.LoadDataset(ctx, dataset)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("knnutil: dataset %q is empty", dataset)
	}
	features := make([][]float32, len(samples))
	labels := make([]string, len(samples))
	for i, sm := range samples {
		features[i] = sm.Features
		labels[i] = sm.Label
	}
	m := classifier.New(k, opts...)
	if err := m.Fit(features, labels); err != nil {
		return nil, err
	}
	return m, nil
}

// ClassifyDataset predicts one label per query point using the named
// dataset as the training set.
func ClassifyDataset(ctx context.Context, db *sql.DB, dataset string, queries [][]float32, k int) ([]string, error) {
	m, err := Fit(ctx, db, dataset, k)
	if err != nil {
		return nil, err
	}
	return m.Predict(queries)
}

const modelStorageSchema = `
CREATE TABLE IF NOT EXISTS knn_model_storage (
    name  TEXT PRIMARY KEY,
    model BLOB NOT NULL
);
`

func ensureModelStorage(db *sql.DB) error {
	_, err := db.Exec(modelStorageSchema)
	return err
}

// SaveModel serializes a fitted classifier and stores it under the given
// name, replacing any previous model with that name.
func SaveModel(ctx context.Context, db *sql.DB, name string, m *classifier.KNN) error {
	if db == nil {
		return fmt.Errorf("knnutil: db is nil")
	}
	if name == "" {
		return fmt.Errorf("knnutil: model name is required")
	}
	if m == nil {
		return fmt.Errorf("knnutil: model is nil")
	}
	if err := ensureModelStorage(db); err != nil {
		return err
	}
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO knn_model_storage(name, model) VALUES(?, ?)`, name, data)
	return err
}

// LoadModel restores a classifier previously stored with SaveModel.
func LoadModel(ctx context.Context, db *sql.DB, name string) (*classifier.KNN, error) {
	if db == nil {
		return nil, fmt.Errorf("knnutil: db is nil")
	}
	if name == "" {
		return nil, fmt.Errorf("knnutil: model name is required")
	}
	if err := ensureModelStorage(db); err != nil {
		return nil, err
	}
	var blob []byte
	err := db.QueryRowContext(ctx, `SELECT model FROM knn_model_storage WHERE name = ?`, name).Scan(&blob)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("knnutil: model %q not found", name)
		}
		return nil, err
	}
	m := &classifier.KNN{}
	if err := m.UnmarshalBinary(blob); err != nil {
		return nil, err
	}
	return m, nil
}
