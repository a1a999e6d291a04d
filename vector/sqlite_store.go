package vector

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore is a Store implementation backed by a SQLite database. Samples
// are grouped into named datasets so one database can hold several training
// sets side by side.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the samples
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("vector: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// AddSamples inserts labeled samples into the samples table. Sample.ID must
// be non-empty; ID generation can be added later as needed.
func (s *SQLiteStore) AddSamples(ctx context.Context, dataset string, samples []Sample) ([]string, error) {
	if len(samples) == 0 {
		return nil, nil
	}
	if dataset == "" {
		return nil, fmt.Errorf("vector: dataset is required in AddSamples")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO samples(dataset_id, id, label, features) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(samples))
	for _, sm := range samples {
		if sm.ID == "" {
			return nil, fmt.Errorf("vector: Sample.ID must be set in AddSamples for now")
		}
		if sm.Label == "" {
			return nil, fmt.Errorf("vector: Sample.Label must be set in AddSamples")
		}
		blob, err := EncodeFeatures(sm.Features)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx, dataset, sm.ID, sm.Label, blob); err != nil {
			return nil, err
		}
		ids = append(ids, sm.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// LoadDataset returns all samples of the named dataset in insertion order.
func (s *SQLiteStore) LoadDataset(ctx context.Context, dataset string) ([]Sample, error) {
	if dataset == "" {
		return nil, fmt.Errorf("vector: dataset is required in LoadDataset")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, label, features FROM samples WHERE dataset_id = ? ORDER BY rowid`, dataset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var sm Sample
		var blob []byte
		if err := rows.Scan(&sm.ID, &sm.Label, &blob); err != nil {
			return nil, err
		}
		vec, err := DecodeFeatures(blob)
		if err != nil {
			return nil, err
		}
		sm.Features = vec
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes a sample by ID from the named dataset.
func (s *SQLiteStore) Remove(ctx context.Context, dataset, id string) error {
	if dataset == "" {
		return fmt.Errorf("vector: Remove called with empty dataset")
	}
	if id == "" {
		return fmt.Errorf("vector: Remove called with empty id")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM samples WHERE dataset_id = ? AND id = ?`, dataset, id)
	return err
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
