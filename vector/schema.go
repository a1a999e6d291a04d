package vector

import (
	"database/sql"
)

const samplesSchema = `
CREATE TABLE IF NOT EXISTS samples (
    dataset_id TEXT NOT NULL,
    id TEXT NOT NULL,
    label TEXT NOT NULL,
    features BLOB,
    PRIMARY KEY(dataset_id, id)
);
`

// EnsureSchema creates the samples table in the provided database if it does
// not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(samplesSchema)
	return err
}
