// Package vector defines the labeled feature-vector model and SQLite-backed
// utilities used by this project. It includes:
//   - Sample model and Store interface
//   - SQLiteStore: durable storage for labeled samples grouped into datasets
//   - Schema helpers to create the samples table
//   - Feature-vector encoding (BLOB) and distance functions
package vector
