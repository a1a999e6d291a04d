// Package knnutil ties the SQLite sample store and the classifier together:
// it classifies query points directly against a stored dataset and persists
// fitted classifier models as blobs in the knn_model_storage table.
package knnutil
