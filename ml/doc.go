// Package ml delegates classification to pre-built implementations from the
// golearn library behind a small Train/Classify seam. Nothing algorithmic
// lives here: the package converts between plain float slices and golearn's
// dense-instance grids and hands the actual fitting and prediction to the
// external library.
package ml
