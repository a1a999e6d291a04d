// Package classifier implements k-nearest-neighbor classification over
// float32 feature vectors. Prediction is a pure computation: a fitted
// classifier holds an immutable copy of its training set, ranks training
// points by Euclidean distance to each query point, and takes a majority
// vote among the k closest. Both distance ties and vote ties are broken
// deterministically, so identical inputs always produce identical outputs.
package classifier
