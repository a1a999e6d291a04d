// Package eval provides the evaluation helpers used around the classifier:
// deterministic train/test splitting, fraction-correct accuracy scoring, and
// k-fold cross-validation. Shuffling always derives from an explicit seed so
// evaluation runs are reproducible.
package eval
