package classifier

import "errors"

// ErrInvalidArgument reports invalid classifier inputs: an empty training
// set, a feature/label length mismatch, inconsistent dimensionality, or a
// non-positive k. Callers can test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
