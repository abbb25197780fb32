package repository

import "errors"

// ErrNotFound is returned when an identifier does not resolve to any
// stored document. Handlers map it to a 404 distinct from validation
// failures.
var ErrNotFound = errors.New("document not found")
