package db

import "errors"

// ErrNotFound is returned by repositories when a requested document does not
// exist. Callers decide whether absence is an error or an empty/default value.
var ErrNotFound = errors.New("document not found")
