package repository

import "errors"

// ErrNotFound is returned for slugs that were never stored or have expired.
var ErrNotFound = errors.New("link not found")
