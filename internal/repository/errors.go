package repository

import "errors"

// ErrNotFound indicates no document matched the given id or filter.
var ErrNotFound = errors.New("repository: not found")
