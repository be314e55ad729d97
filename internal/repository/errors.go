package repository

import "errors"

// ErrNotFound is returned when a single-row lookup finds nothing. Services
// translate it into a domain error (or a default value) so callers never see
// sql.ErrNoRows.
var ErrNotFound = errors.New("repository: not found")
