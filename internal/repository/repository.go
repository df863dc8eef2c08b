package repository

import "errors"

// ErrNoBook is returned when the session has no currently loaded book.
var ErrNoBook = errors.New("no book loaded in the session")
