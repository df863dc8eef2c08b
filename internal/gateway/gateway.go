package gateway

import "errors"

// ErrNotFound is returned when the catalog has no record for an identifier.
var ErrNotFound = errors.New("data not found in the catalog")

// ErrRequestFailed is returned when the catalog answers with a
// non-2xx status code. The message is surfaced to the user as is.
var ErrRequestFailed = errors.New("API request failed")
