package store

import "errors"

// ErrUnavailable marks a failed read or write. Services wrap repository
// errors with it so callers can tell storage trouble from bad input.
var ErrUnavailable = errors.New("store unavailable")
