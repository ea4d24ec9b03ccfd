package catapi

import "errors"

// ErrBreedNotFound is returned when a search query matches no breed record.
// The condition is terminal for that query; retrying will not help. The
// message text is part of the client's contract with existing callers.
var ErrBreedNotFound = errors.New("No such breed found!")
