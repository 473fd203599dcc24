package percolation

import "errors"

// ErrInvalidArgument covers a non-positive grid size, a non-positive trial
// count, and coordinates outside [1, n]. It signals a caller bug, not an
// operational failure.
var ErrInvalidArgument = errors.New("percolation: invalid argument")
