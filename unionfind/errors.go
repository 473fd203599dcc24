package unionfind

import "errors"

// ErrInvalidArgument indicates a non-positive universe size or an element id
// outside [0, Len()).
var ErrInvalidArgument = errors.New("unionfind: invalid argument")
