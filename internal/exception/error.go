package exception

import "errors"

// ErrInvalidPortRange custom error for a scan range outside [1, 65535]
// or with min greater than max
var ErrInvalidPortRange = errors.New("invalid port range")

// ErrResolutionFailure custom error for a target that cannot be resolved
// to an address
var ErrResolutionFailure = errors.New("unable to resolve target")
