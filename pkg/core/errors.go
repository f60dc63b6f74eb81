package core

import "errors"

// ErrInvalidArgument marks construction-time validation failures:
// non-positive radii, zero directions, out-of-range reflectance and
// the like. These are fatal and raised at the point of construction.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDomain marks numerical-domain failures such as normalizing or
// dividing by a near-zero quantity. They should not occur in a
// correctly constructed scene and always propagate as fatal.
var ErrDomain = errors.New("numerical domain error")
