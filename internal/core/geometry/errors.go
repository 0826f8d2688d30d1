package geometry

import "errors"

// Degenerate geometry errors
var (
	ErrZeroLength    = errors.New("vector has zero length")
	ErrDegenerateRay = errors.New("ray direction point equals its origin")
)

// Tolerance is the absolute slack used by the on-segment, on-ray and
// parallel-direction tests.
const Tolerance = 0.001
