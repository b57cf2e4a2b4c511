package planner

import "errors"

// ErrInvalidRequest indicates a malformed Request: an out-of-range
// coordinate, an unknown direction code, or a robot heading of NONE. The
// caller should treat this as a rejected request, not a planner bug.
var ErrInvalidRequest = errors.New("planner: invalid request")
