package gausslegendre

import "errors"

// ErrNoConvergence is returned when Newton–Raphson fails to reach Tolerance
// within MaxIterations, or produces a non-finite iterate. Callers match it
// with errors.Is; the returned error carries the degree and node index.
var ErrNoConvergence = errors.New("gausslegendre: Newton-Raphson did not converge")
