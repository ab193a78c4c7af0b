package cutenum

import "errors"

// ErrInfeasibleBounds is returned when minDepth > maxDepth.
var ErrInfeasibleBounds = errors.New("cutenum: minDepth exceeds maxDepth")
