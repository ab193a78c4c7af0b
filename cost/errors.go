package cost

import "errors"

// ErrEmptyInput is returned when Evaluate is called with no patterns or
// no cuts to score.
var ErrEmptyInput = errors.New("cost: pattern or cut set is empty")
