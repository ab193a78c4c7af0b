// Package pattern enumerates admissible gate-assignment patterns over a
// lattice's primal edges and looks up the order label assigned to any
// given edge by a pattern.
package pattern

import "fmt"

// Order is one of the four gate-assignment labels a pattern assigns to a
// primal edge.
type Order int

const (
	A Order = iota
	B
	C
	D
)

func (o Order) String() string {
	switch o {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses a single-letter order label.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "A":
		return A, nil
	case "B":
		return B, nil
	case "C":
		return C, nil
	case "D":
		return D, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
}

// IsElementary reports whether the unordered pair {o1,o2} is one of the
// two elementary pairs {A,B} or {C,D}. An elementary beat pair never forms
// a wedge window, and a DCD window requires its first two beats to form
// one.
func IsElementary(o1, o2 Order) bool {
	lo, hi := o1, o2
	if hi < lo {
		lo, hi = hi, lo
	}
	return (lo == A && hi == B) || (lo == C && hi == D)
}
