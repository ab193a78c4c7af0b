package pattern

import (
	"strings"

	"github.com/kegliz/latticecut/lattice"
)

// BitPattern encodes a gate-assignment pattern as 1+numSlash+numBackSlash
// bits: bit 0 globally swaps the {A,B} and {C,D} halves of the lookup
// table, and bit i (1<=i<=numSlash+numBackSlash) flips the parity along
// the i-th "/" or "\\" diagonal line of the lattice.
type BitPattern struct {
	bits  uint64
	nBits int
}

// NewBitPattern wraps a raw bit-vector with its declared width.
func NewBitPattern(bits uint64, nBits int) BitPattern {
	return BitPattern{bits: bits, nBits: nBits}
}

// Bits returns the raw bit-vector value.
func (p BitPattern) Bits() uint64 { return p.bits }

// NBits returns the declared bit width, 1+numSlash+numBackSlash.
func (p BitPattern) NBits() int { return p.nBits }

// Bit reports the value of bit i.
func (p BitPattern) Bit(i int) bool { return p.bits&(uint64(1)<<uint(i)) != 0 }

// Lookup returns the order this pattern assigns to the primal edge
// (n1,n2), or ok=false if that edge is not a real primal edge of lat.
func (p BitPattern) Lookup(lat *lattice.Lattice, n1, n2 lattice.Point) (Order, bool) {
	idx, ok := lat.PrimalEdgeBetween(n1, n2)
	if !ok || !lat.RealAt(idx) {
		return 0, false
	}
	a, b := n1, n2
	if b.Less(a) {
		a, b = b, a
	}
	isSlash := a.Y > b.Y
	slashIdx := lat.SlashIndex(a, b)

	var parity bool
	if isSlash {
		parity = min(b.Y, lat.Width()-1-b.X)%2 == 1
	} else {
		parity = min(lat.Height()-1-b.Y, lat.Width()-1-b.X)%2 == 1
	}
	parity = parity != p.Bit(slashIdx)

	flip := p.Bit(0) != isSlash
	switch {
	case !flip && !parity:
		return C, true
	case !flip && parity:
		return D, true
	case flip && !parity:
		return A, true
	default:
		return B, true
	}
}

// Repr renders the pattern as "<bit0>_<slashbits>_<~bit0>_<backslashbits>",
// with slashbits/backslashbits written bit 1..=numSlash and
// numSlash+1..=numSlash+numBackSlash in increasing index order.
func Repr(p BitPattern, numSlash, numBackSlash int) string {
	var sb strings.Builder
	sb.WriteByte(bitChar(p.Bit(0)))
	sb.WriteByte('_')
	for i := 1; i <= numSlash; i++ {
		sb.WriteByte(bitChar(p.Bit(i)))
	}
	sb.WriteByte('_')
	sb.WriteByte(bitChar(!p.Bit(0)))
	sb.WriteByte('_')
	for i := numSlash + 1; i <= numSlash+numBackSlash; i++ {
		sb.WriteByte(bitChar(p.Bit(i)))
	}
	return sb.String()
}

func bitChar(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// ParseRepr parses the string form written by Repr, validating the
// redundant bit-0 complement field.
func ParseRepr(s string, numSlash, numBackSlash int) (BitPattern, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 4 {
		return BitPattern{}, ErrParseError
	}
	bit0Part, slashPart, flipPart, backPart := parts[0], parts[1], parts[2], parts[3]
	if len(bit0Part) != 1 || len(flipPart) != 1 {
		return BitPattern{}, ErrParseError
	}
	if len(slashPart) != numSlash || len(backPart) != numBackSlash {
		return BitPattern{}, ErrParseError
	}
	bit0, err := parseBit(bit0Part[0])
	if err != nil {
		return BitPattern{}, err
	}
	flip, err := parseBit(flipPart[0])
	if err != nil {
		return BitPattern{}, err
	}
	if bit0 == flip {
		return BitPattern{}, ErrParseError
	}

	nBits := 1 + numSlash + numBackSlash
	var bits uint64
	if bit0 {
		bits |= 1
	}
	for i, c := range slashPart {
		v, err := parseBit(byte(c))
		if err != nil {
			return BitPattern{}, err
		}
		if v {
			bits |= uint64(1) << uint(1+i)
		}
	}
	for i, c := range backPart {
		v, err := parseBit(byte(c))
		if err != nil {
			return BitPattern{}, err
		}
		if v {
			bits |= uint64(1) << uint(numSlash+1+i)
		}
	}
	return BitPattern{bits: bits, nBits: nBits}, nil
}

func parseBit(c byte) (bool, error) {
	switch c {
	case '0':
		return false, nil
	case '1':
		return true, nil
	default:
		return false, ErrParseError
	}
}
