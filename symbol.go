package huffcode

import (
	"fmt"
)

// AlphabetSize is the number of distinct symbols in the byte alphabet.  It
// also bounds the capacity of the priority queue used by BuildTree.
const AlphabetSize = 256

// Symbol represents a symbol in the byte alphabet.  Negative symbols are not
// valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(AlphabetSize - 1)

// InvalidSymbol is carried by internal tree nodes, and is returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Valid returns true iff this Symbol lies within the byte alphabet.
func (sym Symbol) Valid() bool {
	return sym >= 0 && sym <= MaxSymbol
}

// String returns the string representation of this Symbol.  Printable ASCII
// symbols are shown as quoted characters, others in hex.
func (sym Symbol) String() string {
	switch {
	case !sym.Valid():
		return "<invalid>"
	case sym >= 0x20 && sym < 0x7f:
		return fmt.Sprintf("%q", rune(sym))
	default:
		return fmt.Sprintf("0x%02x", int32(sym))
	}
}

var _ fmt.Stringer = Symbol(0)
