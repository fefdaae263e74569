package huffcode

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters.  The first character is the first bit.
type Code string

// Len returns the number of bits in this Code.
func (c Code) Len() int {
	return len(c)
}

// Valid returns true iff this Code consists only of '0' and '1' characters.
func (c Code) Valid() bool {
	for i := 0; i < len(c); i++ {
		if c[i] != '0' && c[i] != '1' {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (c Code) HasPrefix(prefix Code) bool {
	return len(c) >= len(prefix) && c[:len(prefix)] == prefix
}

// String returns the quoted string representation of this Code.
func (c Code) String() string {
	return strconv.Quote(string(c))
}

var _ fmt.Stringer = Code("")
