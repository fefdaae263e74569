package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// CodeTable maps each symbol of a tree to its Huffman code.  No code in a
// CodeTable is a prefix of another.
type CodeTable map[Symbol]Code

// GenerateCodes walks the tree and assigns each leaf the sequence of branches
// leading to it: 0 for each left branch, 1 for each right branch.  The only
// symbol of a degenerate tree gets the code "0".
func GenerateCodes(t *Tree) CodeTable {
	codes := make(CodeTable, t.leaves)
	walkLeaves(t, func(leaf *Node, path []byte) {
		codes[leaf.symbol] = Code(path)
	})
	return codes
}

// Lookup returns the code for sym, if it has one.
func (ct CodeTable) Lookup(sym Symbol) (Code, bool) {
	c, found := ct[sym]
	return c, found
}

// Symbols returns the symbols with a code, in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ct))
	for sym := range ct {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() int {
	var min int
	for _, c := range ct {
		if min == 0 || c.Len() < min {
			min = c.Len()
		}
	}
	return min
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() int {
	var max int
	for _, c := range ct {
		if c.Len() > max {
			max = c.Len()
		}
	}
	return max
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, with 0 for symbols that have no code.
func (ct CodeTable) SizeBySymbol() []byte {
	out := make([]byte, AlphabetSize)
	for sym, c := range ct {
		out[sym] = byte(c.Len())
	}
	return out
}

// WeightedLength returns the sum over all symbols of count × code length,
// i.e. the number of bits needed to encode the input that ft was counted
// from.
func (ct CodeTable) WeightedLength(ft *FrequencyTable) uint64 {
	var total uint64
	for sym, c := range ct {
		total = satAdd64(total, satMul64(ft.Count(sym), uint64(c.Len())))
	}
	return total
}

// Encode concatenates the codes of each byte in data.  It fails with
// ErrUnknownSymbol if some byte has no code.
func (ct CodeTable) Encode(data []byte) (Code, error) {
	var sb strings.Builder
	for index, b := range data {
		c, found := ct[Symbol(b)]
		if !found {
			return "", errors.Wrapf(ErrUnknownSymbol, "symbol %v at offset %d", Symbol(b), index)
		}
		sb.WriteString(string(c))
	}
	return Code(sb.String()), nil
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, sym := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", sym, ct[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
