package huffcode

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// TieBreak selects how a MinHeap orders nodes of equal weight.
//
// Every node carries a creation sequence number: leaves are numbered first,
// in ascending symbol order, and internal nodes continue the numbering in the
// order the merge loop creates them.
type TieBreak uint8

const (
	// OldestFirst extracts the node with the lower sequence number first.
	// Leaves and older subtrees win ties, which keeps the code lengths as
	// even as possible.  This is the default.
	OldestFirst TieBreak = iota

	// NewestFirst extracts the node with the higher sequence number first.
	NewestFirst
)

var tieBreakNames = [...]string{
	OldestFirst: "oldest",
	NewestFirst: "newest",
}

// ParseTieBreak parses the name of a TieBreak, as returned by String.
func ParseTieBreak(str string) (TieBreak, error) {
	for index, name := range tieBreakNames {
		if strings.EqualFold(str, name) {
			return TieBreak(index), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTieBreak, "parsing %q", str)
}

// String returns the name of this TieBreak.
func (tb TieBreak) String() string {
	if int(tb) < len(tieBreakNames) {
		return tieBreakNames[tb]
	}
	return fmt.Sprintf("TieBreak(%d)", uint8(tb))
}

// less reports whether a should be extracted before b.
func (tb TieBreak) less(a, b *Node) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if tb == NewestFirst {
		return a.seq > b.seq
	}
	return a.seq < b.seq
}

var _ fmt.Stringer = TieBreak(0)
