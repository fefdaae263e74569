package huffcode

import (
	"github.com/pkg/errors"
)

// Decode walks the tree once per code in bits, starting again from the root
// after every leaf, and returns the symbols it reaches.  It fails with
// ErrInvalidCode if bits holds anything but '0' and '1', or stops partway
// through a code.
//
// For a degenerate tree, every '0' bit decodes to its only symbol.
//
func (t *Tree) Decode(bits Code) ([]byte, error) {
	if t.Degenerate() {
		out := make([]byte, 0, len(bits))
		for index := 0; index < len(bits); index++ {
			if bits[index] != '0' {
				return nil, errors.Wrapf(ErrInvalidCode, "unexpected %q at bit %d", bits[index], index)
			}
			out = append(out, byte(t.root.symbol))
		}
		return out, nil
	}

	var out []byte
	node := t.root
	for index := 0; index < len(bits); index++ {
		switch bits[index] {
		case '0':
			node = node.left
		case '1':
			node = node.right
		default:
			return nil, errors.Wrapf(ErrInvalidCode, "unexpected %q at bit %d", bits[index], index)
		}
		if node.IsLeaf() {
			out = append(out, byte(node.symbol))
			node = t.root
		}
	}
	if node != t.root {
		return nil, errors.Wrapf(ErrInvalidCode, "truncated code after %d bits", len(bits))
	}
	return out, nil
}
