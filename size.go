package huffcode

// BitsPerSymbol is the width of one symbol of unencoded input.
const BitsPerSymbol = 8

// EncodedSize walks the tree and returns the sum over all leaves of weight ×
// depth, which is the number of bits the tree's codes need to encode the
// input it was built from.  The root is at depth 0, except that the only leaf
// of a degenerate tree counts as depth 1.
func EncodedSize(t *Tree) uint64 {
	var total uint64
	walkLeaves(t, func(leaf *Node, path []byte) {
		total = satAdd64(total, satMul64(leaf.weight, uint64(len(path))))
	})
	return total
}

// UncompressedSize returns the number of bits in n symbols of unencoded
// input.
func UncompressedSize(n uint64) uint64 {
	return satMul64(n, BitsPerSymbol)
}
