package huffcode

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree: either a leaf carrying a Symbol, or an
// internal node with exactly two children.  Nodes are never mutated once
// BuildTree returns.
type Node struct {
	symbol Symbol
	weight uint64
	seq    uint32
	left   *Node
	right  *Node
}

func newLeaf(seq uint32, symbol Symbol, weight uint64) *Node {
	assert.Assertf(symbol.Valid(), "leaf symbol %d out of range [0, %d]", int32(symbol), int32(MaxSymbol))
	return &Node{symbol: symbol, weight: weight, seq: seq}
}

func newInternal(seq uint32, left *Node, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node needs two children: left=%p right=%p", left, right)
	return &Node{
		symbol: InvalidSymbol,
		weight: satAdd64(left.weight, right.weight),
		seq:    seq,
		left:   left,
		right:  right,
	}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the symbol of a leaf, or InvalidSymbol for an internal node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Weight returns the frequency of a leaf, or the sum of its children's
// weights for an internal node.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Left returns the child reached by a 0 bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a 1 bit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// String returns a short description of this node.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("leaf(%v, %d)", n.symbol, n.weight)
	}
	return fmt.Sprintf("node(%d)", n.weight)
}

var _ fmt.Stringer = (*Node)(nil)
