package huffcode

import (
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("huffcode")

// Options configures BuildTree and Analyze.  The zero value is ready to use.
type Options struct {
	// TieBreak selects how nodes of equal weight are ordered while merging.
	TieBreak TieBreak
}

// Tree is a finished Huffman tree.  It is a full binary tree: every internal
// node has exactly two children.
type Tree struct {
	root   *Node
	leaves int
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// Degenerate returns true iff the tree is a single leaf, which happens when
// the input has exactly one distinct symbol.  A degenerate tree's only
// symbol is treated as sitting at depth 1, so that it gets the 1-bit code
// "0".
func (t *Tree) Degenerate() bool {
	return t.root.IsLeaf()
}

// BuildTree builds a Huffman tree from the given frequencies, using a MinHeap
// sized to the whole alphabet.  It fails with ErrEmptyAlphabet if no symbol
// has a non-zero count.
func BuildTree(ft *FrequencyTable, opts Options) (*Tree, error) {
	return BuildTreeWithQueue(ft, NewMinHeap(AlphabetSize, opts.TieBreak))
}

// BuildTreeWithQueue is like BuildTree, but merges nodes through the given
// queue.  The queue's prior contents are discarded.
//
// Each round extracts the two lightest nodes and merges them under a new
// internal node: the first node extracted becomes the left child (bit 0) and
// the second becomes the right child (bit 1).  The merged node goes back into
// the queue, so the queue never holds more nodes than there are leaves.
//
func BuildTreeWithQueue(ft *FrequencyTable, q PriorityQueue) (*Tree, error) {
	symbols := ft.Symbols()
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}

	leaves := make([]*Node, len(symbols))
	for index, sym := range symbols {
		leaves[index] = newLeaf(uint32(index), sym, ft.Count(sym))
	}
	if err := q.Build(leaves); err != nil {
		return nil, errors.Wrap(err, "huffcode: seeding queue")
	}

	nextSeq := uint32(len(leaves))
	for q.Len() > 1 {
		left, err := q.ExtractMin()
		if err != nil {
			return nil, errors.Wrap(err, "huffcode: merging")
		}
		right, err := q.ExtractMin()
		if err != nil {
			return nil, errors.Wrap(err, "huffcode: merging")
		}
		if err := q.Insert(newInternal(nextSeq, left, right)); err != nil {
			return nil, errors.Wrap(err, "huffcode: merging")
		}
		nextSeq++
	}

	root, err := q.ExtractMin()
	if err != nil {
		return nil, errors.Wrap(err, "huffcode: extracting root")
	}

	log.Debugf("built tree: %d leaves, %d merges, root weight %d", len(leaves), nextSeq-uint32(len(leaves)), root.weight)
	return &Tree{root: root, leaves: len(leaves)}, nil
}
