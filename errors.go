package huffcode

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned when the input holds no symbols at all,
	// so no tree, codes, or size can be produced.
	ErrEmptyAlphabet = errors.New("huffcode: empty input, no symbols to encode")

	// ErrQueueFull is returned by PriorityQueue.Insert when the queue is
	// already at capacity.
	ErrQueueFull = errors.New("huffcode: priority queue is full")

	// ErrQueueEmpty is returned by PriorityQueue.ExtractMin when the queue
	// holds no nodes.
	ErrQueueEmpty = errors.New("huffcode: priority queue is empty")

	// ErrCountOverflow is returned when a frequency count would overflow.
	ErrCountOverflow = errors.New("huffcode: frequency count overflow")

	// ErrUnknownSymbol is returned by CodeTable.Encode for a symbol that
	// has no code.
	ErrUnknownSymbol = errors.New("huffcode: symbol has no code")

	// ErrInvalidCode is returned by Tree.Decode for a bit string that is
	// malformed or ends partway through a code.
	ErrInvalidCode = errors.New("huffcode: invalid code")

	// ErrUnknownTieBreak is returned by ParseTieBreak.
	ErrUnknownTieBreak = errors.New("huffcode: unknown tie-break policy")
)
