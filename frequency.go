package huffcode

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// FrequencyTable holds the number of occurrences of each Symbol in some
// input sequence.  The zero value is an empty table, ready to use.
type FrequencyTable struct {
	counts   [AlphabetSize]uint64
	total    uint64
	distinct int
}

// CountFrequencies tabulates the occurrences of each byte in data.  An empty
// data yields an empty table.
func CountFrequencies(data []byte) *FrequencyTable {
	ft := new(FrequencyTable)
	ft.Add(data)
	return ft
}

// CountReader tabulates the occurrences of each byte read from r until EOF.
func CountReader(r io.Reader) (*FrequencyTable, error) {
	ft := new(FrequencyTable)
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		ft.Add(buf[:n])
		if err == io.EOF {
			return ft, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "huffcode: counting frequencies")
		}
	}
}

// Add tabulates the bytes of data on top of the existing counts.
func (ft *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		if ft.counts[b] == 0 {
			ft.distinct++
		}
		ft.counts[b]++
	}
	ft.total += uint64(len(data))
}

// AddCount adds n occurrences of sym.  It fails with ErrCountOverflow if the
// total number of occurrences would no longer fit in a uint64.
func (ft *FrequencyTable) AddCount(sym Symbol, n uint64) error {
	assert.Assertf(sym.Valid(), "symbol %d out of range [0, %d]", int32(sym), int32(MaxSymbol))
	if n == 0 {
		return nil
	}
	if ft.total+n < ft.total {
		return errors.Wrapf(ErrCountOverflow, "adding %d occurrences of %v to total %d", n, sym, ft.total)
	}
	if ft.counts[sym] == 0 {
		ft.distinct++
	}
	ft.counts[sym] += n
	ft.total += n
	return nil
}

// Count returns the number of occurrences of sym.
func (ft *FrequencyTable) Count(sym Symbol) uint64 {
	if !sym.Valid() {
		return 0
	}
	return ft.counts[sym]
}

// Len returns the number of distinct symbols with a non-zero count.
func (ft *FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the number of symbols tabulated.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.distinct)
	for sym := Symbol(0); sym <= MaxSymbol; sym++ {
		if ft.counts[sym] != 0 {
			out = append(out, sym)
		}
	}
	return out
}

// Map returns the table as a map from Symbol to count, covering only the
// symbols that occur.
func (ft *FrequencyTable) Map() map[Symbol]uint64 {
	out := make(map[Symbol]uint64, ft.distinct)
	for sym := Symbol(0); sym <= MaxSymbol; sym++ {
		if n := ft.counts[sym]; n != 0 {
			out[sym] = n
		}
	}
	return out
}
