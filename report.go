package huffcode

import (
	"bytes"
	"fmt"
	"io"
)

// Report is the result of analyzing one input sequence.
type Report struct {
	Frequencies *FrequencyTable
	Codes       CodeTable

	// CompressedBits is the number of bits needed to encode the input
	// with Codes.
	CompressedBits uint64

	// UncompressedBits is the number of bits in the input at
	// BitsPerSymbol bits per symbol.
	UncompressedBits uint64
}

// Analyze counts the symbols of data, builds a Huffman tree over them, and
// reports the resulting codes and sizes.  It fails with ErrEmptyAlphabet if
// data is empty.
func Analyze(data []byte, opts Options) (*Report, error) {
	return AnalyzeFrequencies(CountFrequencies(data), opts)
}

// AnalyzeFrequencies is like Analyze, but starts from an existing
// FrequencyTable.
func AnalyzeFrequencies(ft *FrequencyTable, opts Options) (*Report, error) {
	t, err := BuildTree(ft, opts)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Frequencies:      ft,
		Codes:            GenerateCodes(t),
		CompressedBits:   EncodedSize(t),
		UncompressedBits: UncompressedSize(ft.Total()),
	}
	log.Debugf("analyzed %d symbols (%d distinct): %d bits → %d bits", ft.Total(), ft.Len(), r.UncompressedBits, r.CompressedBits)
	return r, nil
}

// Ratio returns CompressedBits / UncompressedBits.
func (r *Report) Ratio() float64 {
	if r.UncompressedBits == 0 {
		return 0
	}
	return float64(r.CompressedBits) / float64(r.UncompressedBits)
}

// Dump writes a programmer-readable debugging dump of the Report to the
// given writer.
func (r *Report) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Report{\n")
	fmt.Fprintf(&buf, "\tUncompressedBits = %d\n", r.UncompressedBits)
	fmt.Fprintf(&buf, "\tCompressedBits = %d\n", r.CompressedBits)
	for _, sym := range r.Codes.Symbols() {
		fmt.Fprintf(&buf, "\t%v: count %d, code %s\n", sym, r.Frequencies.Count(sym), r.Codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
