// Package huffcode computes minimum-redundancy prefix-free codes (Huffman
// codes) for the bytes of an input sequence, and reports the encoded size
// implied by those codes against a plain 8-bits-per-symbol baseline.
//
// The pipeline is:
//
//     CountFrequencies → BuildTree → GenerateCodes / EncodedSize
//
// Analyze runs the whole pipeline and returns a Report.
//
// Only code lengths and size arithmetic are computed; no packed bit stream
// is produced.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode
