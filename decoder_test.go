package huffcode

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func makeTestTree(input string) *Tree {
	t, err := BuildTree(CountFrequencies([]byte(input)), Options{})
	if err != nil {
		panic(err)
	}
	return t
}

func TestTree_Decode(t *testing.T) {
	tree := makeTestTree("aaaabbbccd")

	type testRow struct {
		bits   Code
		expect []byte
		err    error
	}

	testData := [...]testRow{
		{bits: "", expect: nil},
		{bits: "0", expect: []byte("a")},
		{bits: "010111110", expect: []byte("abcd")},
		{bits: "1101110", expect: []byte("dca")},
		{bits: "11", err: ErrInvalidCode},
		{bits: "0x", err: ErrInvalidCode},
	}
	for _, row := range testData {
		t.Run(row.bits.String(), func(t *testing.T) {
			actual, err := tree.Decode(row.bits)
			if errors.Cause(err) != row.err {
				t.Fatalf("expected error %v, got %v", row.err, err)
			}
			if !bytes.Equal(row.expect, actual) {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestTree_Decode_SingleSymbol(t *testing.T) {
	tree := makeTestTree("zz")
	if !tree.Degenerate() {
		t.Fatalf("expected a degenerate tree")
	}

	actual, err := tree.Decode("000")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if expect := []byte("zzz"); !bytes.Equal(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}

	_, err = tree.Decode("01")
	if errors.Cause(err) != ErrInvalidCode {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
}
