package huffcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func makeTestFrequencies(counts ...uint64) *FrequencyTable {
	ft := new(FrequencyTable)
	for index, n := range counts {
		if err := ft.AddCount(Symbol(index), n); err != nil {
			panic(err)
		}
	}
	return ft
}

func makeTestCodes(ft *FrequencyTable, tie TieBreak) CodeTable {
	t, err := BuildTree(ft, Options{TieBreak: tie})
	if err != nil {
		panic(err)
	}
	return GenerateCodes(t)
}

func TestGenerateCodes(t *testing.T) {
	codes := makeTestCodes(makeTestFrequencies(5, 9, 12, 13, 16, 45), OldestFirst)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0x00) = \"1100\"\n",
		"\tEncode(0x01) = \"1101\"\n",
		"\tEncode(0x02) = \"100\"\n",
		"\tEncode(0x03) = \"101\"\n",
		"\tEncode(0x04) = \"111\"\n",
		"\tEncode(0x05) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = codes.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := codes.SizeBySymbol()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestGenerateCodes_TieBreak(t *testing.T) {
	type testRow struct {
		name   string
		tie    TieBreak
		expect map[byte]Code
	}

	testData := [...]testRow{
		{
			name:   "oldest",
			tie:    OldestFirst,
			expect: map[byte]Code{'a': "0", 'b': "10", 'c': "111", 'd': "110"},
		},
		{
			name:   "newest",
			tie:    NewestFirst,
			expect: map[byte]Code{'a': "0", 'b': "11", 'c': "101", 'd': "100"},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			codes := makeTestCodes(CountFrequencies([]byte("aaaabbbccd")), row.tie)
			if len(codes) != len(row.expect) {
				t.Errorf("expected %d codes, got %d", len(row.expect), len(codes))
			}
			for b, expect := range row.expect {
				actual, found := codes.Lookup(Symbol(b))
				if !found {
					t.Errorf("no code for %v", Symbol(b))
				} else if expect != actual {
					t.Errorf("wrong code for %v: expect %s, actual %s", Symbol(b), expect, actual)
				}
			}
		})
	}
}

func TestGenerateCodes_SingleSymbol(t *testing.T) {
	codes := makeTestCodes(CountFrequencies([]byte("aaaa")), OldestFirst)
	if len(codes) != 1 {
		t.Fatalf("expected 1 code, got %d", len(codes))
	}
	if c := codes['a']; c != "0" {
		t.Errorf("expected code %s, got %s", Code("0"), c)
	}
	if min, max := codes.MinSize(), codes.MaxSize(); min != 1 || max != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", min, max)
	}
}

func TestGenerateCodes_TwoSymbols(t *testing.T) {
	codes := makeTestCodes(CountFrequencies([]byte("ab")), OldestFirst)
	if codes['a'] != "0" || codes['b'] != "1" {
		t.Errorf("expected a=\"0\" b=\"1\", got a=%s b=%s", codes['a'], codes['b'])
	}
}

func TestCodeTable_Encode(t *testing.T) {
	codes := makeTestCodes(CountFrequencies([]byte("aaaabbbccd")), OldestFirst)

	actual, err := codes.Encode([]byte("abcd"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expect := Code("010111110"); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	_, err = codes.Encode([]byte("abz"))
	if errors.Cause(err) != ErrUnknownSymbol {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestCodeTable_WeightedLength(t *testing.T) {
	ft := CountFrequencies([]byte("aaaabbbccd"))
	codes := makeTestCodes(ft, OldestFirst)
	if actual := codes.WeightedLength(ft); actual != 19 {
		t.Errorf("expected 19, got %d", actual)
	}
}

func TestCode(t *testing.T) {
	type testRow struct {
		code   Code
		valid  bool
		str    string
		length int
	}

	testData := [...]testRow{
		{code: "", valid: true, str: "\"\"", length: 0},
		{code: "0", valid: true, str: "\"0\"", length: 1},
		{code: "0110", valid: true, str: "\"0110\"", length: 4},
		{code: "012", valid: false, str: "\"012\"", length: 3},
	}
	for _, row := range testData {
		t.Run(row.str, func(t *testing.T) {
			if actual := row.code.Valid(); actual != row.valid {
				t.Errorf("expected Valid() %v, got %v", row.valid, actual)
			}
			if actual := row.code.String(); actual != row.str {
				t.Errorf("expected String() %s, got %s", row.str, actual)
			}
			if actual := row.code.Len(); actual != row.length {
				t.Errorf("expected Len() %d, got %d", row.length, actual)
			}
		})
	}

	if !Code("0110").HasPrefix("01") {
		t.Errorf("expected \"0110\" to have prefix \"01\"")
	}
	if Code("01").HasPrefix("0110") {
		t.Errorf("expected \"01\" not to have prefix \"0110\"")
	}
}
