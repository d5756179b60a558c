package huffpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestDecoder() *Decoder {
	d, err := NewDecoder(makeTestCodeTable())
	if err != nil {
		panic(err)
	}
	return d
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		name    string
		payload []byte
		padding byte
		expect  string
	}

	testData := [...]testRow{
		{name: "scenario", payload: []byte{0xf8, 0x00}, padding: 7, expect: "aaabbc"},
		{name: "one-bit", payload: []byte{0x00}, padding: 7, expect: "a"},
		{name: "full-byte", payload: []byte{0x00}, padding: 0, expect: "aaaaaaaa"},
		{name: "codes-across-bytes", payload: []byte{0x80, 0x01}, padding: 7, expect: "aaaaaaab"},
		{name: "padding-six", payload: []byte{0x02, 0x00}, padding: 6, expect: "acaaaaaaa"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := d.Decode(row.payload, row.padding)
			require.NoError(t, err)
			require.Equal(t, row.expect, string(out))
		})
	}
}

func TestDecoder_DecodeMalformed(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		name    string
		payload []byte
		padding byte
	}

	testData := [...]testRow{
		// 0 0 0 11 11 then a lone 1.
		{name: "ends-mid-code", payload: []byte{0xf8}, padding: 0},
		{name: "ends-mid-code-padded", payload: []byte{0x01}, padding: 7},
		{name: "empty", payload: nil, padding: 0},
		{name: "padding-without-payload", payload: nil, padding: 1},
		{name: "padding-too-large", payload: []byte{0x00}, padding: 8},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := d.Decode(row.payload, row.padding)
			require.ErrorIs(t, err, ErrMalformedStream)
			require.Nil(t, out)
		})
	}
}

func TestDecoder_UnassignedBranch(t *testing.T) {
	ct := new(CodeTable)
	ct.set('a', MustParseCode("0"))
	d, err := NewDecoder(ct)
	require.NoError(t, err)

	out, err := d.Decode([]byte{0x00}, 0)
	require.NoError(t, err)
	require.Equal(t, "aaaaaaaa", string(out))

	_, err = d.Decode([]byte{0x02}, 0)
	require.ErrorIs(t, err, ErrMalformedStream)
}

func TestDecompress_Malformed(t *testing.T) {
	type testRow struct {
		name     string
		artifact []byte
	}

	testData := [...]testRow{
		{name: "empty", artifact: nil},
		{name: "header-only", artifact: testHeaderBytes},
		{name: "truncated-header", artifact: testHeaderBytes[:7]},
		{name: "truncated-payload", artifact: append([]byte{0, 3, 'a', 1, '0', 'b', 2, '1', '1', 'c', 2, '1', '0'}, 0xf8)},
		{name: "not-prefix-free", artifact: []byte{0, 2, 'a', 2, '0', '1', 'b', 1, '0', 0x00}},
		{name: "extends-leaf", artifact: []byte{0, 2, 'a', 1, '0', 'b', 2, '0', '1', 0x00}},
		{name: "unassigned-branch", artifact: []byte{7, 1, 'a', 1, '0', 0x01}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Decompress(&out, bytes.NewReader(row.artifact))
			require.ErrorIs(t, err, ErrMalformedStream)
			require.Zero(t, out.Len(), "no partial output")
		})
	}
}

func TestDecompress_TruncatedArtifact(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")

	var buf bytes.Buffer
	stats, err := Compress(&buf, input)
	require.NoError(t, err)
	artifact := buf.Bytes()

	// Cut the payload at every bit position that does not fall on a code
	// boundary, with the padding adjusted so the cut is taken at face value.
	hdr, err := ReadHeader(bytes.NewReader(artifact))
	require.NoError(t, err)
	headerLen := int(stats.HeaderBytes)
	payload := artifact[headerLen:]

	boundaries := make(map[uint64]bool)
	var pos uint64
	for _, b := range input {
		hc, _ := hdr.Codes.Lookup(Symbol(b))
		pos += uint64(hc.Size)
		boundaries[pos] = true
	}

	d, err := NewDecoder(hdr.Codes)
	require.NoError(t, err)
	for cut := uint64(1); cut < stats.PayloadBits; cut++ {
		if boundaries[cut] {
			continue
		}
		_, err := d.Decode(payload[:packedLen(cut)], paddingFor(cut))
		require.ErrorIs(t, err, ErrMalformedStream, "cut at bit %d", cut)
	}
}
