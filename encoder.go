package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/chronos-tachyon/assert"
)

// Encoder compresses inputs with the Huffman code derived from one
// FrequencyTable.
type Encoder struct {
	freq  FrequencyTable
	tree  *Tree
	codes *CodeTable
}

// NewEncoder builds the tree and code table for freq.  It fails with
// ErrEmptyInput if freq has no non-zero counts.
func NewEncoder(freq *FrequencyTable) (*Encoder, error) {
	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		freq:  *freq,
		tree:  tree,
		codes: GenerateCodes(tree),
	}, nil
}

// Tree returns the Huffman tree this Encoder was built from.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Codes returns the code table this Encoder uses.
func (e *Encoder) Codes() *CodeTable {
	return e.codes
}

// Encode writes the compressed artifact for data to w.  Every byte of data
// must have a code, i.e. data must be the input the Encoder's frequencies
// were counted from or a rearrangement of it.
//
// The payload is packed into memory first, because the padding count at the
// front of the header is only known once the last bit has been written.
//
func (e *Encoder) Encode(w io.Writer, data []byte) (Stats, error) {
	stats := Stats{
		RawBytes: int64(len(data)),
		Symbols:  e.codes.Len(),
		Digest:   xxhash.Sum64(data),
	}

	var payload bytes.Buffer
	payload.Grow(int(packedLen(e.codes.EncodedBits(&e.freq))))
	bw := newBitWriter(&payload)
	for index, b := range data {
		hc, found := e.codes.Lookup(Symbol(b))
		if !found {
			return stats, fmt.Errorf("huffpack: byte 0x%02x at offset %d has no code", b, index)
		}
		bw.writeCode(hc)
	}
	padding, err := bw.Close()
	if err != nil {
		return stats, err
	}
	stats.PayloadBits = bw.Bits()
	stats.Padding = padding
	assert.Assertf(padding == paddingFor(stats.PayloadBits), "padding %d for %d bits", padding, stats.PayloadBits)

	hdr := Header{Padding: padding, Codes: e.codes}
	n, err := hdr.WriteTo(w)
	stats.HeaderBytes = n
	stats.PackedBytes = n
	if err != nil {
		return stats, fmt.Errorf("huffpack: writing header: %w", err)
	}

	m, err := payload.WriteTo(w)
	stats.PackedBytes += m
	if err != nil {
		return stats, fmt.Errorf("huffpack: writing payload: %w", err)
	}

	if stats.Symbols == 1 {
		stats.Warnings = append(stats.Warnings, ErrDegenerateAlphabet)
		log.Warningf("compress: only one distinct byte value (0x%02x); using a 1-bit code", byte(e.codes.Symbols()[0]))
	}
	log.Debugf("compress: %s", stats)
	return stats, nil
}

// Compress writes the compressed artifact for data to w.  It fails with
// ErrEmptyInput if data is empty.
func Compress(w io.Writer, data []byte) (Stats, error) {
	freq, err := CountFrequencies(data)
	if err != nil {
		return Stats{}, err
	}
	e, err := NewEncoder(&freq)
	if err != nil {
		return Stats{}, err
	}
	return e.Encode(w, data)
}

// CompressReader is like Compress but reads its input from r.
func CompressReader(w io.Writer, r io.Reader) (Stats, error) {
	freq, data, err := ReadFrequencies(r)
	if err != nil {
		return Stats{}, err
	}
	e, err := NewEncoder(&freq)
	if err != nil {
		return Stats{}, err
	}
	return e.Encode(w, data)
}
