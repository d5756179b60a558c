package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Decoder expands payloads that were packed with one code table.
type Decoder struct {
	codes *CodeTable
	tree  *Tree
}

// NewDecoder rebuilds the decoding tree for codes.  It fails with
// ErrMalformedStream if the codes do not form a prefix code.
func NewDecoder(codes *CodeTable) (*Decoder, error) {
	if codes.Len() == 0 {
		return nil, malformedf("no symbols in code table")
	}
	tree, err := codes.Trie()
	if err != nil {
		return nil, err
	}
	return &Decoder{codes: codes, tree: tree}, nil
}

// Tree returns the decoding tree.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// Decode walks the tree one payload bit at a time, 0 to the left and 1 to
// the right, emitting a symbol and restarting at the root whenever a leaf is
// reached.  The last padding bits of the final byte are ignored.
//
// A payload that runs off the tree, or that ends part-way down a path, is
// rejected with ErrMalformedStream; no partial output is returned.
//
func (d *Decoder) Decode(payload []byte, padding byte) ([]byte, error) {
	br, err := newBitReader(payload, padding)
	if err != nil {
		return nil, err
	}
	if br.Bits() == 0 {
		return nil, malformedf("empty payload")
	}

	out := make([]byte, 0, br.Bits()/uint64(d.codes.MaxSize()))
	root := d.tree.root
	cur := root
	for {
		bit, ok := br.readBit()
		if !ok {
			break
		}
		next := d.tree.step(cur, bit)
		if next == noChild {
			return nil, malformedf("bit %d of payload selects an unassigned code", br.pos-1)
		}
		if symbol, isLeaf := d.tree.leaf(next); isLeaf {
			out = append(out, byte(symbol))
			cur = root
		} else {
			cur = next
		}
	}

	if cur != root {
		return nil, malformedf("payload ends in the middle of a code after %d symbols", len(out))
	}
	return out, nil
}

// Decompress reads a compressed artifact from r and writes the original bytes
// to w.  Nothing is written to w unless the whole artifact decodes cleanly.
func Decompress(w io.Writer, r io.Reader) (Stats, error) {
	artifact, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, fmt.Errorf("huffpack: reading artifact: %w", err)
	}
	return DecompressBytes(w, artifact)
}

// DecompressBytes is like Decompress but takes the artifact as a byte slice.
func DecompressBytes(w io.Writer, artifact []byte) (Stats, error) {
	stats := Stats{PackedBytes: int64(len(artifact))}
	if len(artifact) == 0 {
		return stats, malformedf("empty artifact")
	}

	br := bytes.NewReader(artifact)
	hdr, err := ReadHeader(br)
	if err != nil {
		return stats, err
	}
	headerLen := len(artifact) - br.Len()
	stats.HeaderBytes = int64(headerLen)
	stats.Padding = hdr.Padding
	stats.Symbols = hdr.Codes.Len()

	d, err := NewDecoder(hdr.Codes)
	if err != nil {
		return stats, err
	}
	out, err := d.Decode(artifact[headerLen:], hdr.Padding)
	if err != nil {
		return stats, err
	}
	stats.PayloadBits = uint64(len(artifact)-headerLen)*8 - uint64(hdr.Padding)
	stats.Digest = xxhash.Sum64(out)

	n, err := w.Write(out)
	stats.RawBytes = int64(n)
	if err != nil {
		return stats, fmt.Errorf("huffpack: writing output: %w", err)
	}
	log.Debugf("decompress: %s", stats)
	return stats, nil
}
