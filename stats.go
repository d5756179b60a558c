package huffpack

import (
	"fmt"
)

// Stats describes one compression or decompression run.
type Stats struct {
	// RawBytes counts the uncompressed bytes.
	RawBytes int64

	// PackedBytes counts the bytes of the compressed artifact, header
	// included.
	PackedBytes int64

	// HeaderBytes counts the bytes of the artifact taken up by the header.
	HeaderBytes int64

	// PayloadBits counts the meaningful payload bits, excluding padding.
	PayloadBits uint64

	// Padding is the number of filler bits in the last payload byte.
	Padding byte

	// Symbols is the number of distinct byte values in the code.
	Symbols int

	// Digest is the xxhash64 of the uncompressed bytes.
	Digest uint64

	// Warnings lists conditions that did not stop the run, such as
	// ErrDegenerateAlphabet.
	Warnings []error
}

// Ratio returns the compressed size as a fraction of the uncompressed size.
func (s Stats) Ratio() float64 {
	if s.RawBytes == 0 {
		return 0
	}
	return float64(s.PackedBytes) / float64(s.RawBytes)
}

// String returns a one-line summary of the run.
func (s Stats) String() string {
	return fmt.Sprintf("raw=%d packed=%d header=%d bits=%d padding=%d symbols=%d ratio=%.3f digest=%016x",
		s.RawBytes, s.PackedBytes, s.HeaderBytes, s.PayloadBits, s.Padding, s.Symbols, s.Ratio(), s.Digest)
}

var _ fmt.Stringer = Stats{}
