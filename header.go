package huffpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Header is the leading part of a compressed artifact: the padding count for
// the payload and the code for every symbol the payload uses.
type Header struct {
	// Padding holds the number of zero filler bits at the end of the final
	// payload byte, 0..7.
	Padding byte

	// Codes holds the code table used to pack the payload.
	Codes *CodeTable
}

// MarshalBinary encodes the header in artifact layout.
func (hdr *Header) MarshalBinary() ([]byte, error) {
	assert.Assertf(hdr.Padding <= 7, "padding %d > 7", hdr.Padding)

	count := hdr.Codes.Len()
	if count == 0 {
		return nil, ErrEmptyInput
	}
	assert.Assertf(count <= NumSymbols, "%d symbols > %d", count, NumSymbols)

	out := make([]byte, 0, 2+count*(2+int(hdr.Codes.MaxSize())))
	out = append(out, hdr.Padding, byte(count%NumSymbols))
	for _, symbol := range hdr.Codes.Symbols() {
		hc, _ := hdr.Codes.Lookup(symbol)
		out = append(out, byte(symbol))
		out = binary.AppendUvarint(out, uint64(hc.Size))
		out = append(out, hc.Digits()...)
	}
	return out, nil
}

// WriteTo writes the encoded header to w.
func (hdr *Header) WriteTo(w io.Writer) (int64, error) {
	raw, err := hdr.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(raw)
	return int64(n), err
}

// ReadHeader decodes a header from r.  Any inconsistency, including running
// out of input, is reported as ErrMalformedStream.
func ReadHeader(r io.ByteReader) (*Header, error) {
	padding, err := r.ReadByte()
	if err != nil {
		return nil, truncated("padding", err)
	}
	if padding > 7 {
		return nil, malformedf("padding of %d bits, max 7", padding)
	}

	rawCount, err := r.ReadByte()
	if err != nil {
		return nil, truncated("symbol count", err)
	}
	count := int(rawCount)
	if count == 0 {
		count = NumSymbols
	}

	ct := new(CodeTable)
	var digits [MaxCodeSize]byte
	for i := 0; i < count; i++ {
		rawSymbol, err := r.ReadByte()
		if err != nil {
			return nil, truncated("symbol", err)
		}
		symbol := Symbol(rawSymbol)
		if _, found := ct.Lookup(symbol); found {
			return nil, malformedf("symbol 0x%02x appears twice", rawSymbol)
		}

		size, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, truncated("code length", err)
		}
		if size == 0 || size > MaxCodeSize {
			return nil, malformedf("code length %d for symbol 0x%02x outside [1, %d]", size, rawSymbol, MaxCodeSize)
		}

		for j := uint64(0); j < size; j++ {
			if digits[j], err = r.ReadByte(); err != nil {
				return nil, truncated("code", err)
			}
		}
		hc, err := ParseCode(string(digits[:size]))
		if err != nil {
			return nil, malformedf("symbol 0x%02x: %v", rawSymbol, err)
		}
		ct.set(symbol, hc)
	}

	return &Header{Padding: padding, Codes: ct}, nil
}

// UnmarshalBinary decodes a header that occupies all of data.
func (hdr *Header) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	parsed, err := ReadHeader(r)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return malformedf("%d trailing bytes after header", r.Len())
	}
	*hdr = *parsed
	return nil
}

func truncated(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return malformedf("truncated header: missing %s", field)
	}
	return err
}
