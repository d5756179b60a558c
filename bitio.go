package huffpack

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// Bits are packed least significant bit first: the first bit written lands
// in bit 0 of the first byte, the ninth in bit 0 of the second byte, and so
// on.  bitWriter and bitReader must agree on this order.

const bitWriterBufSize = 512

// A bitWriter packs single bits into bytes and writes full bytes to its
// contained io.Writer.  Write errors are stored and reported by Close.
type bitWriter struct {
	w     io.Writer
	err   error
	buf   []byte
	cur   byte
	nbits uint   // number of bits held in cur; always < 8
	total uint64 // number of bits written so far
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w, buf: make([]byte, 0, bitWriterBufSize)}
}

func (bw *bitWriter) writeBit(bit uint) {
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	bw.cur |= byte(bit) << bw.nbits
	bw.nbits++
	bw.total++
	if bw.nbits == 8 {
		bw.emit(bw.cur)
		bw.cur = 0
		bw.nbits = 0
	}
}

func (bw *bitWriter) writeCode(hc Code) {
	for i := 0; i < int(hc.Size); i++ {
		bw.writeBit(hc.Bit(i))
	}
}

// Close zero-fills and writes any partial final byte, flushes, and returns
// the number of filler bits (0 when the stream ended on a byte boundary).
func (bw *bitWriter) Close() (padding byte, err error) {
	if bw.nbits != 0 {
		padding = byte(8 - bw.nbits)
		bw.emit(bw.cur)
		bw.cur = 0
		bw.nbits = 0
	}
	bw.flush()
	return padding, bw.err
}

// Bits returns the number of bits written so far, excluding padding.
func (bw *bitWriter) Bits() uint64 {
	return bw.total
}

func (bw *bitWriter) emit(b byte) {
	bw.buf = append(bw.buf, b)
	if len(bw.buf) == cap(bw.buf) {
		bw.flush()
	}
}

func (bw *bitWriter) flush() {
	if bw.err == nil && len(bw.buf) != 0 {
		_, bw.err = bw.w.Write(bw.buf)
	}
	bw.buf = bw.buf[:0]
}

// A bitReader unpacks the bits of a payload in the order bitWriter packed
// them, dropping the filler bits at the end of the final byte.
type bitReader struct {
	data []byte
	pos  uint64 // index of the next bit
	n    uint64 // number of meaningful bits
}

func newBitReader(data []byte, padding byte) (*bitReader, error) {
	if padding > 7 {
		return nil, malformedf("padding of %d bits, max 7", padding)
	}
	if len(data) == 0 && padding != 0 {
		return nil, malformedf("padding of %d bits but the payload is empty", padding)
	}
	n := uint64(len(data))*8 - uint64(padding)
	return &bitReader{data: data, n: n}, nil
}

// readBit returns the next bit, or ok == false once all meaningful bits have
// been consumed.
func (br *bitReader) readBit() (bit uint, ok bool) {
	if br.pos >= br.n {
		return 0, false
	}
	bit = uint(br.data[br.pos/8]>>(br.pos%8)) & 1
	br.pos++
	return bit, true
}

// Bits returns the total number of meaningful bits in the payload.
func (br *bitReader) Bits() uint64 {
	return br.n
}
