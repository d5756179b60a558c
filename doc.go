// Package huffpack implements a Huffman-coding file compressor.  A byte
// stream is analyzed for symbol frequencies, a prefix code is derived from
// those frequencies, and the input is rewritten as a small header followed by
// a packed bitstream that can be losslessly expanded again.
//
// Compressed artifact layout:
//
//	padding   1 byte     number of zero filler bits in the last payload byte (0..7)
//	count     1 byte     number of distinct symbols; 0 means 256
//	count × {
//	  symbol  1 byte
//	  length  uvarint    number of bits in the code (1..255)
//	  code    length     ASCII '0' / '1' characters, root to leaf
//	}
//	payload   n bytes    codes packed least-significant bit first
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffpack
