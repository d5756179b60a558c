package huffpack

// Symbol represents one byte of input.  Bytes are opaque 8-bit units; no
// character encoding is ever applied.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxCodeSize is the longest code any tree over NumSymbols leaves can need.
const MaxCodeSize = NumSymbols - 1
