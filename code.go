package huffpack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to one of its leaves.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit.
	Bits [codeWords]uint64
}

// MakeCode returns the one-bit Code holding bit.
func MakeCode(bit uint) Code {
	return Code{}.Append(bit)
}

// ParseCode is a convenience function that constructs a Code from a string of
// '0' and '1' characters, first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is %d bits long, max %d", str, len(str), MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("code %q: invalid character %q at index %d", str, str[i], i)
		}
	}
	return hc, nil
}

// MustParseCode is like ParseCode but panics on error.
func MustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

// Bit returns the i'th bit of this Code, 0 or 1.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.Bits[i/64]>>(uint(i)%64)) & 1
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code already holds %d bits", hc.Size)
	i := uint(hc.Size)
	if bit != 0 {
		hc.Bits[i/64] |= 1 << (i % 64)
	}
	hc.Size++
	return hc
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Digits returns the code as a string of '0' and '1' characters.
func (hc Code) Digits() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
