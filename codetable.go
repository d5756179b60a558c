package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol present in an input to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

// GenerateCodes walks the tree depth-first and records the path to every
// leaf, appending 0 for the left branch and 1 for the right.
//
// A tree that is a single Leaf assigns that symbol the one-bit code "0".
//
func GenerateCodes(t *Tree) *CodeTable {
	ct := new(CodeTable)

	if symbol, ok := t.leaf(t.root); ok {
		ct.set(symbol, MakeCode(0))
		return ct
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id   int32
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		if x == 2 {
			stack = stack[:len(stack)-1]
			continue
		}

		child := t.step(top.id, uint(x))
		assert.Assertf(child != noChild, "internal node %d is missing branch %d", top.id, x)
		code := top.code.Append(uint(x))
		if symbol, ok := t.leaf(child); ok {
			ct.set(symbol, code)
		} else {
			stack = append(stack, stackItem{id: child, code: code})
		}
	}
	return ct
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	assert.Assertf(hc.Size != 0, "empty code for symbol 0x%02x", byte(symbol))
	if ct.codes[symbol].Size == 0 {
		ct.count++
	}
	ct.codes[symbol] = hc
	if ct.minSize == 0 || hc.Size < ct.minSize {
		ct.minSize = hc.Size
	}
	if hc.Size > ct.maxSize {
		ct.maxSize = hc.Size
	}
}

// Lookup returns the Code for symbol, if it has one.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Symbols returns the symbols with a code, in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.codes[symbol].Size != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// EncodedBits returns the number of payload bits needed to encode an input
// with the given frequencies.
func (ct *CodeTable) EncodedBits(freq *FrequencyTable) uint64 {
	var sum uint64
	for symbol := 0; symbol < NumSymbols; symbol++ {
		sum += freq[symbol] * uint64(ct.codes[symbol].Size)
	}
	return sum
}

// PrefixFree reports whether no code in the table is a prefix of another.
func (ct *CodeTable) PrefixFree() bool {
	symbols := ct.Symbols()
	for i, a := range symbols {
		for _, b := range symbols[i+1:] {
			hcA, hcB := ct.codes[a], ct.codes[b]
			if hcA.HasPrefix(hcB) || hcB.HasPrefix(hcA) {
				return false
			}
		}
	}
	return true
}

// Trie rebuilds a decoding tree from the stored codes by inserting each code
// as a path.  It fails with ErrMalformedStream if the codes are not
// prefix-free.
func (ct *CodeTable) Trie() (*Tree, error) {
	t := NewTrie()
	for _, symbol := range ct.Symbols() {
		if err := t.Insert(symbol, ct.codes[symbol]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ct.count)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(0x%02x) = %s\n", byte(symbol), ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
