package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

type nodeKind byte

const (
	kindPending nodeKind = iota
	kindLeaf
	kindInternal
)

const noChild = int32(-1)

type node struct {
	kind   nodeKind
	symbol Symbol
	weight uint64
	child  [2]int32
}

// Tree is a binary Huffman tree stored as an arena of nodes addressed by
// index.  Leaves carry a Symbol; internal nodes carry two children, the 0
// branch (left) and the 1 branch (right).
//
// A Tree is built either from frequencies by BuildTree, or from stored codes
// by NewTrie and Insert.  A Tree built from a single distinct symbol consists
// of one Leaf and nothing else.
type Tree struct {
	nodes []node
	root  int32
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Leaves are created in ascending Symbol order.  The two lightest nodes are
// repeatedly merged into a new internal node, the first one extracted
// becoming the 0 branch.  Ties between equal weights go to the node created
// earliest.
func BuildTree(freq *FrequencyTable) (*Tree, error) {
	distinct := freq.Distinct()
	if distinct == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{nodes: make([]node, 0, 2*distinct-1)}
	h := weightHeap{list: make([]weightedNode, 0, distinct)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if weight := freq[symbol]; weight != 0 {
			id := t.addNode(node{kind: kindLeaf, symbol: Symbol(symbol), weight: weight, child: [2]int32{noChild, noChild}})
			h.list = append(h.list, weightedNode{id, weight})
		}
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)
		assert.Assertf(a.weight <= math.MaxUint64-b.weight, "weight overflow: %d + %d", a.weight, b.weight)

		sum := a.weight + b.weight
		id := t.addNode(node{kind: kindInternal, weight: sum, child: [2]int32{a.id, b.id}})
		heap.Push(&h, weightedNode{id, sum})
	}

	t.root = heap.Pop(&h).(weightedNode).id
	return t, nil
}

// NewTrie returns an empty Tree ready to receive (Symbol, Code) pairs through
// Insert.
func NewTrie() *Tree {
	t := &Tree{nodes: make([]node, 0, 2*NumSymbols-1)}
	t.root = t.addPending()
	return t
}

// Insert places symbol at the end of the path spelled by hc, creating
// internal nodes along the way.  It fails with ErrMalformedStream if hc is
// empty, or if hc and an already-inserted code are not prefix-free.
func (t *Tree) Insert(symbol Symbol, hc Code) error {
	if hc.Size == 0 {
		return malformedf("empty code for symbol 0x%02x", byte(symbol))
	}

	cur := t.root
	for i := 0; i < int(hc.Size); i++ {
		switch t.nodes[cur].kind {
		case kindLeaf:
			return malformedf("code %s for symbol 0x%02x extends the code of symbol 0x%02x", hc, byte(symbol), byte(t.nodes[cur].symbol))
		case kindPending:
			t.nodes[cur].kind = kindInternal
		}

		bit := hc.Bit(i)
		next := t.nodes[cur].child[bit]
		if next == noChild {
			next = t.addPending()
			t.nodes[cur].child[bit] = next
		}
		cur = next
	}

	switch t.nodes[cur].kind {
	case kindLeaf:
		return malformedf("code %s assigned to both 0x%02x and 0x%02x", hc, byte(t.nodes[cur].symbol), byte(symbol))
	case kindInternal:
		return malformedf("code %s for symbol 0x%02x is a prefix of another code", hc, byte(symbol))
	}
	t.nodes[cur].kind = kindLeaf
	t.nodes[cur].symbol = symbol
	return nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Weight returns the weight of the root, i.e. the total number of symbols the
// tree was built from.  Trees rebuilt from codes have weight 0.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for id, n := range t.nodes {
		switch n.kind {
		case kindLeaf:
			fmt.Fprintf(&buf, "\t%d: leaf 0x%02x weight %d\n", id, byte(n.symbol), n.weight)
		case kindInternal:
			fmt.Fprintf(&buf, "\t%d: node weight %d -> [%d %d]\n", id, n.weight, n.child[0], n.child[1])
		default:
			fmt.Fprintf(&buf, "\t%d: pending\n", id)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) addNode(n node) int32 {
	assert.Assertf(len(t.nodes) < math.MaxInt32, "tree has too many nodes")
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

func (t *Tree) addPending() int32 {
	return t.addNode(node{kind: kindPending, child: [2]int32{noChild, noChild}})
}

// step follows one branch from cur.  It returns noChild if the branch does
// not exist.
func (t *Tree) step(cur int32, bit uint) int32 {
	return t.nodes[cur].child[bit]
}

func (t *Tree) leaf(cur int32) (Symbol, bool) {
	n := &t.nodes[cur]
	return n.symbol, n.kind == kindLeaf
}
