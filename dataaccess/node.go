package dataaccess

import (
	"github.com/ltnstring/ltnstring-go/tnetstring"
)

// minRootLength is the shortest possible well-formed dictionary: "0:}".
const minRootLength = 3

// rootBuffer is the single owned byte buffer shared by every node in one
// tree. It carries a trailing NUL sentinel byte that is never part of any
// term; every in-place edit happens strictly before it, so it rides along
// with the rest of the tail whenever replaceRange shifts bytes.
type rootBuffer struct {
	data []byte // logical document bytes; data[len(data)-1] is always 0x00
}

func newRootBuffer(doc []byte) *rootBuffer {
	data := make([]byte, len(doc)+1)
	copy(data, doc)
	return &rootBuffer{data: data}
}

// docLen returns the length of the logical document, excluding the
// trailing sentinel byte.
func (b *rootBuffer) docLen() int { return len(b.data) - 1 }

// Node is a data-access node: either the root of a tree (parent == nil) or
// a child scoped to a nested dictionary term inside the root's buffer.
type Node struct {
	buf      *rootBuffer
	parent   *Node
	offset   int // absolute byte offset of this node's term within buf; 0 for root
	length   int // byte length of this node's dictionary term, including the closing '}'
	children []*Node
	refCount int
}

// Create validates bytes as a single well-formed top-level dictionary term
// and returns a new root node owning a private copy of bytes.
func Create(bytes []byte) (*Node, error) {
	if len(bytes) < minRootLength {
		return nil, invalidTNetstring("document shorter than minimum %q", `"0:}"`)
	}
	term, err := tnetstring.ParseAt(bytes, 0)
	if err != nil {
		return nil, err
	}
	if term.Len() != len(bytes) {
		return nil, invalidTNetstring("trailing bytes after top-level term")
	}
	if term.Tag() != tnetstring.TagDict {
		return nil, unsupportedTopLevel("top-level term has tag %s, want %s", term.Tag(), tnetstring.TagDict)
	}
	buf := newRootBuffer(bytes)
	return &Node{buf: buf, length: buf.docLen()}, nil
}

// CreateNested returns a child node scoped to valueTerm, which must be a
// dictionary term lying within parent's current byte range. If a child
// already covers that exact byte range, the existing *Node is returned
// with its reference count incremented instead of allocating a new one.
func CreateNested(parent *Node, valueTerm tnetstring.Term) (*Node, error) {
	if parent == nil {
		return nil, invalidArgument("nil parent")
	}
	if err := parent.checkValid(); err != nil {
		return nil, err
	}
	if valueTerm.Tag() != tnetstring.TagDict {
		return nil, invalidArgument("term is not a dictionary (tag %s)", valueTerm.Tag())
	}
	localOff, ok := offsetWithin(parent.Bytes(), valueTerm.Bytes())
	if !ok || localOff >= parent.length {
		return nil, invalidArgument("term does not lie within parent's current range")
	}
	absOff := parent.offset + localOff

	for _, c := range parent.children {
		if c.offset == absOff {
			c.refCount++
			return c, nil
		}
	}

	child := &Node{
		buf:    parent.buf,
		parent: parent,
		offset: absOff,
		length: valueTerm.Len(),
	}
	child.refCount = 1
	parent.children = append(parent.children, child)
	return child, nil
}

// Release decrements n's reference count; once it reaches zero, n is
// unlinked from its parent's children list. The root has no reference
// count of its own — it is released by simply dropping every reference
// to it, which then also drops its owned buffer.
func (n *Node) Release() {
	if n.IsRoot() {
		return
	}
	n.refCount--
	if n.refCount > 0 {
		return
	}
	n.parent.removeChild(n)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			return
		}
	}
}

// IsRoot reports whether n is the root of its tree.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Root walks parent pointers up to and returns the root of n's tree.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Offset returns n's byte offset from the start of the root's buffer. It
// is always 0 for the root.
func (n *Node) Offset() int { return n.offset }

// Parent returns n's parent, or nil if n is the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns n's live direct children, in the order they were
// created. The returned slice must not be mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// Bytes returns n's current dictionary term, "<len>:<payload>}".
func (n *Node) Bytes() []byte {
	return n.buf.data[n.offset : n.offset+n.length]
}

// AsTerm returns a Term view of n's current dictionary.
func (n *Node) AsTerm() (tnetstring.Term, error) {
	if err := n.checkValid(); err != nil {
		return tnetstring.Term{}, err
	}
	return tnetstring.ParseAt(n.buf.data, n.offset)
}

// isChildOf reports whether child is still listed among parent's children,
// by pointer identity.
func isChildOf(parent, child *Node) bool {
	for _, c := range parent.children {
		if c == child {
			return true
		}
	}
	return false
}

// IsValid reports whether n can still be safely operated on: walking
// parent pointers from n, every intermediate node must still be listed
// among its parent's children, terminating at a root.
func IsValid(n *Node) bool {
	if n == nil {
		return false
	}
	cur := n
	for cur.parent != nil {
		if !isChildOf(cur.parent, cur) {
			return false
		}
		cur = cur.parent
	}
	return true
}

// checkValid is the standard guard every public Get/Set/Remove/AsTerm call
// runs before touching n.
func (n *Node) checkValid() error {
	if !IsValid(n) {
		return invalidChild("node is no longer reachable from its root")
	}
	return nil
}
