package dataaccess

import "unsafe"

// offsetWithin reports the byte offset of sub within buf, when sub is a
// sub-slice of the same backing array as buf. It returns ok == false if
// sub's start lies before buf's start or past buf's end, or if either
// slice is empty.
//
// This is the one place the module reaches for unsafe: CreateNested's
// identity rule turns on whether a term's starting byte is the same byte
// as one already living inside a parent's range, a pointer-identity
// question, and package tnetstring's Term deliberately carries no
// back-reference to the buffer it was parsed from. Pointer subtraction is
// the narrowest way to answer it; the result is immediately bounds-checked
// against buf's length, so a mismatched or foreign slice is rejected
// rather than producing a wild offset.
func offsetWithin(buf, sub []byte) (int, bool) {
	if len(buf) == 0 || len(sub) == 0 {
		return 0, false
	}
	bufStart := uintptr(unsafe.Pointer(&buf[0]))
	subStart := uintptr(unsafe.Pointer(&sub[0]))
	if subStart < bufStart {
		return 0, false
	}
	off := subStart - bufStart
	if off > uintptr(len(buf)) {
		return 0, false
	}
	return int(off), true
}

// shiftOffsets walks every live node reachable from root and adds delta to
// the offset of every node positioned at or after threshold (an absolute
// byte position in root's buffer, in the coordinates that held just before
// the shift that prompted this call). It must run once per byte-range
// shift, before any further ancestor prefix is rewritten, so that every
// node's offset is correct again before the next shift is computed from it.
func shiftOffsets(root *Node, threshold, delta int) {
	if delta == 0 {
		return
	}
	for _, c := range root.children {
		shiftNode(c, threshold, delta)
	}
}

func shiftNode(n *Node, threshold, delta int) {
	if n.offset >= threshold {
		n.offset += delta
	}
	for _, c := range n.children {
		shiftNode(c, threshold, delta)
	}
}
