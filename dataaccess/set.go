package dataaccess

import (
	"strconv"

	"github.com/ltnstring/ltnstring-go/tnetstring"
)

// Set writes value under key in n's dictionary: an update if key already
// exists, an insert (appended just before the closing '}') otherwise. If
// value aliases bytes inside the root's buffer it is snapshotted into an
// owned copy first, since the shift machinery below may otherwise move or
// overwrite the very bytes it is reading from.
func Set(n *Node, key []byte, value tnetstring.Term) error {
	if n == nil {
		return invalidArgument("nil node")
	}
	if key == nil {
		return invalidArgument("nil key")
	}
	if err := n.checkValid(); err != nil {
		return err
	}
	root := n.Root()

	value, err := snapshotIfAliasing(root, value)
	if err != nil {
		return err
	}

	loc, found, err := locateKey(n, key)
	if err != nil {
		return err
	}

	ancestors := ancestorChain(n)
	oldPayloadLen, oldTotalLen, err := captureAncestorLens(root, ancestors)
	if err != nil {
		return err
	}

	var cum int
	if found {
		if loc.valTag == tnetstring.TagDict {
			orphanChildAt(n, loc.valOff)
		}
		newLen := value.Len()
		cum = newLen - loc.valLen
		if cum == 0 {
			copy(root.buf.data[loc.valOff:loc.valOff+loc.valLen], value.Bytes())
			return nil
		}
		replaceRange(root, loc.valOff, loc.valLen, value.Bytes())
	} else {
		keyTerm, err := tnetstring.Create(key, tnetstring.TagString)
		if err != nil {
			return err
		}
		insertAt := n.offset + n.length - 1 // position of the closing '}'
		combined := make([]byte, 0, keyTerm.Len()+value.Len())
		combined = append(combined, keyTerm.Bytes()...)
		combined = append(combined, value.Bytes()...)
		cum = len(combined)
		replaceRange(root, insertAt, 0, combined)
	}

	propagateAncestorPrefixes(root, ancestors, oldPayloadLen, oldTotalLen, cum)
	return nil
}

// Set is the method form of the package-level Set.
func (n *Node) Set(key []byte, value tnetstring.Term) error { return Set(n, key, value) }

// snapshotIfAliasing copies value into a freshly owned Term when its bytes
// alias root's buffer. A value carved out of a foreign buffer (or already
// owned) is returned unchanged.
func snapshotIfAliasing(root *Node, value tnetstring.Term) (tnetstring.Term, error) {
	if _, aliases := offsetWithin(root.buf.data, value.Bytes()); !aliases {
		return value, nil
	}
	return tnetstring.Create(value.Payload(), value.Tag())
}

// captureAncestorLens snapshots each ancestor's current payload length and
// total term length before a mutation touches the buffer. Both must be
// read while the buffer still matches the node tree's recorded offsets and
// lengths exactly, which is why Set and Remove call this before making any
// byte-level change.
func captureAncestorLens(root *Node, ancestors []*Node) (payloadLen, totalLen []int, err error) {
	payloadLen = make([]int, len(ancestors))
	totalLen = make([]int, len(ancestors))
	for i, a := range ancestors {
		t, err := tnetstring.ParseAt(root.buf.data, a.offset)
		if err != nil {
			return nil, nil, err
		}
		payloadLen[i] = t.PayloadLen()
		totalLen[i] = a.length
	}
	return payloadLen, totalLen, nil
}

// replaceRange overwrites root.buf.data[start:start+oldLen] with newBytes,
// growing or shrinking the buffer as needed, and fixes up the offset of
// every node positioned at or after the end of the old range.
func replaceRange(root *Node, start, oldLen int, newBytes []byte) {
	delta := len(newBytes) - oldLen
	tailStart := start + oldLen
	data := root.buf.data

	switch {
	case delta > 0:
		data = append(data, make([]byte, delta)...)
		copy(data[tailStart+delta:], data[tailStart:len(data)-delta])
	case delta < 0:
		copy(data[tailStart+delta:], data[tailStart:])
		data = data[:len(data)+delta]
	}
	copy(data[start:start+len(newBytes)], newBytes)
	root.buf.data = data

	if delta != 0 {
		shiftOffsets(root, tailStart, delta)
	}
}

// propagateAncestorPrefixes walks ancestors from innermost (the node whose
// payload just changed by cum bytes) to the root, rewriting each level's
// length prefix and length field. A level whose payload length crosses a
// decimal-digit boundary triggers its own byte shift, whose net size
// becomes the cum fed to the next ancestor out.
func propagateAncestorPrefixes(root *Node, ancestors []*Node, oldPayloadLen, oldTotalLen []int, cum int) {
	for i, a := range ancestors {
		newPayloadLen := oldPayloadLen[i] + cum
		oldDigits := tnetstring.DigitCount(oldPayloadLen[i])
		newDigits := tnetstring.DigitCount(newPayloadLen)
		a.length = newDigits + 1 + newPayloadLen + 1
		newPrefix := []byte(strconv.Itoa(newPayloadLen))

		if newDigits != oldDigits {
			replaceRange(root, a.offset, oldDigits, newPrefix)
		} else {
			copy(root.buf.data[a.offset:a.offset+oldDigits], newPrefix)
		}
		cum = a.length - oldTotalLen[i]
	}
}
