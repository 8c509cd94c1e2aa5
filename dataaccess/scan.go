package dataaccess

import (
	"bytes"

	"github.com/ltnstring/ltnstring-go/tnetstring"
)

// keyLocation describes where a key/value pair sits inside its enclosing
// node's dictionary payload, in absolute root-buffer coordinates.
type keyLocation struct {
	keyOff, keyLen int
	valOff, valLen int
	valTag         tnetstring.Tag
}

// locateKey scans n's dictionary payload left to right for key, parsing
// one key/value pair at a time: no auxiliary index, just a running byte
// offset re-parsed on each step.
func locateKey(n *Node, key []byte) (loc keyLocation, found bool, err error) {
	selfTerm, err := tnetstring.ParseAt(n.buf.data, n.offset)
	if err != nil {
		return keyLocation{}, false, err
	}
	payloadStart := n.offset + (selfTerm.Len() - selfTerm.PayloadLen() - 1)
	payloadEnd := payloadStart + selfTerm.PayloadLen()

	pos := payloadStart
	for pos < payloadEnd {
		keyTerm, err := tnetstring.ParseAt(n.buf.data, pos)
		if err != nil {
			return keyLocation{}, false, err
		}
		valPos := pos + keyTerm.Len()
		valTerm, err := tnetstring.ParseAt(n.buf.data, valPos)
		if err != nil {
			return keyLocation{}, false, err
		}
		if bytes.Equal(keyTerm.Payload(), key) {
			return keyLocation{
				keyOff: pos, keyLen: keyTerm.Len(),
				valOff: valPos, valLen: valTerm.Len(),
				valTag: valTerm.Tag(),
			}, true, nil
		}
		pos = valPos + valTerm.Len()
	}
	return keyLocation{}, false, nil
}

// ancestorChain returns [n, n.parent, ..., root], n's own dictionary
// through the root's, in that order.
func ancestorChain(n *Node) []*Node {
	chain := make([]*Node, 0, 4)
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	return chain
}

// orphanChildAt removes, if present, the direct child of n whose absolute
// offset equals absOff — used when a Set/Remove overwrites the dictionary
// range that child was scoped to.
func orphanChildAt(n *Node, absOff int) {
	for i, c := range n.children {
		if c.offset == absOff {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			return
		}
	}
}
