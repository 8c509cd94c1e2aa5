package dataaccess

import "github.com/ltnstring/ltnstring-go/tnetstring"

// Remove deletes key and its value from n's dictionary. If the value being
// removed is itself a dictionary with a live child node, that child is
// orphaned first. Returns KeyNotFound if key is absent.
func Remove(n *Node, key []byte) error {
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

	loc, found, err := locateKey(n, key)
	if err != nil {
		return err
	}
	if !found {
		return keyNotFound("key %q not found", key)
	}
	if loc.valTag == tnetstring.TagDict {
		orphanChildAt(n, loc.valOff)
	}

	ancestors := ancestorChain(n)
	oldPayloadLen, oldTotalLen, err := captureAncestorLens(root, ancestors)
	if err != nil {
		return err
	}

	pairLen := (loc.valOff + loc.valLen) - loc.keyOff
	replaceRange(root, loc.keyOff, pairLen, nil)
	cum := -pairLen

	propagateAncestorPrefixes(root, ancestors, oldPayloadLen, oldTotalLen, cum)
	return nil
}

// Remove is the method form of the package-level Remove.
func (n *Node) Remove(key []byte) error { return Remove(n, key) }
