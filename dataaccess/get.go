package dataaccess

import "github.com/ltnstring/ltnstring-go/tnetstring"

// Get looks up key in n's dictionary and returns the value term it maps
// to. The returned Term borrows from the root's buffer: it is invalidated
// by the next Set or Remove on any node in the same tree.
func Get(n *Node, key []byte) (tnetstring.Term, error) {
	if n == nil {
		return tnetstring.Term{}, invalidArgument("nil node")
	}
	if key == nil {
		return tnetstring.Term{}, invalidArgument("nil key")
	}
	if err := n.checkValid(); err != nil {
		return tnetstring.Term{}, err
	}
	loc, found, err := locateKey(n, key)
	if err != nil {
		return tnetstring.Term{}, err
	}
	if !found {
		return tnetstring.Term{}, keyNotFound("key %q not found", key)
	}
	return tnetstring.ParseAt(n.buf.data, loc.valOff)
}

// Get is the method form of the package-level Get.
func (n *Node) Get(key []byte) (tnetstring.Term, error) { return Get(n, key) }
