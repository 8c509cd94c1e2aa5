// Package binding declares the seam between this module's core and a host
// language binding. Nothing in this package is implemented here: these are
// the interfaces a future binding (e.g. a Ruby or Python extension) would
// satisfy to plug host values and host key names into dataaccess.Node
// without pulling any encoding-format or aliasing decision into the core.
package binding

import "github.com/ltnstring/ltnstring-go/tnetstring"

// Marshaller converts between host values and tnetstring terms. The core
// never calls a Marshaller itself; dataaccess operates on tnetstring.Term
// values directly and leaves "what does this payload mean to the host" to
// whoever wires a Marshaller in at the edges.
type Marshaller interface {
	// Marshal encodes a host value as an owning tnetstring.Term.
	Marshal(value interface{}) (tnetstring.Term, error)
	// Unmarshal decodes term's payload back into a host value.
	Unmarshal(term tnetstring.Term) (interface{}, error)
}

// KeyAliasMap translates between a logical key name used by host code and
// the byte sequence actually stored in the dictionary. dataaccess.Node
// treats every key as opaque bytes; a KeyAliasMap lets a binding present
// shorter or differently-encoded keys on the wire than it does in its own
// API, without dataaccess knowing the difference.
type KeyAliasMap interface {
	// StorageKey returns the bytes to store for logicalKey.
	StorageKey(logicalKey string) []byte
	// LogicalKey reverses StorageKey, reporting ok == false for an unknown
	// storage key.
	LogicalKey(storageKey []byte) (logicalKey string, ok bool)
}
