// Package dataaccess implements the mutation engine on top of package
// tnetstring: a tree of lazy, scoped views (Node) onto a single tnetstring
// dictionary held as one contiguous byte buffer, supporting keyed get, set
// and remove without deserializing the document.
//
// A Node is either the root of a tree — the sole owner of the backing
// buffer — or a child scoped to a nested dictionary term somewhere inside
// that buffer. Children are cached by identity: calling CreateNested twice
// for the same underlying byte range returns the same *Node with its
// reference count bumped. Mutating calls (Set, Remove) may overwrite the
// byte range a cached child covers; when that happens the child is
// orphaned — unlinked from its parent's children list — and every
// subsequent operation on it fails with a KeyNotFound-adjacent InvalidChild
// error, never a silent read of stale bytes.
package dataaccess
