// Package fieldptr implements the enumerated field-pointer registry: a
// fixed-size table, indexed by role, of weak references to fields owned
// elsewhere. Hot paths read handles by role instead of looking fields up by
// name.
//
// Each role holds a sublist of handles. A role mapped only at index 0 keeps
// its handle inline; mapping any higher index promotes the cell to a slice,
// and from then on slot 0 of that slice is the only value for index 0.
// Sublists only grow until Teardown.
//
// The registry is populated during a sequential setup phase and is safe for
// concurrent reads once writes have stopped. It does no locking.
//
// Precondition violations (role out of range, negative index, teardown of
// an uninitialized registry, lookup before EnsureReady) panic.
package fieldptr
