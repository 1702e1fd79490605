// Package variant implements the tagged-union value model of a pooled
// JSON document.
//
// # Overview
//
// A document is a tree of Values. Each Value is a fixed-shape record
// holding a closed type tag and one active payload: a scalar word, a
// string, or an embedded Collection of slots. Arrays and objects share
// the Collection representation, a singly linked chain of Slots; a
// Slot in an object additionally carries a key.
//
// Slots live in an external pool and are referenced by SlotID handles,
// never by pointer. All operations that traverse or mutate a tree take
// a Resources value, the boundary to the pool that owns the slots and
// the interned string records. Growth of the pool never invalidates
// ids; transplanting a tree between pools shifts every id by a uniform
// offset, applied by MoveSlots.
//
// # Ownership
//
// Every structure has exactly one owner: a Collection owns its Slots,
// a Slot owns its Value and, when the key was duplicated into the
// pool, its key record. The single shared-ownership mechanism is the
// reference count on interned StringRecords. Release is the one place
// that walks a value destructively; every type-changing mutator calls
// it before installing the new payload.
//
// The package assumes a single mutator. Nothing here locks.
package variant
