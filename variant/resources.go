package variant

import "errors"

// ErrNoMemory is returned when the pool backing a document cannot
// satisfy a slot or string allocation. Operations that hit it leave
// the tree walkable; only the attempted mutation may be absent.
var ErrNoMemory = errors.New("memjson: out of memory")

// SlotID identifies a Slot within one pool. Ids are 1-based; NilSlot
// terminates chains. An id is only meaningful relative to the pool it
// was allocated from, until MoveSlots rebases it.
type SlotID int32

const NilSlot SlotID = 0

// StringRecord is one interned string. Every value and key storing
// equal content shares a single record; the Resources implementation
// owns Refs and frees the record when it reaches zero.
type StringRecord struct {
	Data string
	Refs int32
}

// Resources is the boundary to the pool that owns slots and interned
// strings. The variant package consumes it and never allocates on its
// own.
type Resources interface {
	// AllocSlot returns a zeroed (null-valued, keyless) slot, or an
	// error wrapping ErrNoMemory.
	AllocSlot() (SlotID, error)

	// FreeSlot returns a slot to the pool. The caller must already
	// have released the slot's owned resources.
	FreeSlot(SlotID)

	// Slot resolves an id. It panics on ids outside the pool; a valid
	// tree never produces one.
	Slot(SlotID) *Slot

	// SaveString interns s, incrementing the count of an existing
	// record with equal content, or returns an error wrapping
	// ErrNoMemory.
	SaveString(s string) (*StringRecord, error)

	// DerefString drops one reference to rec.
	DerefString(rec *StringRecord)
}

// stringRecordOverhead approximates the bookkeeping cost of one
// interned record, mirrored by pool accounting and MemoryUsage.
const stringRecordOverhead = 24

// StringSize returns the accounted size of an interned string of n
// bytes.
func StringSize(n int) int {
	return n + stringRecordOverhead
}
