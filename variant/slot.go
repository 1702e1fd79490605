package variant

import "unsafe"

// Slot is one link in a Collection chain: a Value, the id of the next
// slot, and, for object members, a key. The key is either linked (a
// caller-owned string that must outlive the document) or owned (an
// interned record the slot holds a reference on).
type Slot struct {
	val    Value
	key    string
	keyRec *StringRecord
	next   SlotID
}

func (s *Slot) Value() *Value {
	return &s.val
}

func (s *Slot) Next() SlotID {
	return s.next
}

// SetNext relinks the slot. Pools also use it to thread free lists.
func (s *Slot) SetNext(id SlotID) {
	s.next = id
}

// Key returns the slot's key, empty for array elements.
func (s *Slot) Key() string {
	if s.keyRec != nil {
		return s.keyRec.Data
	}
	return s.key
}

// OwnsKey reports whether the key was duplicated into the pool.
func (s *Slot) OwnsKey() bool {
	return s.keyRec != nil
}

func (s *Slot) setLinkedKey(k string) {
	s.key = k
	s.keyRec = nil
}

func (s *Slot) setOwnedKey(rec *StringRecord) {
	s.key = ""
	s.keyRec = rec
}

// release frees everything the slot owns: its key reference, if any,
// and its value recursively. The slot itself is returned to the pool
// by the caller.
func (s *Slot) release(res Resources) {
	if s.keyRec != nil {
		res.DerefString(s.keyRec)
		s.keyRec = nil
	}
	s.val.Release(res)
}

// SlotSize returns the fixed per-slot cost used by memory accounting.
func SlotSize() int {
	return int(unsafe.Sizeof(Slot{}))
}
