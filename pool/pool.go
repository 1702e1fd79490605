// Package pool implements the arena behind a memjson document: a
// paged slot store addressed by 1-based ids, a free list threaded
// through slot links, and a deduplicating, reference-counted string
// table. It is the Resources implementation the variant package
// consumes.
package pool

import (
	"fmt"

	"github.com/signadot/memjson/debug"
	"github.com/signadot/memjson/variant"
)

const (
	pageBits = 8
	pageSize = 1 << pageBits
)

// Pool owns the slots and interned strings of one document tree.
//
// Typical lifecycle: allocate values against the pool, encode or
// query them, then Reset and reuse the backing pages. Slot ids stay
// valid across growth; pages are never moved.
//
// It is unsafe to call Pool methods from concurrent goroutines; use
// one Pool per goroutine.
type Pool struct {
	pages     [][]variant.Slot
	numSlots  int
	freeSlots int
	free      variant.SlotID

	strings  map[string]*variant.StringRecord
	strBytes int

	slotLimit int
	strLimit  int
}

// Option configures a Pool at construction.
type Option func(*Pool)

// WithSlotLimit caps the number of slots the pool will ever hold.
// Zero means unbounded.
func WithSlotLimit(n int) Option {
	return func(p *Pool) { p.slotLimit = n }
}

// WithStringLimit caps the accounted bytes of the string table.
// Zero means unbounded.
func WithStringLimit(n int) Option {
	return func(p *Pool) { p.strLimit = n }
}

func New(opts ...Option) *Pool {
	p := &Pool{
		strings: map[string]*variant.StringRecord{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AllocSlot returns a zeroed slot, reusing the free list before
// growing a page. Growth never moves existing slots.
func (p *Pool) AllocSlot() (variant.SlotID, error) {
	if p.free != variant.NilSlot {
		id := p.free
		s := p.Slot(id)
		p.free = s.Next()
		*s = variant.Slot{}
		p.freeSlots--
		return id, nil
	}
	id, err := p.appendSlot()
	if err != nil {
		if debug.Pool() {
			debug.Logf("pool: slot budget exhausted at %d\n", p.numSlots)
		}
		return variant.NilSlot, err
	}
	return id, nil
}

func (p *Pool) appendSlot() (variant.SlotID, error) {
	if p.slotLimit > 0 && p.numSlots >= p.slotLimit {
		return variant.NilSlot, fmt.Errorf("alloc slot: %w", variant.ErrNoMemory)
	}
	page := p.numSlots >> pageBits
	if page == len(p.pages) {
		p.pages = append(p.pages, make([]variant.Slot, pageSize))
	}
	p.numSlots++
	return variant.SlotID(p.numSlots), nil
}

// FreeSlot zeroes the slot and pushes it on the free list. The caller
// must already have released its owned resources.
func (p *Pool) FreeSlot(id variant.SlotID) {
	s := p.Slot(id)
	*s = variant.Slot{}
	s.SetNext(p.free)
	p.free = id
	p.freeSlots++
}

// Slot resolves an id to its record. It panics on ids outside the
// pool: a valid document never produces one, so this is an invariant
// check, not an error path.
func (p *Pool) Slot(id variant.SlotID) *variant.Slot {
	if id <= variant.NilSlot || int(id) > p.numSlots {
		panic(fmt.Sprintf("pool: slot id %d out of range [1,%d]", id, p.numSlots))
	}
	i := int(id) - 1
	return &p.pages[i>>pageBits][i&(pageSize-1)]
}

// SaveString interns s. Equal content shares one record; the record's
// reference count tracks the holders.
func (p *Pool) SaveString(s string) (*variant.StringRecord, error) {
	if rec, ok := p.strings[s]; ok {
		rec.Refs++
		return rec, nil
	}
	cost := variant.StringSize(len(s))
	if p.strLimit > 0 && p.strBytes+cost > p.strLimit {
		if debug.Pool() {
			debug.Logf("pool: string budget exhausted at %d bytes\n", p.strBytes)
		}
		return nil, fmt.Errorf("save string: %w", variant.ErrNoMemory)
	}
	rec := &variant.StringRecord{Data: s, Refs: 1}
	p.strings[s] = rec
	p.strBytes += cost
	return rec, nil
}

// DerefString drops one reference, freeing the record at zero.
func (p *Pool) DerefString(rec *variant.StringRecord) {
	if rec == nil || rec.Refs <= 0 {
		return
	}
	rec.Refs--
	if rec.Refs == 0 {
		delete(p.strings, rec.Data)
		p.strBytes -= variant.StringSize(len(rec.Data))
	}
}

// StringRefs returns the reference count of an interned string, zero
// when the content is not interned. Diagnostic.
func (p *Pool) StringRefs(s string) int {
	rec, ok := p.strings[s]
	if !ok {
		return 0
	}
	return int(rec.Refs)
}

// NumSlots returns the count of live slots.
func (p *Pool) NumSlots() int {
	return p.numSlots - p.freeSlots
}

// MemoryUsage returns the bytes held by the pool: allocated slot
// pages plus the string table.
func (p *Pool) MemoryUsage() int {
	return len(p.pages)*pageSize*variant.SlotSize() + p.strBytes
}

// Reset drops every document the pool backs, keeping slot pages for
// reuse. Values allocated before Reset must not be used afterwards.
func (p *Pool) Reset() {
	p.numSlots = 0
	p.freeSlots = 0
	p.free = variant.NilSlot
	p.strings = map[string]*variant.StringRecord{}
	p.strBytes = 0
}
