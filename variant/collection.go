package variant

// Collection is the head and tail of a slot chain. Arrays and objects
// share it; object-ness lives in the owning Value's tag. The tail is
// always reachable from the head, and an empty collection has both at
// NilSlot. Insertion order is preserved and meaningful.
type Collection struct {
	head SlotID
	tail SlotID
}

func (c *Collection) Head() SlotID {
	return c.head
}

func (c *Collection) Tail() SlotID {
	return c.tail
}

// Add appends an already-allocated slot at the tail in O(1).
func (c *Collection) Add(res Resources, id SlotID) {
	if c.tail != NilSlot {
		res.Slot(c.tail).next = id
		c.tail = id
	} else {
		c.head = id
		c.tail = id
	}
}

// AddElement allocates and appends a Null element.
func (c *Collection) AddElement(res Resources) (*Value, error) {
	id, err := res.AllocSlot()
	if err != nil {
		return nil, err
	}
	c.Add(res, id)
	return res.Slot(id).Value(), nil
}

// AddMember allocates and appends a Null member with an owned copy of
// key. On failure nothing is linked into the chain.
func (c *Collection) AddMember(res Resources, key string) (*Value, error) {
	rec, err := res.SaveString(key)
	if err != nil {
		return nil, err
	}
	id, err := res.AllocSlot()
	if err != nil {
		res.DerefString(rec)
		return nil, err
	}
	s := res.Slot(id)
	s.setOwnedKey(rec)
	c.Add(res, id)
	return s.Value(), nil
}

// AddMemberLinked appends a Null member whose key is borrowed; the
// caller guarantees it outlives the document.
func (c *Collection) AddMemberLinked(res Resources, key string) (*Value, error) {
	id, err := res.AllocSlot()
	if err != nil {
		return nil, err
	}
	s := res.Slot(id)
	s.setLinkedKey(key)
	c.Add(res, id)
	return s.Value(), nil
}

// GetSlot returns the first slot whose key equals key, comparing
// bytewise. The empty string is an ordinary key.
func (c *Collection) GetSlot(res Resources, key string) SlotID {
	for id := c.head; id != NilSlot; {
		s := res.Slot(id)
		if s.Key() == key {
			return id
		}
		id = s.next
	}
	return NilSlot
}

// Get returns the first member value for key, or nil.
func (c *Collection) Get(res Resources, key string) *Value {
	id := c.GetSlot(res, key)
	if id == NilSlot {
		return nil
	}
	return res.Slot(id).Value()
}

func (c *Collection) slotByIndex(res Resources, index int) SlotID {
	if index < 0 {
		return NilSlot
	}
	id := c.head
	for id != NilSlot && index > 0 {
		id = res.Slot(id).next
		index--
	}
	return id
}

// GetByIndex walks from the head to position index, or returns nil
// when out of range.
func (c *Collection) GetByIndex(res Resources, index int) *Value {
	id := c.slotByIndex(res, index)
	if id == NilSlot {
		return nil
	}
	return res.Slot(id).Value()
}

// GetOrAddElement returns the element at index, appending Null
// elements until the chain is long enough.
func (c *Collection) GetOrAddElement(res Resources, index int) (*Value, error) {
	if index < 0 {
		return nil, nil
	}
	id := c.head
	for id != NilSlot && index > 0 {
		id = res.Slot(id).next
		index--
	}
	if id == NilSlot {
		index++
	}
	for index > 0 {
		var err error
		id, err = res.AllocSlot()
		if err != nil {
			return nil, err
		}
		c.Add(res, id)
		index--
	}
	return res.Slot(id).Value(), nil
}

func (c *Collection) getOrAddMember(res Resources, key string, linked bool) (*Value, error) {
	if id := c.GetSlot(res, key); id != NilSlot {
		return res.Slot(id).Value(), nil
	}
	if linked {
		return c.AddMemberLinked(res, key)
	}
	return c.AddMember(res, key)
}

// GetOrAddMember returns the first member for key, appending a Null
// member with an owned key copy on a miss.
func (c *Collection) GetOrAddMember(res Resources, key string) (*Value, error) {
	return c.getOrAddMember(res, key, false)
}

// getPrevious scans from the head for the predecessor of target.
// Chains keep no back-pointers, so removal pays this O(n) walk.
func (c *Collection) getPrevious(res Resources, target SlotID) SlotID {
	for id := c.head; id != NilSlot; {
		next := res.Slot(id).next
		if next == target {
			return id
		}
		id = next
	}
	return NilSlot
}

// Remove unlinks the slot, releases what it owns, and returns it to
// the pool. Head and tail stay consistent for every position.
func (c *Collection) Remove(res Resources, id SlotID) {
	if id == NilSlot {
		return
	}
	s := res.Slot(id)
	prev := c.getPrevious(res, id)
	next := s.next
	if prev != NilSlot {
		res.Slot(prev).next = next
	} else {
		c.head = next
	}
	if next == NilSlot {
		c.tail = prev
	}
	s.release(res)
	res.FreeSlot(id)
}

func (c *Collection) RemoveByIndex(res Resources, index int) {
	c.Remove(res, c.slotByIndex(res, index))
}

func (c *Collection) RemoveMember(res Resources, key string) {
	c.Remove(res, c.GetSlot(res, key))
}

// Clear releases every slot in the chain. Clearing an empty
// collection touches nothing.
func (c *Collection) Clear(res Resources) {
	for id := c.head; id != NilSlot; {
		s := res.Slot(id)
		next := s.next
		s.release(res)
		res.FreeSlot(id)
		id = next
	}
	c.head = NilSlot
	c.tail = NilSlot
}

// copyFrom appends deep copies of src's slots. With keyed set, keys
// are duplicated into the destination pool, so the copy never borrows
// from src.
func (c *Collection) copyFrom(res Resources, src *Collection, srcRes Resources, keyed bool) error {
	for id := src.head; id != NilSlot; {
		s := srcRes.Slot(id)
		var (
			dv  *Value
			err error
		)
		if keyed {
			dv, err = c.AddMember(res, s.Key())
		} else {
			dv, err = c.AddElement(res)
		}
		if err != nil {
			return err
		}
		if err := dv.CopyFrom(res, s.Value(), srcRes); err != nil {
			return err
		}
		id = s.next
	}
	return nil
}

// Size walks the chain; length is not cached.
func (c *Collection) Size(res Resources) int {
	n := 0
	for id := c.head; id != NilSlot; id = res.Slot(id).next {
		n++
	}
	return n
}

// MemoryUsage sums, over every reachable slot, the fixed slot size,
// the slot value's own usage, and the interned size of an owned key.
func (c *Collection) MemoryUsage(res Resources) int {
	total := 0
	for id := c.head; id != NilSlot; {
		s := res.Slot(id)
		total += SlotSize() + s.val.MemoryUsage(res)
		if s.OwnsKey() {
			total += StringSize(len(s.Key()))
		}
		id = s.next
	}
	return total
}
