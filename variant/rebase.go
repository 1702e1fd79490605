package variant

// MoveSlots applies a uniform signed offset to every slot reference in
// the tree: collection heads and tails, slot links, and nested
// collections, recursively. Pools call it after transplanting a
// document's slots to a new base. It never allocates and never fails.
//
// The walk offsets each reference before following it, so traversal
// only ever dereferences already-rebased ids through res, which must
// be the pool the slots now live in.
func (v *Value) MoveSlots(res Resources, delta SlotID) {
	if v.typ.IsCollection() {
		v.coll.MoveSlots(res, delta)
	}
}

func (c *Collection) MoveSlots(res Resources, delta SlotID) {
	c.head = moveSlotID(c.head, delta)
	c.tail = moveSlotID(c.tail, delta)
	for id := c.head; id != NilSlot; {
		s := res.Slot(id)
		s.next = moveSlotID(s.next, delta)
		s.val.MoveSlots(res, delta)
		id = s.next
	}
}

// RehomeStrings re-saves every owned string payload and key into res,
// replacing the records held by the tree. Pools call it after a
// transplant so the document no longer references the source pool's
// string table. Traversal uses res, so ids must already be rebased.
func RehomeStrings(v *Value, res Resources) error {
	if v.rec != nil {
		rec, err := res.SaveString(v.rec.Data)
		if err != nil {
			return err
		}
		v.rec = rec
	}
	if !v.typ.IsCollection() {
		return nil
	}
	for id := v.coll.head; id != NilSlot; {
		s := res.Slot(id)
		if s.keyRec != nil {
			rec, err := res.SaveString(s.keyRec.Data)
			if err != nil {
				return err
			}
			s.keyRec = rec
		}
		if err := RehomeStrings(&s.val, res); err != nil {
			return err
		}
		id = s.next
	}
	return nil
}

func moveSlotID(id, delta SlotID) SlotID {
	if id == NilSlot {
		return NilSlot
	}
	nid := id + delta
	if nid <= NilSlot {
		panic("variant: slot id out of range after move")
	}
	return nid
}
