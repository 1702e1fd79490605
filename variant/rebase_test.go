package variant_test

import (
	"testing"

	"github.com/signadot/memjson/variant"
)

// flatRes is a minimal Resources over one slice, letting tests copy
// slot ranges around and rebase against both the old and new bases.
type flatRes struct {
	slots []variant.Slot
	n     int
}

func newFlatRes(size int) *flatRes {
	return &flatRes{slots: make([]variant.Slot, size)}
}

func (r *flatRes) AllocSlot() (variant.SlotID, error) {
	r.n++
	return variant.SlotID(r.n), nil
}

func (r *flatRes) FreeSlot(variant.SlotID) {}

func (r *flatRes) Slot(id variant.SlotID) *variant.Slot {
	return &r.slots[int(id)-1]
}

func (r *flatRes) SaveString(s string) (*variant.StringRecord, error) {
	return &variant.StringRecord{Data: s, Refs: 1}, nil
}

func (r *flatRes) DerefString(*variant.StringRecord) {}

func collectIDs(res variant.Resources, c *variant.Collection) []variant.SlotID {
	var ids []variant.SlotID
	for id := c.Head(); id != variant.NilSlot; id = res.Slot(id).Next() {
		ids = append(ids, id)
		if sub := res.Slot(id).Value().AsCollection(); sub != nil {
			ids = append(ids, collectIDs(res, sub)...)
		}
	}
	return ids
}

func TestMoveSlotsReversible(t *testing.T) {
	const delta = variant.SlotID(10)
	res := newFlatRes(64)

	var root variant.Value
	obj := root.ToObject(res)
	mv, err := obj.AddMemberLinked(res, "k")
	if err != nil {
		t.Fatal(err)
	}
	arr := mv.ToArray(res)
	for _, n := range []int64{1, 2} {
		ev, err := arr.AddElement(res)
		if err != nil {
			t.Fatal(err)
		}
		ev.SetInt(res, n)
	}
	before := collectIDs(res, root.AsCollection())

	// emulate a transplant: copy the occupied range up by delta, then
	// rebase into it
	for i := res.n; i >= 1; i-- {
		res.slots[int(delta)+i-1] = res.slots[i-1]
	}
	root.MoveSlots(res, delta)
	shifted := collectIDs(res, root.AsCollection())
	if len(shifted) != len(before) {
		t.Fatalf("shifted tree has %d slots, want %d", len(shifted), len(before))
	}
	for i := range shifted {
		if shifted[i] != before[i]+delta {
			t.Fatalf("id %d: got %d, want %d", i, shifted[i], before[i]+delta)
		}
	}
	if got := root.GetMember(res, "k").GetElement(res, 1).AsInt(); got != 2 {
		t.Fatalf("shifted tree content: got %d, want 2", got)
	}

	// moving back down restores the original ids
	for i := 1; i <= res.n; i++ {
		res.slots[i-1] = res.slots[int(delta)+i-1]
	}
	root.MoveSlots(res, -delta)
	restored := collectIDs(res, root.AsCollection())
	for i := range restored {
		if restored[i] != before[i] {
			t.Fatalf("id %d not restored: got %d, want %d", i, restored[i], before[i])
		}
	}
}

func TestMoveSlotsBounds(t *testing.T) {
	res := newFlatRes(8)
	var root variant.Value
	arr := root.ToArray(res)
	if _, err := arr.AddElement(res); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("offsetting an id below the valid range must panic")
		}
	}()
	root.MoveSlots(res, -5)
}
