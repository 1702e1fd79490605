package pool

import (
	"fmt"

	"github.com/signadot/memjson/debug"
	"github.com/signadot/memjson/variant"
)

// Adopt transplants a document rooted at root from src into p. Every
// source slot is copied to the same relative position above p's
// current high-water mark, so all slot references shift by a single
// uniform offset, applied with MoveSlots; owned strings are then
// re-saved into p's table. On success root refers entirely to p and
// the caller should Reset src. If the slot budget cannot fit the
// transplant, p is untouched and root still refers to src; a string
// budget failure after the slot copy leaves root valid but with some
// strings still counted against src.
//
// Freed source slots are carried over as dead entries; they are
// reclaimed the next time p is Reset.
func (p *Pool) Adopt(root *variant.Value, src *Pool) error {
	if src == nil {
		return nil
	}
	if src.numSlots > 0 {
		if p.slotLimit > 0 && p.numSlots+src.numSlots > p.slotLimit {
			return fmt.Errorf("adopt %d slots: %w", src.numSlots, variant.ErrNoMemory)
		}
		base := variant.SlotID(p.numSlots)
		for i := 1; i <= src.numSlots; i++ {
			id, err := p.appendSlot()
			if err != nil {
				return err
			}
			*p.Slot(id) = *src.Slot(variant.SlotID(i))
		}
		if debug.Adopt() {
			debug.Logf("pool: adopted %d slots at base %d\n", src.numSlots, base)
		}
		root.MoveSlots(p, base)
	}
	// a string-rooted document has no slots but still owns records
	return variant.RehomeStrings(root, p)
}
