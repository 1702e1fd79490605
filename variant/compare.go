package variant

// Equal reports structural equality of two values, which may live in
// different pools. Numbers compare across int/uint/float tags; linked
// and owned strings compare by content; raw strings only equal other
// raw strings; arrays compare positionally and objects by key.
func Equal(a *Value, ares Resources, b *Value, bres Resources) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch {
	case a.typ == TypeNull || b.typ == TypeNull:
		return a.typ == b.typ
	case a.typ == TypeBool || b.typ == TypeBool:
		return a.typ == b.typ && a.num == b.num
	case a.typ.IsString() || b.typ.IsString():
		as, aok := a.AsString()
		bs, bok := b.AsString()
		return aok && bok && as == bs
	case a.typ == TypeRawString || b.typ == TypeRawString:
		as, aok := a.AsRawString()
		bs, bok := b.AsRawString()
		return aok && bok && as == bs
	case a.typ == TypeArray || b.typ == TypeArray:
		if a.typ != b.typ {
			return false
		}
		return ArrayEquals(&a.coll, ares, &b.coll, bres)
	case a.typ == TypeObject || b.typ == TypeObject:
		if a.typ != b.typ {
			return false
		}
		return ObjectEquals(&a.coll, ares, &b.coll, bres)
	default:
		return numberEquals(a, b)
	}
}

func numberEquals(a, b *Value) bool {
	if a.typ == b.typ {
		return a.num == b.num
	}
	// Mixed integer tags compare exactly; anything involving a float
	// compares as floats.
	if a.typ == TypeFloat || b.typ == TypeFloat {
		return a.AsFloat() == b.AsFloat()
	}
	if a.typ == TypeInt && int64(a.num) < 0 {
		return false
	}
	if b.typ == TypeInt && int64(b.num) < 0 {
		return false
	}
	return a.num == b.num
}

// ArrayEquals reports whether two chains have the same length and
// positionally equal values. Two nil collections are equal; one nil
// is not.
func ArrayEquals(a *Collection, ares Resources, b *Collection, bres Resources) bool {
	if a == nil || b == nil {
		return a == b
	}
	ai, bi := a.head, b.head
	for {
		if ai == NilSlot && bi == NilSlot {
			return true
		}
		if ai == NilSlot || bi == NilSlot {
			return false
		}
		as, bs := ares.Slot(ai), bres.Slot(bi)
		if !Equal(as.Value(), ares, bs.Value(), bres) {
			return false
		}
		ai, bi = as.next, bs.next
	}
}

// ObjectEquals reports order-independent member equality: every key of
// a must exist in b (first match) with an equal value, and the matched
// count must equal b's size. Duplicate keys in a can match one b entry
// twice; key uniqueness is a caller responsibility.
func ObjectEquals(a *Collection, ares Resources, b *Collection, bres Resources) bool {
	if a == nil || b == nil {
		return a == b
	}
	count := 0
	for id := a.head; id != NilSlot; {
		s := ares.Slot(id)
		bv := b.Get(bres, s.Key())
		if bv == nil {
			return false
		}
		if !Equal(s.Value(), ares, bv, bres) {
			return false
		}
		count++
		id = s.next
	}
	return count == b.Size(bres)
}
