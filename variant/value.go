package variant

import (
	"math"

	"github.com/signadot/memjson/number"
)

// Value is the tagged union at the heart of the document model. The
// tag selects which payload is active: the numeric word for scalars,
// str for linked strings, rec for owned and raw strings, coll for
// arrays and objects.
type Value struct {
	typ  Type
	num  uint64
	str  string
	rec  *StringRecord
	coll Collection
}

func (v *Value) Type() Type {
	return v.typ
}

func (v *Value) IsNull() bool {
	return v.typ == TypeNull
}

func (v *Value) IsBool() bool {
	return v.typ == TypeBool
}

func (v *Value) IsNumber() bool {
	switch v.typ {
	case TypeInt, TypeUint, TypeFloat:
		return true
	}
	return false
}

func (v *Value) IsString() bool {
	return v.typ.IsString()
}

func (v *Value) IsArray() bool {
	return v.typ == TypeArray
}

func (v *Value) IsObject() bool {
	return v.typ == TypeObject
}

func (v *Value) IsCollection() bool {
	return v.typ.IsCollection()
}

// AsBool coerces the value to a boolean. Null is false, numbers are
// compared against zero, and everything else (strings, collections)
// is true.
func (v *Value) AsBool() bool {
	switch v.typ {
	case TypeBool, TypeInt, TypeUint:
		return v.num != 0
	case TypeFloat:
		return math.Float64frombits(v.num) != 0
	case TypeNull:
		return false
	default:
		return true
	}
}

// AsInt coerces the value to a signed integer. String payloads are
// parsed; values that cannot represent an int64 yield zero. The
// coercion is total and never fails.
func (v *Value) AsInt() int64 {
	switch v.typ {
	case TypeBool:
		if v.num != 0 {
			return 1
		}
		return 0
	case TypeInt:
		return int64(v.num)
	case TypeUint:
		if v.num > math.MaxInt64 {
			return 0
		}
		return int64(v.num)
	case TypeFloat:
		f := math.Float64frombits(v.num)
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0
		}
		return int64(f)
	case TypeLinkedString:
		return number.ParseInteger(v.str)
	case TypeOwnedString:
		return number.ParseInteger(v.rec.Data)
	default:
		return 0
	}
}

// AsUint coerces the value to an unsigned integer, with the same
// totality rules as AsInt. Negative values yield zero.
func (v *Value) AsUint() uint64 {
	switch v.typ {
	case TypeBool:
		if v.num != 0 {
			return 1
		}
		return 0
	case TypeUint:
		return v.num
	case TypeInt:
		if int64(v.num) < 0 {
			return 0
		}
		return v.num
	case TypeFloat:
		f := math.Float64frombits(v.num)
		if f < 0 || f >= math.MaxUint64 {
			return 0
		}
		return uint64(f)
	case TypeLinkedString:
		return number.ParseUint(v.str)
	case TypeOwnedString:
		return number.ParseUint(v.rec.Data)
	default:
		return 0
	}
}

// AsFloat coerces the value to a float. Bool becomes 0 or 1, string
// payloads are parsed, non-numeric types yield zero.
func (v *Value) AsFloat() float64 {
	switch v.typ {
	case TypeBool:
		if v.num != 0 {
			return 1
		}
		return 0
	case TypeInt:
		return float64(int64(v.num))
	case TypeUint:
		return float64(v.num)
	case TypeFloat:
		return math.Float64frombits(v.num)
	case TypeLinkedString:
		return number.ParseFloat(v.str)
	case TypeOwnedString:
		return number.ParseFloat(v.rec.Data)
	default:
		return 0
	}
}

// AsString returns the string payload for linked and owned string
// tags. Any other tag reports false, never an error.
func (v *Value) AsString() (string, bool) {
	switch v.typ {
	case TypeLinkedString:
		return v.str, true
	case TypeOwnedString:
		return v.rec.Data, true
	default:
		return "", false
	}
}

// AsRawString returns the pre-serialized payload of a raw string tag.
func (v *Value) AsRawString() (string, bool) {
	if v.typ == TypeRawString {
		return v.rec.Data, true
	}
	return "", false
}

// AsCollection returns the embedded collection for array and object
// tags, nil otherwise.
func (v *Value) AsCollection() *Collection {
	if v.typ.IsCollection() {
		return &v.coll
	}
	return nil
}

func (v *Value) AsArray() *Collection {
	if v.typ == TypeArray {
		return &v.coll
	}
	return nil
}

func (v *Value) AsObject() *Collection {
	if v.typ == TypeObject {
		return &v.coll
	}
	return nil
}

// Release frees everything the value owns: the reference on an owned
// or raw string record, and, for collections, every slot in the chain
// recursively. It is the single destructive walk; every type-changing
// mutator calls it first. Releasing a Null value touches nothing.
func (v *Value) Release(res Resources) {
	if v.rec != nil {
		res.DerefString(v.rec)
		v.rec = nil
	}
	if v.typ.IsCollection() {
		v.coll.Clear(res)
	}
}

// reset clears the payload and installs a tag, without releasing.
// Callers own the prior release.
func (v *Value) reset(t Type) {
	*v = Value{typ: t}
}

func (v *Value) SetNull(res Resources) {
	v.Release(res)
	v.reset(TypeNull)
}

func (v *Value) SetBool(res Resources, b bool) {
	v.Release(res)
	v.reset(TypeBool)
	if b {
		v.num = 1
	}
}

func (v *Value) SetInt(res Resources, i int64) {
	v.Release(res)
	v.reset(TypeInt)
	v.num = uint64(i)
}

func (v *Value) SetUint(res Resources, u uint64) {
	v.Release(res)
	v.reset(TypeUint)
	v.num = u
}

func (v *Value) SetFloat(res Resources, f float64) {
	v.Release(res)
	v.reset(TypeFloat)
	v.num = math.Float64bits(f)
}

// SetLinkedString stores s by reference. The caller guarantees s
// outlives the document.
func (v *Value) SetLinkedString(res Resources, s string) {
	v.Release(res)
	v.reset(TypeLinkedString)
	v.str = s
}

// SetString duplicates s into the pool's string table. On allocation
// failure the value is left Null.
func (v *Value) SetString(res Resources, s string) error {
	v.SetNull(res)
	rec, err := res.SaveString(s)
	if err != nil {
		return err
	}
	v.setOwnedString(rec)
	return nil
}

// SetRawString stores pre-serialized text that encoding will emit
// verbatim. On allocation failure the value is left Null.
func (v *Value) SetRawString(res Resources, s string) error {
	v.SetNull(res)
	rec, err := res.SaveString(s)
	if err != nil {
		return err
	}
	v.reset(TypeRawString)
	v.rec = rec
	return nil
}

func (v *Value) setOwnedString(rec *StringRecord) {
	v.reset(TypeOwnedString)
	v.rec = rec
}

// ToArray releases the value and re-purposes it as an empty array,
// returning the embedded collection.
func (v *Value) ToArray(res Resources) *Collection {
	v.Release(res)
	v.reset(TypeArray)
	return &v.coll
}

// ToObject releases the value and re-purposes it as an empty object.
func (v *Value) ToObject(res Resources) *Collection {
	v.Release(res)
	v.reset(TypeObject)
	return &v.coll
}

// AddElement appends a Null element, promoting a Null value to an
// array. It returns nil with no error if the value is neither Null
// nor an array.
func (v *Value) AddElement(res Resources) (*Value, error) {
	c := v.AsArray()
	if c == nil {
		if !v.IsNull() {
			return nil, nil
		}
		c = v.ToArray(res)
	}
	return c.AddElement(res)
}

// GetElement returns the element at index, or nil when the value is
// not an array or the index is out of range.
func (v *Value) GetElement(res Resources, index int) *Value {
	c := v.AsArray()
	if c == nil {
		return nil
	}
	return c.GetByIndex(res, index)
}

// GetOrAddElement returns the element at index, appending Null
// elements up to and including it when the array is short. A Null
// value is promoted to an array.
func (v *Value) GetOrAddElement(res Resources, index int) (*Value, error) {
	c := v.AsArray()
	if c == nil {
		if !v.IsNull() {
			return nil, nil
		}
		c = v.ToArray(res)
	}
	return c.GetOrAddElement(res, index)
}

// GetMember returns the first member with the given key, or nil.
func (v *Value) GetMember(res Resources, key string) *Value {
	c := v.AsObject()
	if c == nil {
		return nil
	}
	return c.Get(res, key)
}

// GetOrAddMember returns the member with the given key, appending a
// Null member with an owned copy of the key on a miss. A Null value is
// promoted to an object.
func (v *Value) GetOrAddMember(res Resources, key string) (*Value, error) {
	return v.getOrAddMember(res, key, false)
}

// GetOrAddMemberLinked is GetOrAddMember for keys the caller
// guarantees to outlive the document; the key is not duplicated.
func (v *Value) GetOrAddMemberLinked(res Resources, key string) (*Value, error) {
	return v.getOrAddMember(res, key, true)
}

func (v *Value) getOrAddMember(res Resources, key string, linked bool) (*Value, error) {
	c := v.AsObject()
	if c == nil {
		if !v.IsNull() {
			return nil, nil
		}
		c = v.ToObject(res)
	}
	return c.getOrAddMember(res, key, linked)
}

func (v *Value) RemoveElement(res Resources, index int) {
	c := v.AsArray()
	if c == nil {
		return
	}
	c.RemoveByIndex(res, index)
}

func (v *Value) RemoveMember(res Resources, key string) {
	c := v.AsObject()
	if c == nil {
		return
	}
	c.RemoveMember(res, key)
}

// CopyFrom deep-assigns src into v. Scalars are flat-copied,
// collections are copied element by element, string payloads are
// re-saved through v's own pool so the copy does not depend on src's
// lifetime. On allocation failure the destination subtree is valid
// but unspecified.
func (v *Value) CopyFrom(res Resources, src *Value, srcRes Resources) error {
	v.SetNull(res)
	if src == nil {
		return nil
	}
	switch src.typ {
	case TypeArray:
		return v.ToArray(res).copyFrom(res, &src.coll, srcRes, false)
	case TypeObject:
		return v.ToObject(res).copyFrom(res, &src.coll, srcRes, true)
	case TypeOwnedString:
		rec, err := res.SaveString(src.rec.Data)
		if err != nil {
			return err
		}
		v.setOwnedString(rec)
		return nil
	case TypeRawString:
		rec, err := res.SaveString(src.rec.Data)
		if err != nil {
			return err
		}
		v.reset(TypeRawString)
		v.rec = rec
		return nil
	case TypeLinkedString:
		v.reset(TypeLinkedString)
		v.str = src.str
		return nil
	default:
		v.reset(src.typ)
		v.num = src.num
		return nil
	}
}

// Size returns the number of elements or members, zero for
// non-collections. It walks the chain; nothing caches lengths.
func (v *Value) Size(res Resources) int {
	c := v.AsCollection()
	if c == nil {
		return 0
	}
	return c.Size(res)
}

// MemoryUsage returns the pool bytes attributable to the value: the
// interned size of string payloads, the recursive slot and key cost
// of collections, zero for scalars.
func (v *Value) MemoryUsage(res Resources) int {
	switch v.typ {
	case TypeOwnedString, TypeRawString:
		return StringSize(len(v.rec.Data))
	case TypeArray, TypeObject:
		return v.coll.MemoryUsage(res)
	default:
		return 0
	}
}

// Nesting returns 1 plus the deepest child nesting for collections,
// zero otherwise. An empty collection nests 1. Callers use it to
// bound recursion before copying or serializing.
func (v *Value) Nesting(res Resources) int {
	c := v.AsCollection()
	if c == nil {
		return 0
	}
	max := 0
	for id := c.head; id != NilSlot; {
		s := res.Slot(id)
		if n := s.val.Nesting(res); n > max {
			max = n
		}
		id = s.next
	}
	return max + 1
}
