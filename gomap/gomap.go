// Package gomap converts between pooled documents and plain Go
// values (nil, bool, numbers, strings, []any, map[string]any).
package gomap

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/memjson/variant"
)

// Export converts v into a Go value. Objects become map[string]any,
// which loses insertion order and collapses duplicate keys to the
// last occurrence; arrays become []any. Raw strings export as their
// serialized text.
func Export(v *variant.Value, res variant.Resources) any {
	if v == nil {
		return nil
	}
	switch v.Type() {
	case variant.TypeNull:
		return nil
	case variant.TypeBool:
		return v.AsBool()
	case variant.TypeInt:
		return v.AsInt()
	case variant.TypeUint:
		return v.AsUint()
	case variant.TypeFloat:
		return v.AsFloat()
	case variant.TypeLinkedString, variant.TypeOwnedString:
		s, _ := v.AsString()
		return s
	case variant.TypeRawString:
		s, _ := v.AsRawString()
		return s
	case variant.TypeArray:
		c := v.AsArray()
		res2 := make([]any, 0, c.Size(res))
		for id := c.Head(); id != variant.NilSlot; {
			s := res.Slot(id)
			res2 = append(res2, Export(s.Value(), res))
			id = s.Next()
		}
		return res2
	case variant.TypeObject:
		c := v.AsObject()
		m := make(map[string]any, c.Size(res))
		for id := c.Head(); id != variant.NilSlot; {
			s := res.Slot(id)
			m[s.Key()] = Export(s.Value(), res)
			id = s.Next()
		}
		return m
	}
	return nil
}

// Import deep-assigns a Go value into dst, releasing whatever dst
// held. Map keys are written in sorted order for determinism.
func Import(res variant.Resources, dst *variant.Value, src any) error {
	switch x := src.(type) {
	case nil:
		dst.SetNull(res)
		return nil
	case bool:
		dst.SetBool(res, x)
		return nil
	case int:
		dst.SetInt(res, int64(x))
		return nil
	case int32:
		dst.SetInt(res, int64(x))
		return nil
	case int64:
		dst.SetInt(res, x)
		return nil
	case uint:
		dst.SetUint(res, uint64(x))
		return nil
	case uint64:
		dst.SetUint(res, x)
		return nil
	case float32:
		dst.SetFloat(res, float64(x))
		return nil
	case float64:
		dst.SetFloat(res, x)
		return nil
	case string:
		return dst.SetString(res, x)
	case []any:
		arr := dst.ToArray(res)
		for _, el := range x {
			ev, err := arr.AddElement(res)
			if err != nil {
				return err
			}
			if err := Import(res, ev, el); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		obj := dst.ToObject(res)
		for _, key := range slices.Sorted(maps.Keys(x)) {
			mv, err := obj.AddMember(res, key)
			if err != nil {
				return err
			}
			if err := Import(res, mv, x[key]); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		obj := dst.ToObject(res)
		keys := make([]string, 0, len(x))
		vals := make(map[string]any, len(x))
		for k, v := range x {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			vals[ks] = v
		}
		slices.Sort(keys)
		for _, key := range keys {
			mv, err := obj.AddMember(res, key)
			if err != nil {
				return err
			}
			if err := Import(res, mv, vals[key]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("gomap: unsupported type %T", src)
	}
}
