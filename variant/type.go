package variant

// Type is the closed set of value tags. Every dispatch site switches
// exhaustively over it; adding a tag means updating each of them.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeUint
	TypeFloat
	TypeLinkedString
	TypeOwnedString
	TypeRawString
	TypeArray
	TypeObject
)

func Types() []Type {
	return []Type{
		TypeNull,
		TypeBool,
		TypeInt,
		TypeUint,
		TypeFloat,
		TypeLinkedString,
		TypeOwnedString,
		TypeRawString,
		TypeArray,
		TypeObject,
	}
}

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeUint:
		return "uint"
	case TypeFloat:
		return "float"
	case TypeLinkedString:
		return "linked-string"
	case TypeOwnedString:
		return "owned-string"
	case TypeRawString:
		return "raw-string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}
	return "invalid"
}

// IsString reports whether the tag carries a plain string payload.
// Raw strings are excluded: they hold pre-serialized text.
func (t Type) IsString() bool {
	return t == TypeLinkedString || t == TypeOwnedString
}

// IsCollection reports whether the tag carries a slot chain.
func (t Type) IsCollection() bool {
	return t == TypeArray || t == TypeObject
}
