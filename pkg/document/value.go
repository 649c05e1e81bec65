package document

// Kind identifies the shape of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a node of a nested document.
// The zero Value is null.
type Value struct {
	// Scalar holds the literal text of a scalar node.
	Scalar string

	// Items holds the elements of a sequence node.
	Items []Value

	// Fields holds the entries of a mapping node in document order.
	Fields []Field

	Kind Kind
}

// Field is one key/value entry of a mapping.
type Field struct {
	Key   string
	Value Value
}

// Null returns a null value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Scalar returns a scalar value holding s.
func Scalar(s string) Value {
	return Value{Kind: KindScalar, Scalar: s}
}

// Sequence returns a sequence of the given items.
func Sequence(items ...Value) Value {
	return Value{Kind: KindSequence, Items: items}
}

// Mapping returns a mapping with the given fields.
func Mapping(fields ...Field) Value {
	return Value{Kind: KindMapping, Fields: fields}
}

// F is shorthand for building a mapping field.
func F(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

// Get returns the value stored under key in a mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindMapping {
		return Value{}, false
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Lookup follows a path of mapping keys.
func (v Value) Lookup(path ...string) (Value, bool) {
	cur := v
	for _, key := range path {
		next, ok := cur.Get(key)
		if !ok {
			return Value{}, false
		}
		cur = next
	}
	return cur, true
}

// Len returns the number of fields or items of a container value.
func (v Value) Len() int {
	switch v.Kind {
	case KindMapping:
		return len(v.Fields)
	case KindSequence:
		return len(v.Items)
	default:
		return 0
	}
}

// Equal reports whether two values have the same structure and content.
// Field order is significant.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindScalar:
		return v.Scalar == other.Scalar
	case KindSequence:
		if len(v.Items) != len(other.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.Fields) != len(other.Fields) {
			return false
		}
		for i := range v.Fields {
			if v.Fields[i].Key != other.Fields[i].Key || !v.Fields[i].Value.Equal(other.Fields[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
