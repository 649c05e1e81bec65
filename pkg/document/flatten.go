package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator joins path segments in flat keys.
const Separator = "."

// Flatten converts a nested document into a FlatMap.
// Only scalar leaves produce entries; nulls and empty containers produce none.
func Flatten(v Value) (*FlatMap, error) {
	m := NewFlatMap()

	switch v.Kind {
	case KindNull:
		return m, nil
	case KindScalar:
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, v.Kind)
	}

	if err := flattenInto(m, v, nil); err != nil {
		return nil, err
	}
	return m, nil
}

func flattenInto(m *FlatMap, v Value, path []string) error {
	if len(path) > MaxDepth {
		return ErrTooDeep
	}

	switch v.Kind {
	case KindScalar:
		key := strings.Join(path, Separator)
		if m.Has(key) {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		m.Set(key, v.Scalar)

	case KindMapping:
		for _, f := range v.Fields {
			if err := flattenInto(m, f.Value, append(path, f.Key)); err != nil {
				return err
			}
		}

	case KindSequence:
		for i, item := range v.Items {
			if err := flattenInto(m, item, append(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	}

	return nil
}

// Unflatten rebuilds a nested mapping from dotted keys.
// Keys keep the order in which they first appear in m.
func Unflatten(m *FlatMap) (Value, error) {
	root := newBranch()

	for key, value := range m.All() {
		segments := strings.Split(key, Separator)
		if len(segments) > MaxDepth {
			return Value{}, fmt.Errorf("%w: %q", ErrTooDeep, key)
		}
		if err := root.insert(segments, value); err != nil {
			return Value{}, fmt.Errorf("%w: %q", err, key)
		}
	}

	return root.value(), nil
}

// branch is an intermediate mapping under construction.
type branch struct {
	children map[string]*branch
	leaf     *string
	order    []string
}

func newBranch() *branch {
	return &branch{children: make(map[string]*branch)}
}

func (b *branch) insert(segments []string, value string) error {
	cur := b
	for i, seg := range segments {
		child, exists := cur.children[seg]
		last := i == len(segments)-1

		if last {
			if exists {
				return ErrKeyConflict
			}
			cur.children[seg] = &branch{leaf: &value}
			cur.order = append(cur.order, seg)
			return nil
		}

		if !exists {
			child = newBranch()
			cur.children[seg] = child
			cur.order = append(cur.order, seg)
		} else if child.leaf != nil {
			return ErrKeyConflict
		}
		cur = child
	}
	return nil
}

func (b *branch) value() Value {
	if b.leaf != nil {
		return Scalar(*b.leaf)
	}
	fields := make([]Field, 0, len(b.order))
	for _, key := range b.order {
		fields = append(fields, Field{Key: key, Value: b.children[key].value()})
	}
	return Mapping(fields...)
}
