package onestore

import (
	"fmt"

	"onenotestore/internal/onefmt"
)

// PropertySet is an ordered PropertyId -> PropertyValue mapping; insertion
// order is preserved because some consumers read properties positionally
// rather than by id.
type PropertySet struct {
	ids    []PropertyId
	values []PropertyValue
}

// Get returns the value stored for id, if present.
func (s PropertySet) Get(id PropertyId) (PropertyValue, bool) {
	for i, pid := range s.ids {
		if pid == id {
			return s.values[i], true
		}
	}
	return PropertyValue{}, false
}

// GetByRawID looks up a value by its 26-bit semantic id, ignoring the type
// tag and inline-bool bit — useful when the caller knows the semantic id
// but not which PropertyType the file used for it.
func (s PropertySet) GetByRawID(rawID uint32) (PropertyValue, PropertyId, bool) {
	for i, pid := range s.ids {
		if pid.Id() == rawID {
			return s.values[i], pid, true
		}
	}
	return PropertyValue{}, 0, false
}

// Index returns the zero-based position id was declared at, if present.
func (s PropertySet) Index(id PropertyId) (int, bool) {
	for i, pid := range s.ids {
		if pid == id {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of properties in the set.
func (s PropertySet) Len() int { return len(s.ids) }

// Values iterates the set's values in declaration order.
func (s PropertySet) Values() []PropertyValue { return s.values }

// IDs iterates the set's PropertyIds in declaration order.
func (s PropertySet) IDs() []PropertyId { return s.ids }

// ParsePropertySet decodes a property table per MS-ONESTORE 2.6.7: a u16
// count, that many PropertyIds, then that many values whose shapes are
// determined by each id's type tag.
func ParsePropertySet(r *onefmt.ByteReader) (PropertySet, error) {
	count, err := r.ReadU16()
	if err != nil {
		return PropertySet{}, fmt.Errorf("onestore: property set: count: %w", err)
	}

	ids := make([]PropertyId, count)
	for i := range ids {
		v, err := r.ReadU32()
		if err != nil {
			return PropertySet{}, fmt.Errorf("onestore: property set: id[%d]: %w", i, err)
		}
		ids[i] = PropertyId(v)
	}

	values := make([]PropertyValue, count)
	for i, id := range ids {
		v, err := parsePropertyValue(r, id)
		if err != nil {
			return PropertySet{}, fmt.Errorf("onestore: property set: value[%d] (id %#x): %w", i, id.Id(), err)
		}
		values[i] = v
	}

	return PropertySet{ids: ids, values: values}, nil
}

func parsePropertyValue(r *onefmt.ByteReader, id PropertyId) (PropertyValue, error) {
	switch id.Type() {
	case PropertyTypeNoData:
		return PropertyValue{typ: PropertyTypeNoData}, nil

	case PropertyTypeBool:
		return newScalarBool(id.InlineBool()), nil

	case PropertyTypeU8:
		v, err := r.ReadU8()
		if err != nil {
			return PropertyValue{}, err
		}
		return newScalarU64(PropertyTypeU8, uint64(v)), nil

	case PropertyTypeU16:
		v, err := r.ReadU16()
		if err != nil {
			return PropertyValue{}, err
		}
		return newScalarU64(PropertyTypeU16, uint64(v)), nil

	case PropertyTypeU32:
		v, err := r.ReadU32()
		if err != nil {
			return PropertyValue{}, err
		}
		return newScalarU64(PropertyTypeU32, uint64(v)), nil

	case PropertyTypeU64:
		v, err := r.ReadU64()
		if err != nil {
			return PropertyValue{}, err
		}
		return newScalarU64(PropertyTypeU64, v), nil

	case PropertyTypeF32:
		v, err := r.ReadF32()
		if err != nil {
			return PropertyValue{}, err
		}
		return newScalarF32(v), nil

	case PropertyTypeBytes:
		n, err := r.ReadU32()
		if err != nil {
			return PropertyValue{}, err
		}
		b, err := r.ReadBytes(int(n))
		if err != nil {
			return PropertyValue{}, err
		}
		return newBytes(b), nil

	case PropertyTypeObjectId, PropertyTypeObjectSpaceId, PropertyTypeContextId:
		c, err := ParseCompactId(r)
		if err != nil {
			return PropertyValue{}, err
		}
		return newRefs(id.Type(), []CompactId{c}), nil

	case PropertyTypeObjectIds, PropertyTypeObjectSpaceIds, PropertyTypeContextIds:
		n, err := r.ReadU32()
		if err != nil {
			return PropertyValue{}, err
		}
		refs := make([]CompactId, n)
		for i := range refs {
			c, err := ParseCompactId(r)
			if err != nil {
				return PropertyValue{}, fmt.Errorf("ref[%d]: %w", i, err)
			}
			refs[i] = c
		}
		return newRefs(id.Type(), refs), nil

	case PropertyTypePropertySet:
		ps, err := ParsePropertySet(r)
		if err != nil {
			return PropertyValue{}, err
		}
		return newPropertySet(ps), nil

	case PropertyTypeArrayOfPropertySets:
		n, err := r.ReadU32()
		if err != nil {
			return PropertyValue{}, err
		}
		sets := make([]PropertySet, n)
		for i := range sets {
			ps, err := ParsePropertySet(r)
			if err != nil {
				return PropertyValue{}, fmt.Errorf("set[%d]: %w", i, err)
			}
			sets[i] = ps
		}
		return newArrayOfPropertySets(sets), nil

	default:
		return PropertyValue{}, fmt.Errorf("%w: property type tag %d", ErrMalformedData, id.Type())
	}
}
