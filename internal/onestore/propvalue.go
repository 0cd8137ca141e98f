package onestore

import "fmt"

// PropertyId packs a 26-bit semantic id, a 5-bit type tag, and (only
// meaningful when the type tag is PropertyTypeBool) a 1-bit inline boolean
// value into one 32-bit word (MS-ONESTORE 2.6.7).
type PropertyId uint32

// PropertyType is the 5-bit type tag carried in a PropertyId's high bits;
// it fully determines the shape of the PropertyValue that follows.
type PropertyType uint8

const (
	PropertyTypeNoData PropertyType = iota
	PropertyTypeBool
	PropertyTypeU8
	PropertyTypeU16
	PropertyTypeU32
	PropertyTypeU64
	PropertyTypeF32
	PropertyTypeBytes // FourBytesOfLengthFollowedByData
	PropertyTypeObjectId
	PropertyTypeObjectIds
	PropertyTypeObjectSpaceId
	PropertyTypeObjectSpaceIds
	PropertyTypeContextId
	PropertyTypeContextIds
	PropertyTypePropertySet
	PropertyTypeArrayOfPropertySets
)

// Id returns the 26-bit semantic identifier.
func (p PropertyId) Id() uint32 { return uint32(p) & 0x03FFFFFF }

// Type returns the 5-bit type tag.
func (p PropertyId) Type() PropertyType { return PropertyType((uint32(p) >> 26) & 0x1F) }

// InlineBool returns the bit-31 inline value used only by PropertyTypeBool.
func (p PropertyId) InlineBool() bool { return uint32(p)>>31&1 == 1 }

// PropertyValue is a closed tagged union: the PropertyType on the owning
// PropertyId fully determines which field is meaningful. Exactly one
// constructor below should be used per type.
type PropertyValue struct {
	typ PropertyType

	boolValue bool
	u64Value  uint64
	f32Value  float32
	bytes     []byte

	// refs holds undecoded CompactIds for the three reference-bearing
	// types. Resolution against a MappingTable happens at consumption
	// time, not here, per the lazy-resolution requirement: resolving here
	// would force every property set's references to be valid even when
	// the consumer never looks at them.
	refs     []CompactId
	propSets []PropertySet
}

func newScalarBool(v bool) PropertyValue { return PropertyValue{typ: PropertyTypeBool, boolValue: v} }
func newScalarU64(t PropertyType, v uint64) PropertyValue {
	return PropertyValue{typ: t, u64Value: v}
}
func newScalarF32(v float32) PropertyValue { return PropertyValue{typ: PropertyTypeF32, f32Value: v} }
func newBytes(b []byte) PropertyValue      { return PropertyValue{typ: PropertyTypeBytes, bytes: b} }
func newRefs(t PropertyType, ids []CompactId) PropertyValue {
	return PropertyValue{typ: t, refs: ids}
}
func newPropertySet(ps PropertySet) PropertyValue {
	return PropertyValue{typ: PropertyTypePropertySet, propSets: []PropertySet{ps}}
}
func newArrayOfPropertySets(sets []PropertySet) PropertyValue {
	return PropertyValue{typ: PropertyTypeArrayOfPropertySets, propSets: sets}
}

// Type reports the value's tag.
func (v PropertyValue) Type() PropertyType { return v.typ }

// Bool returns the decoded boolean, valid only when Type() == PropertyTypeBool.
func (v PropertyValue) Bool() bool { return v.boolValue }

// U8/U16/U32/U64 return the decoded integer regardless of the original
// width, widened to uint64.
func (v PropertyValue) U64() uint64 { return v.u64Value }

// F32 returns the decoded float, valid only when Type() == PropertyTypeF32.
func (v PropertyValue) F32() float32 { return v.f32Value }

// Bytes returns the decoded byte payload for PropertyTypeBytes.
func (v PropertyValue) Bytes() []byte { return v.bytes }

// RefSingle resolves the single reference carried by a scalar reference
// value (ObjectId/ObjectSpaceId/ContextId) against table, returning the
// zero ExGuid if the value carries no reference.
func (v PropertyValue) RefSingle(table MappingTable) (ExGuid, error) {
	if len(v.refs) == 0 {
		return NilExGuid, nil
	}
	return table.Resolve(v.refs[0])
}

// RefMany resolves the reference vector carried by a vector reference
// value (ObjectIds/ObjectSpaceIds/ContextIds) against table, in order.
func (v PropertyValue) RefMany(table MappingTable) ([]ExGuid, error) {
	out := make([]ExGuid, 0, len(v.refs))
	for i, c := range v.refs {
		id, err := table.Resolve(c)
		if err != nil {
			return nil, fmt.Errorf("onestore: property value: ref[%d]: %w", i, err)
		}
		out = append(out, id)
	}
	return out, nil
}

// RawRefs returns the undecoded CompactIds backing a reference value,
// without resolving them.
func (v PropertyValue) RawRefs() []CompactId { return v.refs }

// PropSet returns the nested property set carried by PropertyTypePropertySet.
func (v PropertyValue) PropSet() PropertySet {
	if len(v.propSets) == 0 {
		return PropertySet{}
	}
	return v.propSets[0]
}

// PropSets returns the vector of nested property sets carried by
// PropertyTypeArrayOfPropertySets.
func (v PropertyValue) PropSets() []PropertySet { return v.propSets }

func (v PropertyValue) String() string {
	return fmt.Sprintf("PropertyValue{type=%d}", v.typ)
}
