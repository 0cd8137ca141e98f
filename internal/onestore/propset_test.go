package onestore

import (
	"testing"

	"onenotestore/internal/onefmt"
)

func mkPropertyID(rawID uint32, typ PropertyType) PropertyId {
	return PropertyId(rawID | uint32(typ)<<26)
}

func TestParsePropertySetEmpty(t *testing.T) {
	r := onefmt.NewReader([]byte{0, 0})
	ps, err := ParsePropertySet(r)
	if err != nil {
		t.Fatal(err)
	}
	if ps.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ps.Len())
	}
}

func TestParsePropertySetScalarValues(t *testing.T) {
	idU32 := mkPropertyID(0x10, PropertyTypeU32)
	idBool := mkPropertyID(0x11, PropertyTypeBool) | PropertyId(1<<31)

	var wire []byte
	wire = append(wire, 2, 0) // count
	wire = append(wire, byte(idU32), byte(idU32>>8), byte(idU32>>16), byte(idU32>>24))
	wire = append(wire, byte(idBool), byte(idBool>>8), byte(idBool>>16), byte(idBool>>24))
	wire = append(wire, 0x78, 0x56, 0x34, 0x12) // u32 value for first id

	r := onefmt.NewReader(wire)
	ps, err := ParsePropertySet(r)
	if err != nil {
		t.Fatal(err)
	}
	if ps.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ps.Len())
	}
	v, ok := ps.Get(idU32)
	if !ok {
		t.Fatal("missing u32 property")
	}
	if v.U64() != 0x12345678 {
		t.Errorf("U64() = %#x, want %#x", v.U64(), 0x12345678)
	}
	vb, ok := ps.Get(idBool)
	if !ok {
		t.Fatal("missing bool property")
	}
	if !vb.Bool() {
		t.Errorf("Bool() = false, want true")
	}
}

func TestParsePropertySetNestedSet(t *testing.T) {
	innerID := mkPropertyID(0x01, PropertyTypeNoData)
	outerID := mkPropertyID(0x02, PropertyTypePropertySet)

	var inner []byte
	inner = append(inner, 1, 0)
	inner = append(inner, byte(innerID), byte(innerID>>8), byte(innerID>>16), byte(innerID>>24))
	// NoData has no value bytes

	var wire []byte
	wire = append(wire, 1, 0)
	wire = append(wire, byte(outerID), byte(outerID>>8), byte(outerID>>16), byte(outerID>>24))
	wire = append(wire, inner...)

	r := onefmt.NewReader(wire)
	ps, err := ParsePropertySet(r)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := ps.Get(outerID)
	if !ok {
		t.Fatal("missing nested property set")
	}
	nested := v.PropSet()
	if nested.Len() != 1 {
		t.Errorf("nested.Len() = %d, want 1", nested.Len())
	}
}

type fakeMappingTable struct {
	entries map[CompactId]ExGuid
}

func (m fakeMappingTable) Resolve(c CompactId) (ExGuid, error) {
	if g, ok := m.entries[c]; ok {
		return g, nil
	}
	return ExGuid{}, ErrResolutionFailed
}

func TestPropertyValueRefSingleLazyResolution(t *testing.T) {
	id := mkPropertyID(0x03, PropertyTypeObjectId)
	var wire []byte
	wire = append(wire, 1, 0)
	wire = append(wire, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	wire = append(wire, 0x01, 0x00, 0x00, 0x05) // CompactId: n=1, guid_index=5

	r := onefmt.NewReader(wire)
	ps, err := ParsePropertySet(r)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := ps.Get(id)
	if !ok {
		t.Fatal("missing object id property")
	}
	want := ExGuid{Guid: MustParseGuidString("4a3717f8-1c14-49e7-9526-81d942de1741"), N: 9}
	table := fakeMappingTable{entries: map[CompactId]ExGuid{{N: 1, GuidIndex: 5}: want}}
	got, err := v.RefSingle(table)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("RefSingle() = %v, want %v", got, want)
	}
}
