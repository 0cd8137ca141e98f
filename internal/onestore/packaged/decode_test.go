package packaged

import (
	"testing"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

func streamHeader(typ ObjectType, compound bool, length uint32) []byte {
	var c uint32
	if compound {
		c = 1
	}
	v := uint32(typ) | c<<8 | length<<9
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func TestParseStreamObjectHeaderRoundTrip(t *testing.T) {
	wire := streamHeader(ObjectTypeObjectGroupObject, true, 321)
	r := onefmt.NewReader(wire)
	h, err := ParseStreamObjectHeader(r)
	if err != nil {
		t.Fatal(err)
	}
	if h.Type != ObjectTypeObjectGroupObject || !h.Compound || h.Length != 321 {
		t.Errorf("ParseStreamObjectHeader() = %+v", h)
	}
}

func TestParseStreamObjectEndHeaderMismatch(t *testing.T) {
	r := onefmt.NewReader([]byte{byte(ObjectTypeCellManifest)})
	if err := ParseStreamObjectEndHeader(r, ObjectTypeRevisionManifest); err == nil {
		t.Fatal("mismatched end header: want error, got nil")
	}
}

func TestDecodeObjectGroupCountMismatch(t *testing.T) {
	var body []byte
	body = append(body, 1, 0, 0, 0) // declCount = 1
	body = append(body, onestore.EncodeExGuidInline(onestore.ExGuid{Guid: onestore.MustParseGuidString("4a3717f8-1c14-49e7-9526-81d942de1741"), N: 1})...)
	body = append(body, 0, 0, 0, 0) // jcid
	body = append(body, 0, 0, 0, 0) // objCount = 0 (mismatch)

	if _, err := decodeObjectGroup(body); err == nil {
		t.Fatal("declaration/object count mismatch: want error, got nil")
	}
}

func TestDecodeObjectGroupZippedByIndex(t *testing.T) {
	id := onestore.ExGuid{Guid: onestore.MustParseGuidString("4a3717f8-1c14-49e7-9526-81d942de1741"), N: 1}

	var body []byte
	body = append(body, 1, 0, 0, 0) // declCount = 1
	body = append(body, onestore.EncodeExGuidInline(id)...)
	body = append(body, 7, 0, 0, 0) // jcid = 7
	body = append(body, 1, 0, 0, 0) // objCount = 1
	body = append(body, 0, 0)       // empty property set

	objs, err := decodeObjectGroup(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(objs) != 1 {
		t.Fatalf("len(objs) = %d, want 1", len(objs))
	}
	if !objs[0].ID.Equal(id) {
		t.Errorf("objs[0].ID = %v, want %v", objs[0].ID, id)
	}
	if objs[0].Jcid != 7 {
		t.Errorf("objs[0].Jcid = %v, want 7", objs[0].Jcid)
	}
}
