package legacy

import (
	"testing"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

func packFileNodeHeader(id uint16, size uint32, stpFormat, cbFormat, baseType uint8) uint32 {
	return uint32(id&0x3FF) |
		(size&0x1FFF)<<10 |
		uint32(stpFormat&0x3)<<23 |
		uint32(cbFormat&0x3)<<25 |
		uint32(baseType&0xF)<<27
}

func TestParseFileNodeListFragmentInlineNode(t *testing.T) {
	payload := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	header := packFileNodeHeader(5, uint32(len(payload)), 0, 0, BaseTypeDataInline)

	var wire []byte
	wire = append(wire, byte(header), byte(header>>8), byte(header>>16), byte(header>>24))
	wire = append(wire, payload...)
	wire = append(wire, byte(endOfFileNodeListMarker), byte(endOfFileNodeListMarker>>8), byte(endOfFileNodeListMarker>>16), byte(endOfFileNodeListMarker>>24))
	// footer: next-fragment chunk ref (64x32, fcrNil = all 0xFF) + 8 trailing bytes
	for i := 0; i < 12; i++ {
		wire = append(wire, 0xFF)
	}
	wire = append(wire, 0, 0, 0, 0, 0, 0, 0, 0)

	r := onefmt.NewReader(wire)
	frag, err := ParseFileNodeListFragment(r, len(wire))
	if err != nil {
		t.Fatal(err)
	}
	if len(frag.Nodes) != 1 {
		t.Fatalf("len(Nodes) = %d, want 1", len(frag.Nodes))
	}
	if frag.Nodes[0].ID != 5 {
		t.Errorf("Nodes[0].ID = %d, want 5", frag.Nodes[0].ID)
	}
	if string(frag.Nodes[0].Inline) != string(payload) {
		t.Errorf("Nodes[0].Inline = %v, want %v", frag.Nodes[0].Inline, payload)
	}
	if !frag.NextFragment.IsZero() {
		t.Errorf("NextFragment = %+v, want fcrNil", frag.NextFragment)
	}
}

func TestWalkFileNodeListStopsOnZeroRef(t *testing.T) {
	var calls int
	err := WalkFileNodeList(onefmt.NewReader(nil), onestore.FileChunkReference{}, 10, func(FileNode) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("visit called %d times for an already-absent chain, want 0", calls)
	}
}
