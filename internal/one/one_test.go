package one

import (
	"testing"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// propBuilder accumulates a property-set wire buffer the same way the
// on-disk format lays one out: a u16 count, then that many PropertyIds,
// then their values in order.
type propBuilder struct {
	ids    []onestore.PropertyId
	values [][]byte
}

func (b *propBuilder) addU32(id onestore.PropertyId, v uint32) {
	b.ids = append(b.ids, id)
	b.values = append(b.values, []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

func (b *propBuilder) addBytes(id onestore.PropertyId, data []byte) {
	n := uint32(len(data))
	v := []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	v = append(v, data...)
	b.ids = append(b.ids, id)
	b.values = append(b.values, v)
}

func (b *propBuilder) build(t *testing.T) onestore.PropertySet {
	t.Helper()
	n := uint16(len(b.ids))
	wire := []byte{byte(n), byte(n >> 8)}
	for _, id := range b.ids {
		v := uint32(id)
		wire = append(wire, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	for _, v := range b.values {
		wire = append(wire, v...)
	}
	ps, err := onestore.ParsePropertySet(onefmt.NewReader(wire))
	if err != nil {
		t.Fatalf("propBuilder.build: %v", err)
	}
	return ps
}

func utf16Bytes(s string) []byte {
	out := make([]byte, 0, len(s)*2+2)
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	out = append(out, 0, 0)
	return out
}

func TestParseSectionMetadataNode(t *testing.T) {
	var b propBuilder
	b.addU32(PropSchemaRevisionInOrderToRead, 1)
	b.addU32(PropSchemaRevisionInOrderToWrite, 1)
	b.addBytes(PropSectionDisplayName, utf16Bytes("My Section"))
	b.addU32(PropNotebookColor, uint32(0xFF)<<24|uint32(0x10)<<16|uint32(0x20)<<8|uint32(0x30))
	props := b.build(t)

	obj := &onestore.Object{Jcid: onestore.JcId(PropertySetSectionMetadataNode), Props: props}

	md, err := ParseSectionMetadataNode(obj)
	if err != nil {
		t.Fatal(err)
	}
	if md.DisplayName != "My Section" {
		t.Errorf("DisplayName = %q", md.DisplayName)
	}
	if !md.HasColor || md.Color.Alpha != 0x30 || md.Color.R != 0x20 || md.Color.G != 0x10 || md.Color.B != 0xFF {
		t.Errorf("Color = %+v", md.Color)
	}
}

func TestParseTOCContainerUnescapesFilename(t *testing.T) {
	var b propBuilder
	b.addBytes(PropFolderChildFilename, utf16Bytes("Math^M Physics^J Chemistry"))
	props := b.build(t)

	obj := &onestore.Object{Jcid: onestore.JcId(PropertySetTOCContainer), Props: props}

	toc, err := ParseTOCContainer(obj, onestore.FallbackMappingTable{})
	if err != nil {
		t.Fatal(err)
	}
	if toc.Filename != "Math+ Physics, Chemistry" {
		t.Errorf("Filename = %q", toc.Filename)
	}
}

func TestParseRichTextOENodeAlignmentFallback(t *testing.T) {
	var b propBuilder
	b.addBytes(PropRichEditTextUnicode, utf16Bytes("hello"))
	b.addU32(PropParagraphAlignment, 9)
	props := b.build(t)

	obj := &onestore.Object{Jcid: onestore.JcId(PropertySetRichTextOENode), Props: props}

	node, err := ParseRichTextOENode(obj, onestore.FallbackMappingTable{})
	if err != nil {
		t.Fatal(err)
	}
	if node.Text != "hello" {
		t.Errorf("Text = %q", node.Text)
	}
	if node.Alignment != ParagraphAlignmentUnknown {
		t.Errorf("Alignment = %v, want Unknown", node.Alignment)
	}
}

func TestRequireJcidMismatch(t *testing.T) {
	obj := &onestore.Object{Jcid: onestore.JcId(PropertySetPageNode)}
	if err := requireJcid(obj, PropertySetSectionNode); err == nil {
		t.Fatal("jcid mismatch: want error, got nil")
	}
}
