package onenote

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"onenotestore/internal/one"
	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// wireBuilder assembles a property-set buffer the same way objects are
// laid out on disk: a u16 count, that many PropertyIds, then their values.
type wireBuilder struct {
	ids    []onestore.PropertyId
	values [][]byte
}

func (b *wireBuilder) addU32(id onestore.PropertyId, v uint32) {
	b.ids = append(b.ids, id)
	b.values = append(b.values, []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

func (b *wireBuilder) addU64(id onestore.PropertyId, v uint64) {
	b.ids = append(b.ids, id)
	w := make([]byte, 8)
	for i := range w {
		w[i] = byte(v >> (8 * i))
	}
	b.values = append(b.values, w)
}

func (b *wireBuilder) addBytes(id onestore.PropertyId, data []byte) {
	n := uint32(len(data))
	v := []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	v = append(v, data...)
	b.ids = append(b.ids, id)
	b.values = append(b.values, v)
}

func (b *wireBuilder) addRef(id onestore.PropertyId, c onestore.CompactId) {
	raw := c.N&0x00FFFFFF | uint32(c.GuidIndex)<<24
	b.ids = append(b.ids, id)
	b.values = append(b.values, []byte{byte(raw), byte(raw >> 8), byte(raw >> 16), byte(raw >> 24)})
}

func (b *wireBuilder) addRefs(id onestore.PropertyId, cs []onestore.CompactId) {
	n := uint32(len(cs))
	v := []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	for _, c := range cs {
		raw := c.N&0x00FFFFFF | uint32(c.GuidIndex)<<24
		v = append(v, byte(raw), byte(raw>>8), byte(raw>>16), byte(raw>>24))
	}
	b.ids = append(b.ids, id)
	b.values = append(b.values, v)
}

func (b *wireBuilder) build(t *testing.T) onestore.PropertySet {
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
		t.Fatalf("wireBuilder.build: %v", err)
	}
	return ps
}

func utf16Bytes(s string) []byte {
	out := make([]byte, 0, len(s)*2+2)
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return append(out, 0, 0)
}

func exg(n uint32) onestore.ExGuid {
	return onestore.ExGuid{Guid: onestore.MustParseGuidString("4a3717f8-1c14-49e7-9526-81d942de1741"), N: n}
}

// TestDecodeAssemblesSectionTree builds a tiny, fully-wired section object
// graph by hand (one page series, one page, one paragraph) and checks
// that Decode's dialect-neutral assembler walks it into the expected
// Document.
func TestDecodeAssemblesSectionTree(t *testing.T) {
	mapping := onestore.NewMappingTable()
	pageSpaceCtx := exg(100)

	nextCompact := uint32(1)
	ref := func(target onestore.ExGuid) onestore.CompactId {
		c := onestore.CompactId{N: nextCompact, GuidIndex: 1}
		nextCompact++
		mapping.Put(c, target)
		return c
	}

	paragraphID := exg(1)
	var paraProps wireBuilder
	paraProps.addBytes(one.PropRichEditTextUnicode, utf16Bytes("hello world"))
	paraProps.addU32(one.PropParagraphAlignment, 1)
	paragraph := &onestore.Object{ID: paragraphID, Jcid: onestore.JcId(one.PropertySetRichTextOENode), Props: paraProps.build(t)}

	pageNodeID := exg(2)
	var pageProps wireBuilder
	pageProps.addRefs(one.PropElementChildNodes, []onestore.CompactId{ref(paragraphID)})
	pageNode := &onestore.Object{ID: pageNodeID, Jcid: onestore.JcId(one.PropertySetPageNode), Props: pageProps.build(t)}

	manifestID := exg(3)
	var manifestProps wireBuilder
	manifestProps.addRefs(one.PropContentChildNodes, []onestore.CompactId{ref(pageNodeID)})
	manifest := &onestore.Object{ID: manifestID, Jcid: onestore.JcId(one.PropertySetPageManifestNode), Props: manifestProps.build(t)}

	pageSpace := onestore.NewInMemoryObjectSpace(manifestID, onestore.NilExGuid, mapping)
	pageSpace.Put(manifest)
	pageSpace.Put(pageNode)
	pageSpace.Put(paragraph)

	seriesID := exg(4)
	var seriesProps wireBuilder
	seriesProps.addBytes(one.PropNotebookManagementEntityGuid, make([]byte, 16))
	seriesProps.addRefs(one.PropChildGraphSpaceElementNodes, []onestore.CompactId{ref(pageSpaceCtx)})
	series := &onestore.Object{ID: seriesID, Jcid: onestore.JcId(one.PropertySetPageSeriesNode), Props: seriesProps.build(t)}

	sectionID := exg(5)
	var sectionProps wireBuilder
	sectionProps.addBytes(one.PropNotebookManagementEntityGuid, make([]byte, 16))
	sectionProps.addRefs(one.PropElementChildNodes, []onestore.CompactId{ref(seriesID)})
	sectionProps.addU64(one.PropTopologyCreationTimeStamp, 42)
	section := &onestore.Object{ID: sectionID, Jcid: onestore.JcId(one.PropertySetSectionNode), Props: sectionProps.build(t)}

	rootSpace := onestore.NewInMemoryObjectSpace(sectionID, onestore.NilExGuid, mapping)
	rootSpace.Put(section)
	rootSpace.Put(series)

	store := &onestore.Store{
		ObjectSpaces: map[onestore.ExGuid]onestore.ObjectSpace{
			onestore.NilExGuid: rootSpace,
			pageSpaceCtx:       pageSpace,
		},
		RootObjectSpace: onestore.NilExGuid,
		RootRoleMap:     map[onestore.RevisionRole]onestore.ExGuid{onestore.RevisionRoleDefaultContent: sectionID},
	}

	doc, err := assembleFromStore(store)
	if err != nil {
		t.Fatal(err)
	}

	want := &Document{
		Section: &Section{
			EntityGuid: onestore.NilGuid.String(),
			CreatedAt:  one.Timestamp(42),
			PageSeries: []PageSeries{
				{Pages: []Page{
					{Elements: []Element{
						{Paragraph: &Paragraph{Text: "hello world", Alignment: one.ParagraphAlignmentCenter}},
					}},
				}},
			},
		},
	}

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}
