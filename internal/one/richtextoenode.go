package one

import "onenotestore/internal/onestore"

// RichTextOENode is a single paragraph of rich text: its raw text run,
// alignment, an optional note tag, and an optional reference to a list
// (bullet/number) formatting object.
type RichTextOENode struct {
	Text          string
	Alignment     ParagraphAlignment
	NoteTag       NoteTagState
	HasNoteTag    bool
	ListFormatRef onestore.ExGuid
	HasListFormat bool
}

// ParseRichTextOENode decodes a RichTextOENode object (MS-ONE 2.2.19).
func ParseRichTextOENode(obj *onestore.Object, table onestore.MappingTable) (RichTextOENode, error) {
	if err := requireJcid(obj, PropertySetRichTextOENode); err != nil {
		return RichTextOENode{}, err
	}

	text, _ := optionalUTF16String(obj.Props, PropRichEditTextUnicode)

	node := RichTextOENode{
		Text:      text,
		Alignment: parseParagraphAlignment(obj.Props),
	}

	if tag, ok := parseNoteTagState(obj.Props); ok {
		node.NoteTag, node.HasNoteTag = tag, true
	}

	if ref, ok, err := optionalRef(obj.Props, PropNumberListRef, table); err != nil {
		return RichTextOENode{}, err
	} else if ok {
		node.ListFormatRef, node.HasListFormat = ref, true
	}

	return node, nil
}
