package one

import "onenotestore/internal/onestore"

// SectionMetadataNode carries a section's schema version markers, display
// name, and color.
type SectionMetadataNode struct {
	SchemaRevisionInOrderToRead  uint32
	SchemaRevisionInOrderToWrite uint32

	DisplayName    string
	HasDisplayName bool

	Color    Color
	HasColor bool
}

// ParseSectionMetadataNode decodes a SectionMetadataNode object
// (MS-ONE 2.2.2).
func ParseSectionMetadataNode(obj *onestore.Object) (SectionMetadataNode, error) {
	if err := requireJcid(obj, PropertySetSectionMetadataNode); err != nil {
		return SectionMetadataNode{}, err
	}

	read, err := requireU32(obj.Props, PropSchemaRevisionInOrderToRead)
	if err != nil {
		return SectionMetadataNode{}, err
	}
	write, err := requireU32(obj.Props, PropSchemaRevisionInOrderToWrite)
	if err != nil {
		return SectionMetadataNode{}, err
	}

	md := SectionMetadataNode{
		SchemaRevisionInOrderToRead:  read,
		SchemaRevisionInOrderToWrite: write,
	}

	if name, ok := optionalUTF16String(obj.Props, PropSectionDisplayName); ok {
		md.DisplayName, md.HasDisplayName = name, true
	}
	if color, ok := parseColor(obj.Props, PropNotebookColor); ok {
		md.Color, md.HasColor = color, true
	}

	return md, nil
}
