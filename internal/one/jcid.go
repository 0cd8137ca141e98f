// Package one decodes property sets into the typed OneNote content schema
// (MS-ONE 2.2.*): section, page series, page, outline, table, and the
// various leaf content containers.
package one

import (
	"fmt"

	"onenotestore/internal/onestore"
)

// PropertySetId ("jcid") designates the schema of a property set. Values
// are the full 32-bit jcid carried with each object; only the identifiers
// this package's parsers accept are named here.
type PropertySetId uint32

const (
	PropertySetSectionNode           PropertySetId = 0x0C1F2FF8
	PropertySetSectionMetadataNode   PropertySetId = 0x0C1F2FFA
	PropertySetPageSeriesNode        PropertySetId = 0x0C1F2FFD
	PropertySetPageManifestNode      PropertySetId = 0x0C1F3000
	PropertySetPageNode              PropertySetId = 0x0C1F3001
	PropertySetOutlineNode           PropertySetId = 0x0C1F3002
	PropertySetOutlineGroup          PropertySetId = 0x0C1F3003
	PropertySetParagraphStyleObject  PropertySetId = 0x0C1F3004
	PropertySetRichTextOENode        PropertySetId = 0x0C1F3005
	PropertySetNumberListNode        PropertySetId = 0x0C1F3006
	PropertySetTableNode             PropertySetId = 0x0C1F3007
	PropertySetTableRowNode          PropertySetId = 0x0C1F3008
	PropertySetTableCellNode         PropertySetId = 0x0C1F3009
	PropertySetImageNode             PropertySetId = 0x0C1F300A
	PropertySetEmbeddedFileContainer PropertySetId = 0x0C1F300B
	PropertySetEmbeddedFileNode      PropertySetId = 0x0C1F300C
	PropertySetPictureContainer      PropertySetId = 0x0C1F300D
	PropertySetXpsContainer          PropertySetId = 0x0C1F300E
	PropertySetIFrameNode            PropertySetId = 0x0C1F300F
	PropertySetInkDataNode           PropertySetId = 0x0C1F3010
	PropertySetTOCContainer          PropertySetId = 0x0C1F3011
	PropertySetRevisionMetadata      PropertySetId = 0x0C1F3012
	PropertySetAuthorContainer       PropertySetId = 0x0C1F3013
	PropertySetPageMetaData          PropertySetId = 0x0C1F3014
)

func (id PropertySetId) String() string {
	switch id {
	case PropertySetSectionNode:
		return "SectionNode"
	case PropertySetSectionMetadataNode:
		return "SectionMetadataNode"
	case PropertySetPageSeriesNode:
		return "PageSeriesNode"
	case PropertySetPageManifestNode:
		return "PageManifestNode"
	case PropertySetPageNode:
		return "PageNode"
	case PropertySetOutlineNode:
		return "OutlineNode"
	case PropertySetOutlineGroup:
		return "OutlineGroup"
	case PropertySetParagraphStyleObject:
		return "ParagraphStyleObject"
	case PropertySetRichTextOENode:
		return "RichTextOENode"
	case PropertySetNumberListNode:
		return "NumberListNode"
	case PropertySetTableNode:
		return "TableNode"
	case PropertySetTableRowNode:
		return "TableRowNode"
	case PropertySetTableCellNode:
		return "TableCellNode"
	case PropertySetImageNode:
		return "ImageNode"
	case PropertySetEmbeddedFileContainer:
		return "EmbeddedFileContainer"
	case PropertySetEmbeddedFileNode:
		return "EmbeddedFileNode"
	case PropertySetPictureContainer:
		return "PictureContainer"
	case PropertySetXpsContainer:
		return "XpsContainer"
	case PropertySetIFrameNode:
		return "IFrameNode"
	case PropertySetInkDataNode:
		return "InkDataNode"
	case PropertySetTOCContainer:
		return "TOCContainer"
	case PropertySetRevisionMetadata:
		return "RevisionMetadata"
	case PropertySetAuthorContainer:
		return "AuthorContainer"
	case PropertySetPageMetaData:
		return "PageMetaData"
	default:
		return fmt.Sprintf("PropertySetId(%#x)", uint32(id))
	}
}

// JcidOf narrows an onestore.JcId to the PropertySetId domain this package
// knows how to parse.
func JcidOf(j onestore.JcId) PropertySetId { return PropertySetId(j) }

// requireJcid returns ErrUnexpectedObjectType unless obj.Jcid matches one
// of want.
func requireJcid(obj *onestore.Object, want ...PropertySetId) error {
	got := JcidOf(obj.Jcid)
	for _, w := range want {
		if got == w {
			return nil
		}
	}
	return fmt.Errorf("%w: got %s", onestore.ErrUnexpectedObjectType, got)
}
