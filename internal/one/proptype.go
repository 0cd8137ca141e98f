package one

import "onenotestore/internal/onestore"

// pid builds a well-known PropertyId from its semantic id and the
// PropertyType tag the file format uses for it.
func pid(semanticID uint32, typ onestore.PropertyType) onestore.PropertyId {
	return onestore.PropertyId(semanticID | uint32(typ)<<26)
}

// Well-known property identifiers used across the property-set parsers in
// this package (MS-ONE 2.3.*). Names mirror the MS-ONE property names.
var (
	PropNotebookManagementEntityGuid   = pid(0x1C, onestore.PropertyTypeBytes)
	PropTopologyCreationTimeStamp      = pid(0x1D, onestore.PropertyTypeU64)
	PropChildGraphSpaceElementNodes    = pid(0x1E, onestore.PropertyTypeObjectSpaceIds)
	PropMetaDataObjectsAboveGraphSpace = pid(0x1F, onestore.PropertyTypeObjectIds)

	PropLastModifiedTime         = pid(0x20, onestore.PropertyTypeU32)
	PropOutlineElementChildLevel = pid(0x21, onestore.PropertyTypeU8)
	PropElementChildNodes        = pid(0x22, onestore.PropertyTypeObjectIds)

	PropFileDataReference = pid(0x23, onestore.PropertyTypeObjectId)
	PropFileExtension     = pid(0x24, onestore.PropertyTypeBytes)

	PropImageEmbeddedUrl = pid(0x25, onestore.PropertyTypeBytes)
	PropImageEmbedType   = pid(0x26, onestore.PropertyTypeU32)

	PropInkStrokes     = pid(0x27, onestore.PropertyTypeObjectIds)
	PropInkBoundingBox = pid(0x28, onestore.PropertyTypeBytes)

	PropTOCChildNodes   = pid(0x29, onestore.PropertyTypeObjectIds)
	PropTOCFilename     = pid(0x2A, onestore.PropertyTypeBytes)
	PropTOCSectionColor = pid(0x2B, onestore.PropertyTypeU32)

	PropSectionDisplayName = pid(0x2C, onestore.PropertyTypeBytes)
	PropSectionColor       = pid(0x2D, onestore.PropertyTypeU32)

	PropAuthor                = pid(0x2E, onestore.PropertyTypeBytes)
	PropAuthorOriginal        = pid(0x2F, onestore.PropertyTypeBytes)
	PropLastModifiedTimeStamp = pid(0x30, onestore.PropertyTypeU64)
	PropRevisionAuthor        = pid(0x31, onestore.PropertyTypeContextId)

	PropNoteTagState       = pid(0x32, onestore.PropertyTypeU32)
	PropParagraphAlignment = pid(0x33, onestore.PropertyTypeU32)
	PropParagraphStyle     = pid(0x34, onestore.PropertyTypePropertySet)

	PropRichEditTextUnicode = pid(0x35, onestore.PropertyTypeBytes)

	PropNumberListFont = pid(0x36, onestore.PropertyTypeBytes)
	PropListRestart    = pid(0x37, onestore.PropertyTypeU32)
	PropListFormat     = pid(0x38, onestore.PropertyTypeBytes)
	PropBold           = pid(0x39, onestore.PropertyTypeBool)
	PropItalic         = pid(0x3A, onestore.PropertyTypeBool)
	PropFont           = pid(0x3B, onestore.PropertyTypeBytes)
	PropFontSize       = pid(0x3C, onestore.PropertyTypeU16)
	PropFontColor      = pid(0x3D, onestore.PropertyTypeU32)
	PropLanguageCode   = pid(0x3E, onestore.PropertyTypeU16)

	PropTableRows   = pid(0x3F, onestore.PropertyTypeObjectIds)
	PropRowCount    = pid(0x40, onestore.PropertyTypeU32)
	PropColumnCount = pid(0x41, onestore.PropertyTypeU32)

	PropOutlineElementCellLevel = pid(0x42, onestore.PropertyTypeU8)

	PropContentChildNodes = pid(0x43, onestore.PropertyTypeObjectIds)
	PropLayoutMaxWidth    = pid(0x44, onestore.PropertyTypeF32)
	PropAuthorMostRecent  = pid(0x45, onestore.PropertyTypeContextId)

	PropOutlineIndentDistanceBefore = pid(0x46, onestore.PropertyTypeF32)
	PropOutlineIndentDistanceAfter  = pid(0x47, onestore.PropertyTypeF32)

	PropNotebookColor = pid(0x48, onestore.PropertyTypeU32)

	PropSchemaRevisionInOrderToRead  = pid(0x49, onestore.PropertyTypeU32)
	PropSchemaRevisionInOrderToWrite = pid(0x4A, onestore.PropertyTypeU32)

	PropTocChildren               = pid(0x4B, onestore.PropertyTypeObjectIds)
	PropFolderChildFilename       = pid(0x4C, onestore.PropertyTypeBytes)
	PropNotebookElementOrderingID = pid(0x4D, onestore.PropertyTypeU32)

	PropActionItemType        = pid(0x4E, onestore.PropertyTypeU16)
	PropActionItemCreatedAt   = pid(0x4F, onestore.PropertyTypeU32)
	PropActionItemCompletedAt = pid(0x50, onestore.PropertyTypeU32)
	PropActionItemStatus      = pid(0x51, onestore.PropertyTypeU32)

	PropNumberListRef = pid(0x52, onestore.PropertyTypeContextId)

	PropLayoutImageWidth  = pid(0x53, onestore.PropertyTypeF32)
	PropLayoutImageHeight = pid(0x54, onestore.PropertyTypeF32)
	PropImageAltText      = pid(0x55, onestore.PropertyTypeBytes)

	PropEmbeddedFileName = pid(0x56, onestore.PropertyTypeBytes)
)
