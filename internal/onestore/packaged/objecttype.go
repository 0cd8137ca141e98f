// Package packaged decodes the FSSHTTPB-wrapped packaged container dialect
// (MS-FSSHTTPB 2.2): a tree of length-delimited stream objects rooted at a
// Packaging object, reduced to the same (ExGuid -> Object) object spaces
// the legacy dialect produces.
package packaged

// ObjectType is the stream-object type tag carried by every FSSHTTPB
// stream-object header. Values per MS-FSSHTTPB 2.2.1.
type ObjectType uint32

const (
	ObjectTypeDataElement                    ObjectType = 0x01
	ObjectTypeObjectDataBlob                 ObjectType = 0x02
	ObjectTypeObjectGroupDataExcluded        ObjectType = 0x03
	ObjectTypeObjectGroupDataBlob            ObjectType = 0x05
	ObjectTypeDataElementFragment            ObjectType = 0x06A
	ObjectTypeStorageManifestRoot            ObjectType = 0x07
	ObjectTypeRevisionManifestRoot           ObjectType = 0x0A
	ObjectTypeCellManifest                   ObjectType = 0x0B
	ObjectTypeStorageManifest                ObjectType = 0x0C
	ObjectTypeStorageIndexRevisionMapping    ObjectType = 0x0D
	ObjectTypeStorageIndexCellMapping        ObjectType = 0x0E
	ObjectTypeStorageIndexManifestMapping    ObjectType = 0x11
	ObjectTypeDataElementPackage             ObjectType = 0x15
	ObjectTypeObjectGroupObject              ObjectType = 0x18
	ObjectTypeRevisionManifestGroupReference ObjectType = 0x19
	ObjectTypeRevisionManifest               ObjectType = 0x1A
	ObjectTypeObjectGroupBlobReference       ObjectType = 0x1C
	ObjectTypeObjectGroupDeclaration         ObjectType = 0x1D
	ObjectTypeObjectGroupData                ObjectType = 0x1E
	ObjectTypeObjectGroupMetadata            ObjectType = 0x78
	ObjectTypeObjectGroupMetadataBlock       ObjectType = 0x79
	ObjectTypeOneNotePackaging               ObjectType = 0x7A
)

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeDataElement:
		return "DataElement"
	case ObjectTypeObjectDataBlob:
		return "ObjectDataBlob"
	case ObjectTypeObjectGroupDataExcluded:
		return "ObjectGroupDataExcluded"
	case ObjectTypeObjectGroupDataBlob:
		return "ObjectGroupDataBlob"
	case ObjectTypeDataElementFragment:
		return "DataElementFragment"
	case ObjectTypeStorageManifestRoot:
		return "StorageManifestRoot"
	case ObjectTypeRevisionManifestRoot:
		return "RevisionManifestRoot"
	case ObjectTypeCellManifest:
		return "CellManifest"
	case ObjectTypeStorageManifest:
		return "StorageManifest"
	case ObjectTypeStorageIndexRevisionMapping:
		return "StorageIndexRevisionMapping"
	case ObjectTypeStorageIndexCellMapping:
		return "StorageIndexCellMapping"
	case ObjectTypeStorageIndexManifestMapping:
		return "StorageIndexManifestMapping"
	case ObjectTypeDataElementPackage:
		return "DataElementPackage"
	case ObjectTypeObjectGroupObject:
		return "ObjectGroupObject"
	case ObjectTypeRevisionManifestGroupReference:
		return "RevisionManifestGroupReference"
	case ObjectTypeRevisionManifest:
		return "RevisionManifest"
	case ObjectTypeObjectGroupBlobReference:
		return "ObjectGroupBlobReference"
	case ObjectTypeObjectGroupDeclaration:
		return "ObjectGroupDeclaration"
	case ObjectTypeObjectGroupData:
		return "ObjectGroupData"
	case ObjectTypeObjectGroupMetadata:
		return "ObjectGroupMetadata"
	case ObjectTypeObjectGroupMetadataBlock:
		return "ObjectGroupMetadataBlock"
	case ObjectTypeOneNotePackaging:
		return "OneNotePackaging"
	default:
		return "Unknown"
	}
}
