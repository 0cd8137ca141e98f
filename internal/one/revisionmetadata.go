package one

import "onenotestore/internal/onestore"

// RevisionMetadata carries a revision's last-modified timestamp and a
// reference to its most recent author object.
type RevisionMetadata struct {
	LastModified     Timestamp
	AuthorMostRecent onestore.ExGuid
}

// ParseRevisionMetadata decodes a RevisionMetadata object (MS-ONE 2.2.17).
func ParseRevisionMetadata(obj *onestore.Object, table onestore.MappingTable) (RevisionMetadata, error) {
	if err := requireJcid(obj, PropertySetRevisionMetadata); err != nil {
		return RevisionMetadata{}, err
	}
	lastModified, err := requireTimestamp(obj.Props, PropLastModifiedTimeStamp)
	if err != nil {
		return RevisionMetadata{}, err
	}
	author, err := requireRef(obj.Props, PropAuthorMostRecent, table)
	if err != nil {
		return RevisionMetadata{}, err
	}
	return RevisionMetadata{LastModified: lastModified, AuthorMostRecent: author}, nil
}
