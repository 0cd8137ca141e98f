package one

import "onenotestore/internal/onestore"

// PageMetaData carries a page's last-modified time, separate from the
// page content tree itself so viewers can list pages without decoding
// their bodies.
type PageMetaData struct {
	LastModified Timestamp
}

// ParsePageMetaData decodes a PageMetaData object (MS-ONE 2.2.6).
func ParsePageMetaData(obj *onestore.Object) (PageMetaData, error) {
	if err := requireJcid(obj, PropertySetPageMetaData); err != nil {
		return PageMetaData{}, err
	}
	lastModified, err := requireTimestamp(obj.Props, PropLastModifiedTimeStamp)
	if err != nil {
		return PageMetaData{}, err
	}
	return PageMetaData{LastModified: lastModified}, nil
}
