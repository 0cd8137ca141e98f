package one

import "onenotestore/internal/onestore"

// PageSeriesNode is a page series' root object: the object spaces holding
// each page revision, and the metadata objects sitting above them.
type PageSeriesNode struct {
	EntityGuid   onestore.Guid
	PageSpaces   []onestore.ExGuid
	PageMetadata []onestore.ExGuid

	CreatedAt    Timestamp
	HasCreatedAt bool
}

// ParsePageSeriesNode decodes a PageSeriesNode object (MS-ONE 2.2.3).
func ParsePageSeriesNode(obj *onestore.Object, table onestore.MappingTable) (PageSeriesNode, error) {
	if err := requireJcid(obj, PropertySetPageSeriesNode); err != nil {
		return PageSeriesNode{}, err
	}

	guidBytes, err := requireBytes(obj.Props, PropNotebookManagementEntityGuid)
	if err != nil {
		return PageSeriesNode{}, err
	}
	entityGuid, err := parseInlineGuid(guidBytes)
	if err != nil {
		return PageSeriesNode{}, err
	}

	pageSpaces, err := requireRefs(obj.Props, PropChildGraphSpaceElementNodes, table)
	if err != nil {
		return PageSeriesNode{}, err
	}
	pageMetadata, err := requireRefs(obj.Props, PropMetaDataObjectsAboveGraphSpace, table)
	if err != nil {
		return PageSeriesNode{}, err
	}

	node := PageSeriesNode{EntityGuid: entityGuid, PageSpaces: pageSpaces, PageMetadata: pageMetadata}
	if ts, ok := optionalTimestamp(obj.Props, PropTopologyCreationTimeStamp); ok {
		node.CreatedAt, node.HasCreatedAt = ts, true
	}
	return node, nil
}
