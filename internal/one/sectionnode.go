package one

import "onenotestore/internal/onestore"

// SectionNode is a section's root object: its stable notebook-management
// identity, its child page series, and the time the section was created.
type SectionNode struct {
	EntityGuid onestore.Guid
	PageSeries []onestore.ExGuid
	CreatedAt  Timestamp
}

// ParseSectionNode decodes a SectionNode object (MS-ONE 2.2.1).
func ParseSectionNode(obj *onestore.Object, table onestore.MappingTable) (SectionNode, error) {
	if err := requireJcid(obj, PropertySetSectionNode); err != nil {
		return SectionNode{}, err
	}

	guidBytes, err := requireBytes(obj.Props, PropNotebookManagementEntityGuid)
	if err != nil {
		return SectionNode{}, err
	}
	entityGuid, err := parseInlineGuid(guidBytes)
	if err != nil {
		return SectionNode{}, err
	}

	pageSeries, err := requireRefs(obj.Props, PropElementChildNodes, table)
	if err != nil {
		return SectionNode{}, err
	}

	createdAt, err := requireTimestamp(obj.Props, PropTopologyCreationTimeStamp)
	if err != nil {
		return SectionNode{}, err
	}

	return SectionNode{EntityGuid: entityGuid, PageSeries: pageSeries, CreatedAt: createdAt}, nil
}
