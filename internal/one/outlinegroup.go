package one

import "onenotestore/internal/onestore"

// OutlineGroup is a level of indentation within an outline: its children
// (paragraphs or nested outline groups) and their shared indent level.
type OutlineGroup struct {
	LastModified Time
	Children     []onestore.ExGuid
	ChildLevel   uint8
}

// ParseOutlineGroup decodes an OutlineGroup object (MS-ONE 2.2.14).
func ParseOutlineGroup(obj *onestore.Object, table onestore.MappingTable) (OutlineGroup, error) {
	if err := requireJcid(obj, PropertySetOutlineGroup); err != nil {
		return OutlineGroup{}, err
	}

	lastModified, err := requireTime(obj.Props, PropLastModifiedTime)
	if err != nil {
		return OutlineGroup{}, err
	}
	children, err := requireRefs(obj.Props, PropElementChildNodes, table)
	if err != nil {
		return OutlineGroup{}, err
	}
	childLevel, err := requireU8(obj.Props, PropOutlineElementChildLevel)
	if err != nil {
		return OutlineGroup{}, err
	}

	return OutlineGroup{LastModified: lastModified, Children: children, ChildLevel: childLevel}, nil
}
