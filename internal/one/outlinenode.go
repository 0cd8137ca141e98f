package one

import "onenotestore/internal/onestore"

// OutlineNode is the root of a page's outline tree: its top-level child
// groups/paragraphs.
type OutlineNode struct {
	Children []onestore.ExGuid
}

// ParseOutlineNode decodes an OutlineNode object (MS-ONE 2.2.13).
func ParseOutlineNode(obj *onestore.Object, table onestore.MappingTable) (OutlineNode, error) {
	if err := requireJcid(obj, PropertySetOutlineNode); err != nil {
		return OutlineNode{}, err
	}
	children, err := requireRefs(obj.Props, PropElementChildNodes, table)
	if err != nil {
		return OutlineNode{}, err
	}
	return OutlineNode{Children: children}, nil
}
