package one

import "onenotestore/internal/onestore"

// PageNode is a page's content root: the mixed list of outlines, images,
// and embedded files that make up the page body.
type PageNode struct {
	Children []onestore.ExGuid
}

// ParsePageNode decodes a PageNode object (MS-ONE 2.2.5).
func ParsePageNode(obj *onestore.Object, table onestore.MappingTable) (PageNode, error) {
	if err := requireJcid(obj, PropertySetPageNode); err != nil {
		return PageNode{}, err
	}
	children, err := requireRefs(obj.Props, PropElementChildNodes, table)
	if err != nil {
		return PageNode{}, err
	}
	return PageNode{Children: children}, nil
}
