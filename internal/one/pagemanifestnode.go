package one

import (
	"fmt"

	"onenotestore/internal/onestore"
)

// PageManifestNode is a page object space's root object, pointing at the
// single PageNode object holding the page's actual content tree.
type PageManifestNode struct {
	Page onestore.ExGuid
}

// ParsePageManifestNode decodes a PageManifestNode object (MS-ONE 2.2.4).
func ParsePageManifestNode(obj *onestore.Object, table onestore.MappingTable) (PageManifestNode, error) {
	if err := requireJcid(obj, PropertySetPageManifestNode); err != nil {
		return PageManifestNode{}, err
	}

	pages, err := requireRefs(obj.Props, PropContentChildNodes, table)
	if err != nil {
		return PageManifestNode{}, err
	}
	if len(pages) == 0 {
		return PageManifestNode{}, fmt.Errorf("%w: page manifest has no page", onestore.ErrMalformedData)
	}
	return PageManifestNode{Page: pages[0]}, nil
}
