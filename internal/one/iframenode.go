package one

import "onenotestore/internal/onestore"

// IFrameNode is an embedded web frame: an external source URL and an
// optional embed-type hint.
type IFrameNode struct {
	EmbedType    uint32
	HasEmbedType bool
	SourceURL    string
}

// ParseIFrameNode decodes an IFrameNode object (MS-ONE 2.2.33).
func ParseIFrameNode(obj *onestore.Object) (IFrameNode, error) {
	if err := requireJcid(obj, PropertySetIFrameNode); err != nil {
		return IFrameNode{}, err
	}

	sourceURL, err := requireUTF16String(obj.Props, PropImageEmbeddedUrl)
	if err != nil {
		return IFrameNode{}, err
	}

	node := IFrameNode{SourceURL: sourceURL}
	if v, ok := optionalU32(obj.Props, PropImageEmbedType); ok {
		node.EmbedType, node.HasEmbedType = v, true
	}
	return node, nil
}
