package one

import "onenotestore/internal/onestore"

// ImageNode is a page image: a reference to its pixel data (a
// PictureContainer object) plus layout size and alt text.
type ImageNode struct {
	FileDataRef onestore.ExGuid

	Width     float32
	HasWidth  bool
	Height    float32
	HasHeight bool

	AltText    string
	HasAltText bool
}

// ParseImageNode decodes an ImageNode object (MS-ONE 2.2.35).
func ParseImageNode(obj *onestore.Object, table onestore.MappingTable) (ImageNode, error) {
	if err := requireJcid(obj, PropertySetImageNode); err != nil {
		return ImageNode{}, err
	}

	ref, err := requireRef(obj.Props, PropFileDataReference, table)
	if err != nil {
		return ImageNode{}, err
	}

	node := ImageNode{FileDataRef: ref}
	if v, ok := obj.Props.Get(PropLayoutImageWidth); ok {
		node.Width, node.HasWidth = v.F32(), true
	}
	if v, ok := obj.Props.Get(PropLayoutImageHeight); ok {
		node.Height, node.HasHeight = v.F32(), true
	}
	if s, ok := optionalUTF16String(obj.Props, PropImageAltText); ok {
		node.AltText, node.HasAltText = s, true
	}
	return node, nil
}
