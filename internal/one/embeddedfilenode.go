package one

import "onenotestore/internal/onestore"

// EmbeddedFileNode is a page attachment: a reference to its content (an
// EmbeddedFileContainer object) and the original filename.
type EmbeddedFileNode struct {
	FileDataRef onestore.ExGuid
	Filename    string
	HasFilename bool
}

// ParseEmbeddedFileNode decodes an EmbeddedFileNode object (MS-ONE 2.2.58).
func ParseEmbeddedFileNode(obj *onestore.Object, table onestore.MappingTable) (EmbeddedFileNode, error) {
	if err := requireJcid(obj, PropertySetEmbeddedFileNode); err != nil {
		return EmbeddedFileNode{}, err
	}

	ref, err := requireRef(obj.Props, PropFileDataReference, table)
	if err != nil {
		return EmbeddedFileNode{}, err
	}

	node := EmbeddedFileNode{FileDataRef: ref}
	if name, ok := optionalUTF16String(obj.Props, PropEmbeddedFileName); ok {
		node.Filename, node.HasFilename = name, true
	}
	return node, nil
}
