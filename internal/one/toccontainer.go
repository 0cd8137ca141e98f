package one

import (
	"strings"

	"onenotestore/internal/onestore"
)

// TOCContainer is one entry in a notebook's table of contents: either a
// leaf (a named section/folder) or an interior node with children.
type TOCContainer struct {
	Children      []onestore.ExGuid
	Filename      string
	HasFilename   bool
	OrderingID    uint32
	HasOrderingID bool
}

// ParseTOCContainer decodes a TOCContainer object (MS-ONE 2.2.8). Notebook
// filenames escape the literal characters '+' and ',' as the two-character
// sequences "^M" and "^J" because those characters are otherwise
// meaningful in the folder structure; this unescapes them.
func ParseTOCContainer(obj *onestore.Object, table onestore.MappingTable) (TOCContainer, error) {
	if err := requireJcid(obj, PropertySetTOCContainer); err != nil {
		return TOCContainer{}, err
	}

	children, err := requireRefs(obj.Props, PropTocChildren, table)
	if err != nil {
		return TOCContainer{}, err
	}

	toc := TOCContainer{Children: children}
	if name, ok := optionalUTF16String(obj.Props, PropFolderChildFilename); ok {
		toc.Filename, toc.HasFilename = unescapeTOCFilename(name), true
	}
	if ord, ok := optionalU32(obj.Props, PropNotebookElementOrderingID); ok {
		toc.OrderingID, toc.HasOrderingID = ord, true
	}
	return toc, nil
}

func unescapeTOCFilename(s string) string {
	s = strings.ReplaceAll(s, "^M", "+")
	s = strings.ReplaceAll(s, "^J", ",")
	return s
}
