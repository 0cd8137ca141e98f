package onenote

import (
	"fmt"

	"onenotestore/internal/one"
	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
	"onenotestore/internal/onestore/container"
)

// Decode sniffs and decodes a OneNote container buffer into a Document.
func Decode(data []byte, opts onefmt.Options) (*Document, error) {
	store, err := container.Decode(data, opts)
	if err != nil {
		return nil, err
	}
	return assembleFromStore(store)
}

// assembleFromStore walks an already-decoded Store into a Document,
// independent of which container dialect produced it.
func assembleFromStore(store *onestore.Store) (*Document, error) {
	space, ok := store.RootSpace()
	if !ok {
		return nil, fmt.Errorf("%w: assembler: no root object space", onestore.ErrMalformedFileData)
	}
	rootRef, ok := store.RootFor(onestore.RevisionRoleDefaultContent)
	if !ok {
		return nil, fmt.Errorf("%w: assembler: root space has no default-content root", onestore.ErrMalformedFileData)
	}
	root, ok := space.GetObject(rootRef)
	if !ok {
		return nil, fmt.Errorf("%w: assembler: default-content root object not present", onestore.ErrResolutionFailed)
	}

	switch one.JcidOf(root.Jcid) {
	case one.PropertySetTOCContainer:
		nb, err := assembleNotebook(root, space)
		if err != nil {
			return nil, err
		}
		return &Document{Notebook: nb}, nil

	case one.PropertySetSectionNode:
		sec, err := assembleSection(root, space, store)
		if err != nil {
			return nil, err
		}
		return &Document{Section: sec}, nil

	default:
		return nil, fmt.Errorf("%w: assembler: unrecognized root jcid %s", onestore.ErrUnexpectedObjectType, one.JcidOf(root.Jcid))
	}
}

func assembleNotebook(root *onestore.Object, space onestore.ObjectSpace) (*Notebook, error) {
	entries, err := assembleTOCEntry(root, space)
	if err != nil {
		return nil, err
	}
	return &Notebook{Entries: entries.Children}, nil
}

func assembleTOCEntry(obj *onestore.Object, space onestore.ObjectSpace) (TOCEntry, error) {
	toc, err := one.ParseTOCContainer(obj, space.Mapping())
	if err != nil {
		return TOCEntry{}, err
	}

	entry := TOCEntry{}
	if toc.HasFilename {
		entry.Name, entry.HasName = toc.Filename, true
	}
	if toc.HasOrderingID {
		entry.OrderingID, entry.HasOrderingID = toc.OrderingID, true
	}

	for _, childRef := range toc.Children {
		child, err := childObject(space, childRef)
		if err != nil {
			return TOCEntry{}, err
		}
		childEntry, err := assembleTOCEntry(child, space)
		if err != nil {
			return TOCEntry{}, err
		}
		entry.Children = append(entry.Children, childEntry)
	}
	return entry, nil
}
