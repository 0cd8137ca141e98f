package onenote

import (
	"fmt"

	"onenotestore/internal/one"
	"onenotestore/internal/onestore"
)

// assembleElements resolves and dispatches a list of child references to
// their typed Element form, in order.
func assembleElements(refs []onestore.ExGuid, space onestore.ObjectSpace) ([]Element, error) {
	elements := make([]Element, 0, len(refs))
	for _, ref := range refs {
		obj, err := childObject(space, ref)
		if err != nil {
			return nil, err
		}
		el, err := assembleElement(obj, space)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// assembleElement dispatches a single object to its typed Element form by
// jcid. This collapses the distillation's separate page-content and
// outline-content dispatch tables into one: every content type named by
// either original table (RichText/Table/Image/EmbeddedFile plus
// Outline/IFrame/Ink) can legally appear wherever an element reference is
// found.
func assembleElement(obj *onestore.Object, space onestore.ObjectSpace) (Element, error) {
	switch one.JcidOf(obj.Jcid) {
	case one.PropertySetOutlineNode:
		outline, err := assembleOutlineNode(obj, space)
		if err != nil {
			return Element{}, err
		}
		return Element{Outline: outline}, nil

	case one.PropertySetOutlineGroup:
		group, err := assembleOutlineGroup(obj, space)
		if err != nil {
			return Element{}, err
		}
		return Element{Outline: group}, nil

	case one.PropertySetRichTextOENode:
		p, err := assembleParagraph(obj, space)
		if err != nil {
			return Element{}, err
		}
		return Element{Paragraph: p}, nil

	case one.PropertySetTableNode:
		t, err := assembleTable(obj, space)
		if err != nil {
			return Element{}, err
		}
		return Element{Table: t}, nil

	case one.PropertySetImageNode:
		img, err := assembleImage(obj, space)
		if err != nil {
			return Element{}, err
		}
		return Element{Image: img}, nil

	case one.PropertySetEmbeddedFileNode:
		f, err := assembleEmbeddedFile(obj, space)
		if err != nil {
			return Element{}, err
		}
		return Element{EmbeddedFile: f}, nil

	case one.PropertySetIFrameNode:
		node, err := one.ParseIFrameNode(obj)
		if err != nil {
			return Element{}, err
		}
		return Element{IFrame: &IFrame{SourceURL: node.SourceURL, EmbedType: node.EmbedType, HasType: node.HasEmbedType}}, nil

	case one.PropertySetInkDataNode:
		node, err := one.ParseInkDataNode(obj, space.Mapping())
		if err != nil {
			return Element{}, err
		}
		return Element{Ink: &Ink{StrokeCount: len(node.Strokes), BoundingBox: node.BoundingBox, HasBoundingBox: node.HasBoundingBox}}, nil

	default:
		return Element{}, fmt.Errorf("%w: element: unrecognized jcid %s", onestore.ErrUnexpectedObjectType, one.JcidOf(obj.Jcid))
	}
}

func assembleParagraph(obj *onestore.Object, space onestore.ObjectSpace) (*Paragraph, error) {
	node, err := one.ParseRichTextOENode(obj, space.Mapping())
	if err != nil {
		return nil, err
	}
	p := &Paragraph{Text: node.Text, Alignment: node.Alignment}
	if node.HasNoteTag {
		tag := node.NoteTag
		p.NoteTag = &tag
	}
	if node.HasListFormat {
		listObj, err := childObject(space, node.ListFormatRef)
		if err != nil {
			return nil, err
		}
		list, err := one.ParseNumberListNode(listObj)
		if err != nil {
			return nil, err
		}
		p.List = &list.ListFormat
	}
	return p, nil
}

func assembleImage(obj *onestore.Object, space onestore.ObjectSpace) (*Image, error) {
	node, err := one.ParseImageNode(obj, space.Mapping())
	if err != nil {
		return nil, err
	}
	dataObj, err := childObject(space, node.FileDataRef)
	if err != nil {
		return nil, err
	}
	pic, err := one.ParsePictureContainer(dataObj)
	if err != nil {
		return nil, err
	}
	img := &Image{Data: pic.Data, Width: node.Width, HasWidth: node.HasWidth, Height: node.Height, HasHeight: node.HasHeight}
	if pic.HasExtension {
		img.Extension, img.HasExt = pic.Extension, true
	}
	return img, nil
}

func assembleEmbeddedFile(obj *onestore.Object, space onestore.ObjectSpace) (*EmbeddedFile, error) {
	node, err := one.ParseEmbeddedFileNode(obj, space.Mapping())
	if err != nil {
		return nil, err
	}
	dataObj, err := childObject(space, node.FileDataRef)
	if err != nil {
		return nil, err
	}
	fileContainer, err := one.ParseEmbeddedFileContainer(dataObj)
	if err != nil {
		return nil, err
	}
	f := &EmbeddedFile{Data: fileContainer.Data}
	if node.HasFilename {
		f.Filename, f.HasName = node.Filename, true
	}
	return f, nil
}
