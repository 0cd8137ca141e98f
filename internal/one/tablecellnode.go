package one

import "onenotestore/internal/onestore"

// OutlineIndentDistance is the extra spacing a table cell applies before
// and after its contained outline.
type OutlineIndentDistance struct {
	Before    float32
	HasBefore bool
	After     float32
	HasAfter  bool
}

func parseOutlineIndentDistance(ps onestore.PropertySet) OutlineIndentDistance {
	var d OutlineIndentDistance
	if v, ok := ps.Get(PropOutlineIndentDistanceBefore); ok {
		d.Before, d.HasBefore = v.F32(), true
	}
	if v, ok := ps.Get(PropOutlineIndentDistanceAfter); ok {
		d.After, d.HasAfter = v.F32(), true
	}
	return d
}

// TableCellNode is one cell of a table row: its content children, layout
// width cap, and indent spacing.
type TableCellNode struct {
	LastModified          Time
	Contents              []onestore.ExGuid
	LayoutMaxWidth        float32
	HasLayoutMaxWidth     bool
	OutlineIndentDistance OutlineIndentDistance
}

// ParseTableCellNode decodes a TableCellNode object (MS-ONE 2.2.28).
func ParseTableCellNode(obj *onestore.Object, table onestore.MappingTable) (TableCellNode, error) {
	if err := requireJcid(obj, PropertySetTableCellNode); err != nil {
		return TableCellNode{}, err
	}

	lastModified, err := requireTime(obj.Props, PropLastModifiedTime)
	if err != nil {
		return TableCellNode{}, err
	}
	contents, err := requireRefs(obj.Props, PropElementChildNodes, table)
	if err != nil {
		return TableCellNode{}, err
	}

	cell := TableCellNode{
		LastModified:          lastModified,
		Contents:              contents,
		OutlineIndentDistance: parseOutlineIndentDistance(obj.Props),
	}
	if v, ok := obj.Props.Get(PropLayoutMaxWidth); ok {
		cell.LayoutMaxWidth, cell.HasLayoutMaxWidth = v.F32(), true
	}
	return cell, nil
}
