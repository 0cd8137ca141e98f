package one

import "onenotestore/internal/onestore"

// TableRowNode is one row of a table: its cells, in column order.
type TableRowNode struct {
	LastModified    Time
	HasLastModified bool
	Cells           []onestore.ExGuid
}

// ParseTableRowNode decodes a TableRowNode object (MS-ONE 2.2.27).
func ParseTableRowNode(obj *onestore.Object, table onestore.MappingTable) (TableRowNode, error) {
	if err := requireJcid(obj, PropertySetTableRowNode); err != nil {
		return TableRowNode{}, err
	}

	cells, err := requireRefs(obj.Props, PropElementChildNodes, table)
	if err != nil {
		return TableRowNode{}, err
	}

	row := TableRowNode{Cells: cells}
	if lm, ok := optionalTime(obj.Props, PropLastModifiedTime); ok {
		row.LastModified, row.HasLastModified = lm, true
	}
	return row, nil
}
