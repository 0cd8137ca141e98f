package one

import "onenotestore/internal/onestore"

// TableNode is a table's root object: its rows, in order, and the
// declared row/column counts (which may exceed the actual row count when
// trailing rows were trimmed by the editor).
type TableNode struct {
	Rows        []onestore.ExGuid
	RowCount    uint32
	ColumnCount uint32
}

// ParseTableNode decodes a TableNode object (MS-ONE 2.2.26).
func ParseTableNode(obj *onestore.Object, table onestore.MappingTable) (TableNode, error) {
	if err := requireJcid(obj, PropertySetTableNode); err != nil {
		return TableNode{}, err
	}

	rows, err := requireRefs(obj.Props, PropTableRows, table)
	if err != nil {
		return TableNode{}, err
	}
	rowCount, err := requireU32(obj.Props, PropRowCount)
	if err != nil {
		return TableNode{}, err
	}
	columnCount, err := requireU32(obj.Props, PropColumnCount)
	if err != nil {
		return TableNode{}, err
	}

	return TableNode{Rows: rows, RowCount: rowCount, ColumnCount: columnCount}, nil
}
