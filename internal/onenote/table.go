package onenote

import (
	"onenotestore/internal/one"
	"onenotestore/internal/onestore"
)

func assembleTable(obj *onestore.Object, space onestore.ObjectSpace) (*Table, error) {
	node, err := one.ParseTableNode(obj, space.Mapping())
	if err != nil {
		return nil, err
	}

	t := &Table{ColumnCount: node.ColumnCount}
	for _, rowRef := range node.Rows {
		rowObj, err := childObject(space, rowRef)
		if err != nil {
			return nil, err
		}
		row, err := assembleTableRow(rowObj, space)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, *row)
	}
	return t, nil
}

func assembleTableRow(obj *onestore.Object, space onestore.ObjectSpace) (*TableRow, error) {
	node, err := one.ParseTableRowNode(obj, space.Mapping())
	if err != nil {
		return nil, err
	}

	row := &TableRow{}
	for _, cellRef := range node.Cells {
		cellObj, err := childObject(space, cellRef)
		if err != nil {
			return nil, err
		}
		cell, err := assembleTableCell(cellObj, space)
		if err != nil {
			return nil, err
		}
		row.Cells = append(row.Cells, *cell)
	}
	return row, nil
}

func assembleTableCell(obj *onestore.Object, space onestore.ObjectSpace) (*TableCell, error) {
	node, err := one.ParseTableCellNode(obj, space.Mapping())
	if err != nil {
		return nil, err
	}
	elements, err := assembleElements(node.Contents, space)
	if err != nil {
		return nil, err
	}
	return &TableCell{Elements: elements}, nil
}
