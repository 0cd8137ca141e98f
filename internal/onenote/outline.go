package onenote

import (
	"onenotestore/internal/one"
	"onenotestore/internal/onestore"
)

func assembleOutlineNode(obj *onestore.Object, space onestore.ObjectSpace) (*Outline, error) {
	node, err := one.ParseOutlineNode(obj, space.Mapping())
	if err != nil {
		return nil, err
	}
	elements, err := assembleElements(node.Children, space)
	if err != nil {
		return nil, err
	}
	return &Outline{Elements: elements}, nil
}

func assembleOutlineGroup(obj *onestore.Object, space onestore.ObjectSpace) (*Outline, error) {
	node, err := one.ParseOutlineGroup(obj, space.Mapping())
	if err != nil {
		return nil, err
	}
	elements, err := assembleElements(node.Children, space)
	if err != nil {
		return nil, err
	}
	return &Outline{ChildLevel: node.ChildLevel, Elements: elements}, nil
}
