package one

import "onenotestore/internal/onestore"

// NumberListNode carries the same bullet/number list formatting fields as
// ListFormat; it is the property-set shape ListFormat is decoded from when
// a paragraph references one.
type NumberListNode struct {
	ListFormat
}

// ParseNumberListNode decodes a NumberListNode object (MS-ONE 2.2.16).
func ParseNumberListNode(obj *onestore.Object) (NumberListNode, error) {
	if err := requireJcid(obj, PropertySetNumberListNode); err != nil {
		return NumberListNode{}, err
	}
	lf, err := parseListFormat(obj.Props)
	if err != nil {
		return NumberListNode{}, err
	}
	return NumberListNode{ListFormat: lf}, nil
}
