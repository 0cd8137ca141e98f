package one

import (
	"fmt"

	"onenotestore/internal/onestore"
)

// InkDataNode is a freeform ink drawing: its stroke objects and an
// optional bounding box (minX, minY, maxX, maxY).
type InkDataNode struct {
	Strokes        []onestore.ExGuid
	BoundingBox    [4]uint32
	HasBoundingBox bool
}

// ParseInkDataNode decodes an InkDataNode object (MS-ONE 2.2.32).
func ParseInkDataNode(obj *onestore.Object, table onestore.MappingTable) (InkDataNode, error) {
	if err := requireJcid(obj, PropertySetInkDataNode); err != nil {
		return InkDataNode{}, err
	}

	strokes, err := requireRefs(obj.Props, PropInkStrokes, table)
	if err != nil {
		return InkDataNode{}, err
	}

	node := InkDataNode{Strokes: strokes}
	if b, ok := optionalBytes(obj.Props, PropInkBoundingBox); ok {
		if len(b) != 16 {
			return InkDataNode{}, fmt.Errorf("%w: ink bounding box has %d bytes, want 16", onestore.ErrMalformedData, len(b))
		}
		for i := 0; i < 4; i++ {
			node.BoundingBox[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
		}
		node.HasBoundingBox = true
	}
	return node, nil
}
