package one

import "onenotestore/internal/onestore"

// ParagraphAlignment is a paragraph's horizontal text alignment. An
// out-of-range on-disk value decodes to Unknown rather than failing: the
// enum is cosmetic, and a single bad byte here should never sink the rest
// of the page.
type ParagraphAlignment uint8

const (
	ParagraphAlignmentUnknown ParagraphAlignment = iota
	ParagraphAlignmentLeft
	ParagraphAlignmentCenter
	ParagraphAlignmentRight
)

func (a ParagraphAlignment) String() string {
	switch a {
	case ParagraphAlignmentLeft:
		return "Left"
	case ParagraphAlignmentCenter:
		return "Center"
	case ParagraphAlignmentRight:
		return "Right"
	default:
		return "Unknown"
	}
}

func parseParagraphAlignment(ps onestore.PropertySet) ParagraphAlignment {
	raw, ok := ps.Get(PropParagraphAlignment)
	if !ok {
		return ParagraphAlignmentLeft
	}
	switch uint8(raw.U64()) {
	case 0:
		return ParagraphAlignmentLeft
	case 1:
		return ParagraphAlignmentCenter
	case 2:
		return ParagraphAlignmentRight
	default:
		return ParagraphAlignmentUnknown
	}
}
