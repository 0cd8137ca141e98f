package one

import "onenotestore/internal/onestore"

// Color is an ARGB-ish 4-byte color value (MS-ONE 2.2.9 NotebookColor).
type Color struct {
	Alpha, R, G, B uint8
}

// parseColor decodes an optional Color property, returning ok=false if the
// property is absent rather than an error: section color is cosmetic, and
// several real-world sections omit it.
func parseColor(ps onestore.PropertySet, id onestore.PropertyId) (Color, bool) {
	raw, ok := optionalU32(ps, id)
	if !ok {
		return Color{}, false
	}
	return Color{
		Alpha: uint8(raw),
		R:     uint8(raw >> 8),
		G:     uint8(raw >> 16),
		B:     uint8(raw >> 24),
	}, true
}
