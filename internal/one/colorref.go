package one

import (
	"fmt"

	"onenotestore/internal/onestore"
)

// ColorRef is either "use the automatic theme color" or an explicit RGB
// triple (MS-ONE 2.2.9 ColorRef). The high byte of the packed u32
// distinguishes them: 0xFF means Auto, 0x00 means Manual.
type ColorRef struct {
	Auto    bool
	R, G, B uint8
}

func parseColorRef(ps onestore.PropertySet, id onestore.PropertyId) (ColorRef, bool, error) {
	raw, ok := optionalU32(ps, id)
	if !ok {
		return ColorRef{}, false, nil
	}
	b := [4]byte{byte(raw), byte(raw >> 8), byte(raw >> 16), byte(raw >> 24)}
	switch b[3] {
	case 0xFF:
		return ColorRef{Auto: true}, true, nil
	case 0x00:
		return ColorRef{R: b[0], G: b[1], B: b[2]}, true, nil
	default:
		return ColorRef{}, false, fmt.Errorf("%w: invalid color ref %#08x", onestore.ErrMalformedData, raw)
	}
}
