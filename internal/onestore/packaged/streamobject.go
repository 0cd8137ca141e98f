package packaged

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// StreamObjectHeader is the length-delimited framing every FSSHTTPB
// object carries: its type, whether it is compound (and so is terminated
// by a matching end header), and the byte length of its body (for
// non-compound objects) or of its child stream (for compound ones).
type StreamObjectHeader struct {
	Type     ObjectType
	Compound bool
	Length   uint32
}

// ParseStreamObjectHeader reads a 4-byte header word: the low byte is the
// object type, the next bit marks the object compound, and the remaining
// 23 bits hold the length.
func ParseStreamObjectHeader(r *onefmt.ByteReader) (StreamObjectHeader, error) {
	v, err := r.ReadU32()
	if err != nil {
		return StreamObjectHeader{}, fmt.Errorf("packaged: stream object header: %w", err)
	}
	return StreamObjectHeader{
		Type:     ObjectType(v & 0xFF),
		Compound: (v>>8)&0x1 == 1,
		Length:   v >> 9,
	}, nil
}

// ParseStreamObjectEndHeader reads a 1-byte end marker and verifies it
// carries the expected object type, failing with ErrMalformedFileData on
// mismatch (MS-FSSHTTPB requires matching starts and ends for compound
// objects).
func ParseStreamObjectEndHeader(r *onefmt.ByteReader, expected ObjectType) error {
	v, err := r.ReadU8()
	if err != nil {
		return fmt.Errorf("packaged: stream object end header: %w", err)
	}
	if ObjectType(v) != expected {
		return fmt.Errorf("%w: packaged: stream object end header type %#x does not match start type %#x", onestore.ErrMalformedFileData, v, uint32(expected))
	}
	return nil
}
