package onestore

import (
	"fmt"

	"onenotestore/internal/onefmt"
)

// CompactId is a 32-bit identifier local to an object-space mapping table:
// the low 24 bits are an index n, the high 8 bits select a Guid from the
// table. It resolves to an ExGuid through MappingTable.Resolve.
type CompactId struct {
	N         uint32
	GuidIndex uint8
}

// NilCompactId is the null compact id (n == 0, guid_index == 0); it never
// resolves.
var NilCompactId = CompactId{}

// IsNil reports whether c is the null compact id.
func (c CompactId) IsNil() bool { return c.N == 0 && c.GuidIndex == 0 }

// ParseCompactId reads one little-endian u32 and splits it into its n and
// guid_index fields.
func ParseCompactId(r *onefmt.ByteReader) (CompactId, error) {
	v, err := r.ReadU32()
	if err != nil {
		return CompactId{}, fmt.Errorf("onestore: compact id: %w", err)
	}
	return CompactId{N: v & 0x00FFFFFF, GuidIndex: uint8(v >> 24)}, nil
}

// compactU64 width tags: the low 2 bits of the first byte select the total
// encoded width (including the tag byte) and how many value bits remain.
const (
	compactU64Width1 = 0 // 1 byte total, 6 value bits
	compactU64Width2 = 1 // 2 bytes total, 14 value bits
	compactU64Width4 = 2 // 4 bytes total, 30 value bits
	compactU64Width9 = 3 // 9 bytes total, 64 value bits (tag byte carries no value bits)
)

// ParseCompactU64 decodes a variable-length unsigned integer whose encoded
// width is selected by the low 2 bits of its first byte. A decoded value of
// exactly 0 from the 1-byte form is the "absent" sentinel used by some
// callers; ParseCompactU64 itself always returns the raw decoded value.
func ParseCompactU64(r *onefmt.ByteReader) (uint64, error) {
	first, err := r.ReadU8()
	if err != nil {
		return 0, fmt.Errorf("onestore: compact u64: %w", err)
	}
	switch first & 0x03 {
	case compactU64Width1:
		return uint64(first >> 2), nil
	case compactU64Width2:
		rest, rerr := r.ReadU8()
		if rerr != nil {
			return 0, fmt.Errorf("onestore: compact u64: %w", rerr)
		}
		v := uint64(first>>2) | uint64(rest)<<6
		return v, nil
	case compactU64Width4:
		rest, rerr := r.ReadBytes(3)
		if rerr != nil {
			return 0, fmt.Errorf("onestore: compact u64: %w", rerr)
		}
		v := uint64(first >> 2)
		for i, b := range rest {
			v |= uint64(b) << (6 + 8*i)
		}
		return v, nil
	case compactU64Width9:
		rest, rerr := r.ReadBytes(8)
		if rerr != nil {
			return 0, fmt.Errorf("onestore: compact u64: %w", rerr)
		}
		var v uint64
		for i, b := range rest {
			v |= uint64(b) << (8 * i)
		}
		return v, nil
	default:
		// unreachable: first&0x03 only has the four cases above
		return 0, fmt.Errorf("%w: compact u64: impossible width tag", ErrMalformedFileData)
	}
}

// EncodeCompactU64 encodes v using the narrowest width that fits, the
// inverse of ParseCompactU64.
func EncodeCompactU64(v uint64) []byte {
	switch {
	case v < 1<<6:
		return []byte{byte(v<<2) | compactU64Width1}
	case v < 1<<14:
		return []byte{byte(v<<2) | compactU64Width2, byte(v >> 6)}
	case v < 1<<30:
		out := []byte{byte(v<<2) | compactU64Width4, 0, 0, 0}
		rem := v >> 6
		out[1] = byte(rem)
		out[2] = byte(rem >> 8)
		out[3] = byte(rem >> 16)
		return out
	default:
		out := make([]byte, 9)
		out[0] = compactU64Width9
		for i := 0; i < 8; i++ {
			out[1+i] = byte(v >> (8 * i))
		}
		return out
	}
}
