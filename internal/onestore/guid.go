package onestore

import (
	"fmt"

	"github.com/google/uuid"

	"onenotestore/internal/onefmt"
)

// Guid is a 128-bit identifier as it appears on the wire: the first three
// fields little-endian, the last two big-endian (the same mixed-endian
// layout Windows uses for GUID, not the all-big-endian RFC 4122 form).
type Guid struct {
	u uuid.UUID
}

// NilGuid is the all-zero GUID.
var NilGuid = Guid{}

// ParseGuid reads 16 bytes from r and reassembles them into the RFC 4122
// byte order uuid.UUID expects.
func ParseGuid(r *onefmt.ByteReader) (Guid, error) {
	b, err := r.ReadBytes(16)
	if err != nil {
		return Guid{}, fmt.Errorf("onestore: guid: %w", err)
	}
	var out [16]byte
	out[0], out[1], out[2], out[3] = b[3], b[2], b[1], b[0]
	out[4], out[5] = b[5], b[4]
	out[6], out[7] = b[7], b[6]
	copy(out[8:], b[8:16])
	return Guid{u: uuid.UUID(out)}, nil
}

// IsNil reports whether g is the all-zero GUID.
func (g Guid) IsNil() bool { return g.u == uuid.Nil }

// String renders the GUID in standard hyphenated hex form.
func (g Guid) String() string { return g.u.String() }

// MarshalText implements encoding.TextMarshaler.
func (g Guid) MarshalText() ([]byte, error) { return g.u.MarshalText() }

// Equal reports whether g and other identify the same GUID.
func (g Guid) Equal(other Guid) bool { return g.u == other.u }

// MarshalBinaryWire renders g back into the 16-byte mixed-endian wire
// encoding ParseGuid reads, the inverse of ParseGuid.
func (g Guid) MarshalBinaryWire() ([]byte, error) {
	b := g.u[:]
	out := make([]byte, 16)
	out[0], out[1], out[2], out[3] = b[3], b[2], b[1], b[0]
	out[4], out[5] = b[5], b[4]
	out[6], out[7] = b[7], b[6]
	copy(out[8:], b[8:16])
	return out, nil
}

// MustParseGuidString parses a hyphenated GUID literal, e.g. a well-known
// GUID constant. Panics on malformed input; only for use with literals.
func MustParseGuidString(s string) Guid {
	return Guid{u: uuid.MustParse(s)}
}
