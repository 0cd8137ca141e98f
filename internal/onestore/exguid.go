package onestore

import (
	"fmt"

	"onenotestore/internal/onefmt"
)

// ExGuid is a Guid paired with a 32-bit disambiguator. Two ExGuids with the
// same Guid but different N identify distinct objects.
type ExGuid struct {
	Guid Guid
	N    uint32
}

// NilExGuid is the zero ExGuid, meaning "no object".
var NilExGuid = ExGuid{}

// IsNil reports whether e is the zero ExGuid.
func (e ExGuid) IsNil() bool { return e.N == 0 && e.Guid.IsNil() }

// Equal reports whether e and other identify the same object.
func (e ExGuid) Equal(other ExGuid) bool { return e.N == other.N && e.Guid.Equal(other.Guid) }

func (e ExGuid) String() string {
	if e.IsNil() {
		return "ExGuid(nil)"
	}
	return fmt.Sprintf("ExGuid(%s, %d)", e.Guid.String(), e.N)
}

// GuidTable holds the Guids a stream's compact ExGuid encoding shares by
// index, keyed by the 7-bit index carried in each non-null branch.
type GuidTable struct {
	entries map[uint8]Guid
}

// NewGuidTable returns an empty table.
func NewGuidTable() *GuidTable {
	return &GuidTable{entries: make(map[uint8]Guid)}
}

// Put records g under index.
func (t *GuidTable) Put(index uint8, g Guid) {
	t.entries[index] = g
}

// Get looks up the Guid stored under index.
func (t *GuidTable) Get(index uint8) (Guid, bool) {
	g, ok := t.entries[index]
	return g, ok
}

// Tag byte branches for the compact ExGuid encoding. The low 3 bits select
// the branch; branches 1-4 are followed by a guid-index byte and then an
// n-value of widening size.
const (
	exGuidBranchNull = 0
	exGuidBranchN5   = 1 // n stored in 1 byte
	exGuidBranchN10  = 2 // n stored in 2 bytes
	exGuidBranchN17  = 3 // n stored in 3 bytes
	exGuidBranchN32  = 4 // n stored in 4 bytes

	// guidIndexInline is the reserved all-ones 7-bit guid-index value that
	// signals an inline 16-byte Guid follows instead of a table lookup.
	guidIndexInline = 0x7F
)

// ParseExGuid decodes an ExGuid per the five-branch compact encoding: a
// 1-byte tag selects null, or one of four widening n-widths (1/2/3/4 bytes),
// each followed by a 7-bit guid-index byte that is either a lookup into
// table or, when it carries the reserved all-ones value, signals an inline
// 16-byte Guid read after the n value.
func ParseExGuid(r *onefmt.ByteReader, table *GuidTable) (ExGuid, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return ExGuid{}, fmt.Errorf("onestore: exguid: %w", err)
	}

	branch := tag & 0x07
	if branch == exGuidBranchNull {
		return NilExGuid, nil
	}

	var nWidth int
	switch branch {
	case exGuidBranchN5:
		nWidth = 1
	case exGuidBranchN10:
		nWidth = 2
	case exGuidBranchN17:
		nWidth = 3
	case exGuidBranchN32:
		nWidth = 4
	default:
		return ExGuid{}, fmt.Errorf("%w: exguid: unrecognized tag branch %#x", ErrMalformedFileData, branch)
	}

	guidIndexByte, err := r.ReadU8()
	if err != nil {
		return ExGuid{}, fmt.Errorf("onestore: exguid: guid index: %w", err)
	}
	guidIndex := guidIndexByte & 0x7F

	nBytes, err := r.ReadBytes(nWidth)
	if err != nil {
		return ExGuid{}, fmt.Errorf("onestore: exguid: n value: %w", err)
	}
	var n uint32
	for i, b := range nBytes {
		n |= uint32(b) << (8 * i)
	}

	if guidIndex == guidIndexInline {
		g, gerr := ParseGuid(r)
		if gerr != nil {
			return ExGuid{}, fmt.Errorf("onestore: exguid: inline guid: %w", gerr)
		}
		return ExGuid{Guid: g, N: n}, nil
	}

	if table == nil {
		return ExGuid{}, fmt.Errorf("%w: exguid: shared guid index %d with no table", ErrResolutionFailed, guidIndex)
	}
	g, ok := table.Get(guidIndex)
	if !ok {
		return ExGuid{}, fmt.Errorf("%w: exguid: guid index %d not in table", ErrResolutionFailed, guidIndex)
	}
	return ExGuid{Guid: g, N: n}, nil
}

// EncodeExGuidInline encodes e using the 32-bit n-width branch with an
// inline Guid, the simplest always-valid round-trip encoding. Used by
// tests and by writers that do not maintain a shared guid table.
func EncodeExGuidInline(e ExGuid) []byte {
	if e.IsNil() {
		return []byte{exGuidBranchNull}
	}
	out := make([]byte, 0, 1+1+4+16)
	out = append(out, exGuidBranchN32)
	out = append(out, guidIndexInline)
	var nb [4]byte
	for i := range nb {
		nb[i] = byte(e.N >> (8 * i))
	}
	out = append(out, nb[:]...)
	gb, _ := e.Guid.MarshalBinaryWire()
	out = append(out, gb...)
	return out
}
