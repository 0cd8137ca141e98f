package legacy

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// GlobalIdTableStartFNDX marks the start of a new global ID table run; its
// single reserved byte carries no information the decoder needs.
type GlobalIdTableStartFNDX struct{}

// ParseGlobalIdTableStartFNDX consumes the reserved byte.
func ParseGlobalIdTableStartFNDX(r *onefmt.ByteReader) (GlobalIdTableStartFNDX, error) {
	if _, err := r.ReadU8(); err != nil {
		return GlobalIdTableStartFNDX{}, fmt.Errorf("legacy: global id table start: %w", err)
	}
	return GlobalIdTableStartFNDX{}, nil
}

// GlobalIdTableEntryFNDX directly assigns a Guid to an index.
type GlobalIdTableEntryFNDX struct {
	Index uint32
	Guid  onestore.Guid
}

// ParseGlobalIdTableEntryFNDX reads {index: u32, guid: Guid}.
func ParseGlobalIdTableEntryFNDX(r *onefmt.ByteReader) (GlobalIdTableEntryFNDX, error) {
	idx, err := r.ReadU32()
	if err != nil {
		return GlobalIdTableEntryFNDX{}, fmt.Errorf("legacy: global id table entry: index: %w", err)
	}
	g, err := onestore.ParseGuid(r)
	if err != nil {
		return GlobalIdTableEntryFNDX{}, fmt.Errorf("legacy: global id table entry: guid: %w", err)
	}
	return GlobalIdTableEntryFNDX{Index: idx, Guid: g}, nil
}

// GlobalIdTableEntry2FNDX copies whatever Guid is currently mapped at
// MapFrom onto MapTo.
type GlobalIdTableEntry2FNDX struct {
	MapFrom uint32
	MapTo   uint32
}

// ParseGlobalIdTableEntry2FNDX reads {i_index_map_from, i_index_map_to}.
func ParseGlobalIdTableEntry2FNDX(r *onefmt.ByteReader) (GlobalIdTableEntry2FNDX, error) {
	from, err := r.ReadU32()
	if err != nil {
		return GlobalIdTableEntry2FNDX{}, fmt.Errorf("legacy: global id table entry2: map from: %w", err)
	}
	to, err := r.ReadU32()
	if err != nil {
		return GlobalIdTableEntry2FNDX{}, fmt.Errorf("legacy: global id table entry2: map to: %w", err)
	}
	return GlobalIdTableEntry2FNDX{MapFrom: from, MapTo: to}, nil
}

// GlobalIdTableEntry3FNDX copies a run of Count consecutive entries
// starting at CopyFromStart onto the run starting at CopyToStart.
type GlobalIdTableEntry3FNDX struct {
	CopyFromStart uint32
	Count         uint32
	CopyToStart   uint32
}

// ParseGlobalIdTableEntry3FNDX reads {i_index_copy_from_start,
// c_entries_to_copy, i_index_copy_to_start}.
func ParseGlobalIdTableEntry3FNDX(r *onefmt.ByteReader) (GlobalIdTableEntry3FNDX, error) {
	from, err := r.ReadU32()
	if err != nil {
		return GlobalIdTableEntry3FNDX{}, fmt.Errorf("legacy: global id table entry3: copy from: %w", err)
	}
	count, err := r.ReadU32()
	if err != nil {
		return GlobalIdTableEntry3FNDX{}, fmt.Errorf("legacy: global id table entry3: count: %w", err)
	}
	to, err := r.ReadU32()
	if err != nil {
		return GlobalIdTableEntry3FNDX{}, fmt.Errorf("legacy: global id table entry3: copy to: %w", err)
	}
	return GlobalIdTableEntry3FNDX{CopyFromStart: from, Count: count, CopyToStart: to}, nil
}

// IdMapping accumulates global ID table fragments into index -> Guid,
// applied strictly in file-node-list traversal order; later entries
// overwrite earlier ones for the same index. Decode keeps a single
// IdMapping for the whole file: it is not reset at a GlobalIdTableStart
// node or per object space.
type IdMapping struct {
	entries map[uint32]onestore.Guid
}

// NewIdMapping returns an empty mapping.
func NewIdMapping() *IdMapping {
	return &IdMapping{entries: make(map[uint32]onestore.Guid)}
}

// Add records entry.Index -> entry.Guid directly.
func (m *IdMapping) Add(entry GlobalIdTableEntryFNDX) {
	m.entries[entry.Index] = entry.Guid
}

// Remap copies whatever is mapped at entry.MapFrom onto entry.MapTo. A
// MapFrom with no current entry is silently a no-op, matching "later
// entries overwrite earlier ones" with nothing to overwrite from.
func (m *IdMapping) Remap(entry GlobalIdTableEntry2FNDX) {
	if g, ok := m.entries[entry.MapFrom]; ok {
		m.entries[entry.MapTo] = g
	}
}

// CopyRun copies entry.Count consecutive entries starting at
// entry.CopyFromStart onto the run starting at entry.CopyToStart.
func (m *IdMapping) CopyRun(entry GlobalIdTableEntry3FNDX) {
	for i := uint32(0); i < entry.Count; i++ {
		if g, ok := m.entries[entry.CopyFromStart+i]; ok {
			m.entries[entry.CopyToStart+i] = g
		}
	}
}

// Resolve implements onestore.MappingTable: CompactId.GuidIndex looks up
// the Guid, paired with CompactId.N to form the ExGuid.
func (m *IdMapping) Resolve(c onestore.CompactId) (onestore.ExGuid, error) {
	g, ok := m.entries[uint32(c.GuidIndex)]
	if !ok {
		return onestore.ExGuid{}, fmt.Errorf("%w: legacy: guid index %d not in global id table", onestore.ErrResolutionFailed, c.GuidIndex)
	}
	return onestore.ExGuid{Guid: g, N: c.N}, nil
}
