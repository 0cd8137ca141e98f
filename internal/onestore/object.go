package onestore

import "fmt"

// JcId ("jet compact identifier") designates the schema of a property set.
// The semantic object model in package one maps known values to named
// PropertySetId constants; this package only carries the raw identifier.
type JcId uint32

// FileBlob is a shared, immutable byte buffer attached to objects whose
// jcid carries raw binary payloads (images, embedded files, ink). Multiple
// objects may point at the same FileBlob; Go's garbage collector handles
// the sharing Rc<Vec<u8>> needs explicit reference counting for in the
// source material.
type FileBlob struct {
	data []byte
}

// NewFileBlob wraps data, which must not be modified afterward.
func NewFileBlob(data []byte) *FileBlob { return &FileBlob{data: data} }

// Bytes returns the blob's contents.
func (b *FileBlob) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the blob's length, or 0 for a nil blob.
func (b *FileBlob) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Object is the core decoded unit: an identity, a schema selector, its
// decoded property table, and an optional attached file blob.
type Object struct {
	ID       ExGuid
	Jcid     JcId
	Props    PropertySet
	FileData *FileBlob
}

// MappingTable resolves a CompactId local to one object space's context
// into the ExGuid it stands for.
type MappingTable interface {
	Resolve(c CompactId) (ExGuid, error)
}

// FallbackMappingTable always fails resolution; it is used for object
// spaces that genuinely have no mapping context, which legitimately occurs
// for some packaged-dialect spaces.
type FallbackMappingTable struct{}

// Resolve always reports ErrResolutionFailed.
func (FallbackMappingTable) Resolve(c CompactId) (ExGuid, error) {
	return ExGuid{}, fmt.Errorf("%w: guid index %d (no mapping table for this object space)", ErrResolutionFailed, c.GuidIndex)
}

// simpleMappingTable is a concrete, in-memory MappingTable filled entry by
// entry through Put. Neither container decoder builds one: legacy resolves
// ids through its IdMapping and packaged uses FallbackMappingTable.
type simpleMappingTable struct {
	entries map[CompactId]ExGuid
}

// NewMappingTable returns an empty, writable mapping table.
func NewMappingTable() *simpleMappingTable {
	return &simpleMappingTable{entries: make(map[CompactId]ExGuid)}
}

// Put records that c resolves to target.
func (m *simpleMappingTable) Put(c CompactId, target ExGuid) {
	m.entries[c] = target
}

// Resolve implements MappingTable.
func (m *simpleMappingTable) Resolve(c CompactId) (ExGuid, error) {
	if c.IsNil() {
		return ExGuid{}, fmt.Errorf("%w: null compact id never resolves", ErrResolutionFailed)
	}
	g, ok := m.entries[c]
	if !ok {
		return ExGuid{}, fmt.Errorf("%w: guid index %d, n %d", ErrResolutionFailed, c.GuidIndex, c.N)
	}
	return g, nil
}

// ObjectSpace is a namespace of related objects within a revision. Both
// container dialects produce values satisfying this interface from their
// own internal structures, so the rest of the decoder never branches on
// dialect again after L3/L4.
type ObjectSpace interface {
	GetObject(id ExGuid) (*Object, bool)
	ContentRoot() ExGuid
	MetadataRoot() ExGuid
	Mapping() MappingTable
}

// InMemoryObjectSpace is the concrete ObjectSpace both the legacy and
// packaged decoders build: a flat map of decoded objects plus the two
// well-known roots and a mapping table.
type InMemoryObjectSpace struct {
	Objects      map[ExGuid]*Object
	contentRoot  ExGuid
	metadataRoot ExGuid
	mapping      MappingTable
}

// NewInMemoryObjectSpace constructs a space with the given roots and
// mapping table (pass FallbackMappingTable{} when the space has none).
func NewInMemoryObjectSpace(contentRoot, metadataRoot ExGuid, mapping MappingTable) *InMemoryObjectSpace {
	if mapping == nil {
		mapping = FallbackMappingTable{}
	}
	return &InMemoryObjectSpace{
		Objects:      make(map[ExGuid]*Object),
		contentRoot:  contentRoot,
		metadataRoot: metadataRoot,
		mapping:      mapping,
	}
}

// Put records o under its own ID.
func (s *InMemoryObjectSpace) Put(o *Object) { s.Objects[o.ID] = o }

// SetRoots overwrites the space's content/metadata roots. Legacy-dialect
// decoding discovers a space's roots (its RootObjectReference entries) only
// after constructing the space to hold its object declarations, so roots
// are filled in once the whole revision manifest list has been walked.
func (s *InMemoryObjectSpace) SetRoots(contentRoot, metadataRoot ExGuid) {
	s.contentRoot = contentRoot
	s.metadataRoot = metadataRoot
}

// GetObject implements ObjectSpace.
func (s *InMemoryObjectSpace) GetObject(id ExGuid) (*Object, bool) {
	o, ok := s.Objects[id]
	return o, ok
}

// ContentRoot implements ObjectSpace.
func (s *InMemoryObjectSpace) ContentRoot() ExGuid { return s.contentRoot }

// MetadataRoot implements ObjectSpace.
func (s *InMemoryObjectSpace) MetadataRoot() ExGuid { return s.metadataRoot }

// Mapping implements ObjectSpace.
func (s *InMemoryObjectSpace) Mapping() MappingTable { return s.mapping }
