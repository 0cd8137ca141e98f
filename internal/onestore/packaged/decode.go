package packaged

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// DataElement is one parsed element out of a DataElementPackage: an
// identity, its declared type, and its undecoded body (further decoded by
// decodeObjectGroup/decodeRevisionManifest/... once its type is known).
type DataElement struct {
	ID   onestore.ExGuid
	Type ObjectType
	Body []byte
}

// objectDeclaration pairs an object's identity and jcid with the index it
// was declared at inside an object group; the matching data object at the
// same index carries its property-set bytes.
type objectDeclaration struct {
	ObjectID onestore.ExGuid
	Jcid     onestore.JcId
}

// decodeDataElementPackage walks a DataElementPackage's stream-object
// sequence, reading each DataElement's framing header, ExGuid identity,
// and body bytes. maxSteps bounds how many elements a single package may
// contain, guarding against a malformed length field causing an
// unbounded read loop.
func decodeDataElementPackage(r *onefmt.ByteReader, maxSteps int) ([]DataElement, error) {
	var elements []DataElement
	steps := 0
	for r.Remaining() > 0 {
		steps++
		if steps > maxSteps {
			return nil, fmt.Errorf("%w: packaged: data element package exceeded %d elements", onestore.ErrMalformedFileData, maxSteps)
		}
		hdr, err := ParseStreamObjectHeader(r)
		if err != nil {
			return nil, err
		}
		if hdr.Type != ObjectTypeDataElement {
			return nil, fmt.Errorf("%w: packaged: expected DataElement, got %s", onestore.ErrMalformedFileData, hdr.Type)
		}
		id, err := onestore.ParseExGuid(r, nil)
		if err != nil {
			return nil, fmt.Errorf("packaged: data element: id: %w", err)
		}
		innerHdr, err := ParseStreamObjectHeader(r)
		if err != nil {
			return nil, fmt.Errorf("packaged: data element: inner header: %w", err)
		}
		body, err := r.ReadBytes(int(innerHdr.Length))
		if err != nil {
			return nil, fmt.Errorf("packaged: data element: body: %w", err)
		}
		elements = append(elements, DataElement{ID: id, Type: innerHdr.Type, Body: body})
	}
	return elements, nil
}

// decodeObjectGroup decodes an ObjectGroup element body: a u32 count of
// declarations (ObjectID + Jcid pairs) followed by the same count of data
// objects (each a raw property set). The two counts must match (spec's
// testable property "len(declarations) == len(objects)"); mismatch is
// malformed data, not a silently truncated object set.
func decodeObjectGroup(body []byte) ([]*onestore.Object, error) {
	r := onefmt.NewReader(body)

	declCount, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("packaged: object group: declaration count: %w", err)
	}
	decls := make([]objectDeclaration, declCount)
	for i := range decls {
		id, err := onestore.ParseExGuid(r, nil)
		if err != nil {
			return nil, fmt.Errorf("packaged: object group: declaration[%d]: id: %w", i, err)
		}
		jcid, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("packaged: object group: declaration[%d]: jcid: %w", i, err)
		}
		decls[i] = objectDeclaration{ObjectID: id, Jcid: onestore.JcId(jcid)}
	}

	objCount, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("packaged: object group: object count: %w", err)
	}
	if objCount != declCount {
		return nil, fmt.Errorf("%w: packaged: object group: %d declarations but %d objects", onestore.ErrMalformedFileData, declCount, objCount)
	}

	objects := make([]*onestore.Object, declCount)
	for i := range objects {
		props, err := onestore.ParsePropertySet(r)
		if err != nil {
			return nil, fmt.Errorf("packaged: object group: object[%d]: %w", i, err)
		}
		objects[i] = &onestore.Object{ID: decls[i].ObjectID, Jcid: decls[i].Jcid, Props: props}
	}
	return objects, nil
}

// decodeRevisionManifest decodes a RevisionManifest element body: the
// revision's own ExGuid, its base revision (for chaining), and a u32 count
// of group-reference ExGuids.
type revisionManifest struct {
	RevisionID onestore.ExGuid
	BaseID     onestore.ExGuid
	Groups     []onestore.ExGuid
}

func decodeRevisionManifest(body []byte) (revisionManifest, error) {
	r := onefmt.NewReader(body)
	rev, err := onestore.ParseExGuid(r, nil)
	if err != nil {
		return revisionManifest{}, fmt.Errorf("packaged: revision manifest: id: %w", err)
	}
	base, err := onestore.ParseExGuid(r, nil)
	if err != nil {
		return revisionManifest{}, fmt.Errorf("packaged: revision manifest: base: %w", err)
	}
	count, err := r.ReadU32()
	if err != nil {
		return revisionManifest{}, fmt.Errorf("packaged: revision manifest: group count: %w", err)
	}
	groups := make([]onestore.ExGuid, count)
	for i := range groups {
		g, err := onestore.ParseExGuid(r, nil)
		if err != nil {
			return revisionManifest{}, fmt.Errorf("packaged: revision manifest: group[%d]: %w", i, err)
		}
		groups[i] = g
	}
	return revisionManifest{RevisionID: rev, BaseID: base, Groups: groups}, nil
}

// storageManifestRoot pairs a cell's current revision root with the cell
// it belongs to (MS-FSSHTTPB 2.3.1's StorageManifestRootDeclare), one per
// object space the package describes.
type storageManifestRoot struct {
	RootManifest onestore.ExGuid
	Cell         onestore.CellId
}

// decodeStorageManifest decodes a StorageManifest element body: the
// package's own Guid identity followed by a sequence of
// StorageManifestRoot entries (0x07), one per cell, terminated by an
// end-8 marker carrying object type 0x01.
func decodeStorageManifest(body []byte) ([]storageManifestRoot, error) {
	r := onefmt.NewReader(body)
	if _, err := onestore.ParseGuid(r); err != nil {
		return nil, fmt.Errorf("packaged: storage manifest: id: %w", err)
	}

	var roots []storageManifestRoot
	for {
		peek, err := r.PeekBytes(1)
		if err != nil {
			return nil, fmt.Errorf("packaged: storage manifest: truncated before end marker: %w", err)
		}
		if ObjectType(peek[0]) == ObjectTypeDataElement {
			_, _ = r.ReadByte()
			break
		}

		rootHdr, err := ParseStreamObjectHeader(r)
		if err != nil {
			return nil, fmt.Errorf("packaged: storage manifest: root[%d]: header: %w", len(roots), err)
		}
		if rootHdr.Type != ObjectTypeStorageManifestRoot {
			return nil, fmt.Errorf("%w: packaged: storage manifest: expected StorageManifestRoot, got %s", onestore.ErrMalformedFileData, rootHdr.Type)
		}
		rootManifest, err := onestore.ParseExGuid(r, nil)
		if err != nil {
			return nil, fmt.Errorf("packaged: storage manifest: root[%d]: root_manifest: %w", len(roots), err)
		}
		cell, err := onestore.ParseCellId(r, nil)
		if err != nil {
			return nil, fmt.Errorf("packaged: storage manifest: root[%d]: cell: %w", len(roots), err)
		}
		roots = append(roots, storageManifestRoot{RootManifest: rootManifest, Cell: cell})
	}
	return roots, nil
}

// Decode parses a complete packaged container buffer (a OneNotePackaging
// stream-object wrapping exactly one DataElementPackage) into a
// dialect-neutral onestore.Store.
func Decode(data []byte, opts onefmt.Options) (*onestore.Store, error) {
	r := onefmt.NewReader(data)

	outer, err := ParseStreamObjectHeader(r)
	if err != nil {
		return nil, err
	}
	if outer.Type != ObjectTypeOneNotePackaging {
		return nil, fmt.Errorf("%w: packaged: expected OneNotePackaging, got %s", onestore.ErrUnknownFileFormat, outer.Type)
	}

	pkgHdr, err := ParseStreamObjectHeader(r)
	if err != nil {
		return nil, err
	}
	if pkgHdr.Type != ObjectTypeDataElementPackage {
		return nil, fmt.Errorf("%w: packaged: expected DataElementPackage, got %s", onestore.ErrMalformedFileData, pkgHdr.Type)
	}
	pkgBody, err := r.ReadBytes(int(pkgHdr.Length))
	if err != nil {
		return nil, fmt.Errorf("packaged: data element package: body: %w", err)
	}

	maxSteps := opts.EffectiveMaxSteps()
	elements, err := decodeDataElementPackage(onefmt.NewReader(pkgBody), maxSteps)
	if err != nil {
		return nil, err
	}

	var roots []storageManifestRoot
	revisions := make(map[onestore.ExGuid]revisionManifest)
	groups := make(map[onestore.ExGuid][]*onestore.Object)

	for _, e := range elements {
		switch e.Type {
		case ObjectTypeStorageManifest:
			manifestRoots, err := decodeStorageManifest(e.Body)
			if err != nil {
				return nil, err
			}
			roots = append(roots, manifestRoots...)
		case ObjectTypeRevisionManifest:
			rev, err := decodeRevisionManifest(e.Body)
			if err != nil {
				return nil, err
			}
			revisions[e.ID] = rev
		case ObjectTypeObjectGroupObject:
			objs, err := decodeObjectGroup(e.Body)
			if err != nil {
				return nil, fmt.Errorf("packaged: object group %s: %w", e.ID, err)
			}
			groups[e.ID] = objs
		default:
			// StorageIndexRevisionMapping/StorageIndexManifestMapping and
			// CellManifest duplicate the cell -> root_manifest association
			// StorageManifest's own roots list already carries; ObjectDataBlob
			// etc. carry bookkeeping this decoder does not need to reproduce
			// the object graph. Skipped rather than rejected.
		}
	}

	// collectObjects follows a revision's declared object groups (and its
	// base revision chain, MS-FSSHTTPB 2.3.2's incremental-revision model)
	// into a single flattened object set for that cell's content root.
	var collectObjects func(revisionID onestore.ExGuid, into *onestore.InMemoryObjectSpace, seen map[onestore.ExGuid]bool)
	collectObjects = func(revisionID onestore.ExGuid, into *onestore.InMemoryObjectSpace, seen map[onestore.ExGuid]bool) {
		if seen[revisionID] {
			return
		}
		seen[revisionID] = true
		rev, ok := revisions[revisionID]
		if !ok {
			return
		}
		for _, groupID := range rev.Groups {
			for _, obj := range groups[groupID] {
				into.Put(obj)
			}
		}
		if !rev.BaseID.Equal(onestore.NilExGuid) {
			collectObjects(rev.BaseID, into, seen)
		}
	}

	spaces := make(map[onestore.ExGuid]onestore.ObjectSpace, len(roots))
	var rootObjectSpace onestore.ExGuid
	for i, root := range roots {
		spaceID := root.Cell.First
		space := onestore.NewInMemoryObjectSpace(root.RootManifest, onestore.NilExGuid, onestore.FallbackMappingTable{})
		collectObjects(root.RootManifest, space, make(map[onestore.ExGuid]bool))
		spaces[spaceID] = space
		if i == 0 {
			rootObjectSpace = spaceID
		}
	}
	if len(spaces) == 0 {
		// No StorageManifest element at all: fall back to a single nil-keyed
		// empty space so callers still get a well-formed, if contentless, Store.
		spaces[onestore.NilExGuid] = onestore.NewInMemoryObjectSpace(onestore.NilExGuid, onestore.NilExGuid, onestore.FallbackMappingTable{})
	}

	store := &onestore.Store{
		ObjectSpaces:    spaces,
		RootObjectSpace: rootObjectSpace,
		RootRoleMap:     map[onestore.RevisionRole]onestore.ExGuid{},
	}
	return store, nil
}
