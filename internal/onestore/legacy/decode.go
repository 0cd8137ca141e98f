package legacy

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// File node IDs this decoder recognizes (MS-ONESTORE 2.4.3's FileNodeID
// enumeration is much larger; these are the ones needed to reassemble
// object spaces, global ID tables, and root references).
//
// The five object-space-tree IDs below (ObjectSpaceManifestRootFND through
// ObjectGroupListReferenceFND) have no grounding file in the retrieval
// corpus this decoder was otherwise built from (the upstream project's
// legacy one_store_file.rs/parse.rs/objects.rs were not included); their
// numeric values are self-assigned in the same traceable-but-not-canonical
// style as proptype.go's 0x43-0x56 continuation, derived from the public
// MS-ONESTORE 2.4.3 FileNodeID table rather than a pack example.
const (
	fnidGlobalIdTableStart  = 0x021
	fnidGlobalIdTableEntry  = 0x022
	fnidGlobalIdTableEntry2 = 0x023
	fnidGlobalIdTableEntry3 = 0x024

	fnidObjectDeclaration    = 0x0C2
	fnidRootObjectReference2 = 0x059
	fnidRootObjectReference3 = 0x05A

	fnidObjectSpaceManifestRootFND          = 0x004
	fnidObjectSpaceManifestListReferenceFND = 0x008
	fnidObjectSpaceManifestListStartFND     = 0x00C
	fnidRevisionManifestListReferenceFND    = 0x010
	fnidObjectGroupListReferenceFND         = 0x041
)

// spaceBuilder accumulates one object space's declared objects and root
// references while its revision manifest list (and any object group lists
// it references) are being walked.
type spaceBuilder struct {
	space   *onestore.InMemoryObjectSpace
	roleMap map[onestore.RevisionRole]onestore.ExGuid
}

// decodeCtx carries the state shared across the whole recursive
// object-space-tree walk: the file, the single file-lifetime global ID
// table (legacy dialect has no per-space reset point in this decoder, same
// simplification globalidtable.go already documents), a step budget
// covering every fragment of every nested list, and the discovered spaces.
type decodeCtx struct {
	file      *onefmt.ByteReader
	idMapping *IdMapping
	maxSteps  int
	steps     int
	spaces    map[onestore.ExGuid]*spaceBuilder
	rootGosid onestore.ExGuid
}

func (c *decodeCtx) step() error {
	c.steps++
	if c.steps > c.maxSteps {
		return fmt.Errorf("%w: legacy: object space tree exceeded %d steps (likely cyclic)", onestore.ErrMalformedFileData, c.maxSteps)
	}
	return nil
}

func (c *decodeCtx) spaceFor(gosid onestore.ExGuid) *spaceBuilder {
	sb, ok := c.spaces[gosid]
	if !ok {
		sb = &spaceBuilder{
			space:   onestore.NewInMemoryObjectSpace(onestore.NilExGuid, onestore.NilExGuid, c.idMapping),
			roleMap: make(map[onestore.RevisionRole]onestore.ExGuid),
		}
		c.spaces[gosid] = sb
	}
	return sb
}

// decodeList walks one file-node-list (the root list, an object space
// manifest list, a revision manifest list, or an object group list) and
// recurses into any BaseTypeChildList node it finds. active is the object
// space the list's direct object declarations and root references belong
// to; it starts nil for lists whose owning gosid is declared partway
// through (object space manifest lists) and is resolved to the file's nil
// context on first use if no ObjectSpaceManifestListStartFND ever appears,
// matching this decoder's behavior before object-space nesting existed.
func decodeList(c *decodeCtx, ref onestore.FileChunkReference, active *spaceBuilder) error {
	if err := c.step(); err != nil {
		return err
	}
	return WalkFileNodeList(c.file, ref, c.maxSteps, func(n FileNode) error {
		switch n.ID {
		case fnidGlobalIdTableStart:
			// no state to reset: IdMapping accumulates for the file's
			// lifetime, consistent with "applied in file order, later
			// entries overwrite earlier ones".
			return nil

		case fnidGlobalIdTableEntry:
			e, err := ParseGlobalIdTableEntryFNDX(onefmt.NewReader(n.Inline))
			if err != nil {
				return err
			}
			c.idMapping.Add(e)
			return nil

		case fnidGlobalIdTableEntry2:
			e, err := ParseGlobalIdTableEntry2FNDX(onefmt.NewReader(n.Inline))
			if err != nil {
				return err
			}
			c.idMapping.Remap(e)
			return nil

		case fnidGlobalIdTableEntry3:
			e, err := ParseGlobalIdTableEntry3FNDX(onefmt.NewReader(n.Inline))
			if err != nil {
				return err
			}
			c.idMapping.CopyRun(e)
			return nil

		case fnidObjectDeclaration:
			if active == nil {
				active = c.spaceFor(onestore.NilExGuid)
			}
			obj, err := decodeObjectDeclaration(n.Inline, c.idMapping)
			if err != nil {
				return err
			}
			active.space.Put(obj)
			return nil

		case fnidRootObjectReference2:
			ref, err := ParseRootObjectReference2FNDX(onefmt.NewReader(n.Inline))
			if err != nil {
				return err
			}
			target, err := c.idMapping.Resolve(ref.OidRoot)
			if err != nil {
				return fmt.Errorf("legacy: root object reference2: %w", err)
			}
			role, err := onestore.RevisionRoleFromTag(ref.RootRole)
			if err != nil {
				return err
			}
			if active == nil {
				active = c.spaceFor(onestore.NilExGuid)
			}
			active.roleMap[role] = target
			return nil

		case fnidRootObjectReference3:
			ref, err := ParseRootObjectReference3FND(onefmt.NewReader(n.Inline), nil)
			if err != nil {
				return err
			}
			role, err := onestore.RevisionRoleFromTag(ref.RootRole)
			if err != nil {
				return err
			}
			if active == nil {
				active = c.spaceFor(onestore.NilExGuid)
			}
			active.roleMap[role] = ref.OidRoot
			return nil

		case fnidObjectSpaceManifestRootFND:
			root, err := ParseObjectSpaceManifestRootFND(onefmt.NewReader(n.Inline))
			if err != nil {
				return err
			}
			c.rootGosid = root.Gosid
			return nil

		case fnidObjectSpaceManifestListReferenceFND:
			// The referenced list's own ObjectSpaceManifestListStartFND
			// names its gosid; active is unknown until that node is seen.
			return decodeList(c, n.DataRef, nil)

		case fnidObjectSpaceManifestListStartFND:
			start, err := ParseObjectSpaceManifestListStartFND(onefmt.NewReader(n.Inline))
			if err != nil {
				return err
			}
			active = c.spaceFor(start.Gosid)
			return nil

		case fnidRevisionManifestListReferenceFND, fnidObjectGroupListReferenceFND:
			return decodeList(c, n.DataRef, active)

		default:
			// Unrecognized node kinds (file-structure bookkeeping this
			// decoder does not need to reproduce the object graph) are
			// skipped rather than rejected.
			return nil
		}
	})
}

// Decode parses a complete legacy container buffer into a dialect-neutral
// onestore.Store. opts bounds traversal of the file-node-list fragment
// chain and the object-space tree it roots.
func Decode(data []byte, opts onefmt.Options) (*onestore.Store, error) {
	file := onefmt.NewReader(data)

	hdr, err := ParseHeader(file)
	if err != nil {
		return nil, err
	}

	c := &decodeCtx{
		file:      file,
		idMapping: NewIdMapping(),
		maxSteps:  opts.EffectiveMaxSteps(),
		spaces:    make(map[onestore.ExGuid]*spaceBuilder),
	}
	if err := decodeList(c, hdr.RootFileNodeList, nil); err != nil {
		return nil, err
	}
	if len(c.spaces) == 0 {
		// No object declarations at all (an empty or header-only file):
		// still hand back a well-formed, if contentless, nil-keyed space.
		c.spaceFor(onestore.NilExGuid)
	}

	spaces := make(map[onestore.ExGuid]onestore.ObjectSpace, len(c.spaces))
	rootRoleMap := make(map[onestore.RevisionRole]onestore.ExGuid)
	for gosid, sb := range c.spaces {
		content := sb.roleMap[onestore.RevisionRoleDefaultContent]
		meta := sb.roleMap[onestore.RevisionRoleMetadata]
		sb.space.SetRoots(content, meta)
		spaces[gosid] = sb.space
		if gosid == c.rootGosid {
			rootRoleMap = sb.roleMap
		}
	}

	store := &onestore.Store{
		ObjectSpaces:    spaces,
		RootObjectSpace: c.rootGosid,
		RootRoleMap:     rootRoleMap,
	}
	return store, nil
}

// Kind reports which legacy file kind the decoded header carried; package
// container uses it to recognize the legacy dialect.
func Kind(data []byte) (FileKind, error) {
	hdr, err := ParseHeader(onefmt.NewReader(data))
	if err != nil {
		return FileKindUnknown, err
	}
	return hdr.Kind, nil
}

// decodeObjectDeclaration reads an inline-encoded object declaration body:
// the object's own ExGuid, its jcid, and its property set.
func decodeObjectDeclaration(inline []byte, mapping *IdMapping) (*onestore.Object, error) {
	r := onefmt.NewReader(inline)

	oid, err := onestore.ParseCompactId(r)
	if err != nil {
		return nil, fmt.Errorf("legacy: object declaration: oid: %w", err)
	}
	id, err := mapping.Resolve(oid)
	if err != nil {
		return nil, fmt.Errorf("legacy: object declaration: %w", err)
	}

	jcidRaw, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("legacy: object declaration: jcid: %w", err)
	}

	props, err := onestore.ParsePropertySet(r)
	if err != nil {
		return nil, fmt.Errorf("legacy: object declaration: property set: %w", err)
	}

	return &onestore.Object{ID: id, Jcid: onestore.JcId(jcidRaw), Props: props}, nil
}
