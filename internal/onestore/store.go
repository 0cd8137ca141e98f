package onestore

import "fmt"

// revisionRoleGuid is the well-known Guid shared by every
// RootObjectReference's ExGuid; only the N field distinguishes the role.
var revisionRoleGuid = MustParseGuidString("4A3717F8-1C14-49E7-9526-81D942DE1741")

// RevisionRole identifies which root a revision's RootObjectReference
// entry designates.
type RevisionRole int

const (
	RevisionRoleDefaultContent RevisionRole = iota + 1
	RevisionRoleMetadata
	RevisionRoleEncryptionKey
	RevisionRoleVersionMetadata
)

// ParseRevisionRole maps a root-declare ExGuid to its RevisionRole. id must
// carry the well-known role Guid; its N selects the role (1-4).
func ParseRevisionRole(id ExGuid) (RevisionRole, error) {
	if !id.Guid.Equal(revisionRoleGuid) {
		return 0, fmt.Errorf("%w: root declare id does not carry the well-known revision-role guid", ErrMalformedFileData)
	}
	switch id.N {
	case 1:
		return RevisionRoleDefaultContent, nil
	case 2:
		return RevisionRoleMetadata, nil
	case 3:
		return RevisionRoleEncryptionKey, nil
	case 4:
		return RevisionRoleVersionMetadata, nil
	default:
		return 0, fmt.Errorf("%w: revision role exguid n=%d is not one of 1-4", ErrMalformedFileData, id.N)
	}
}

// RevisionRoleFromTag maps a raw 1-4 root_role tag (as carried directly,
// not wrapped in the well-known-guid ExGuid encoding) to a RevisionRole.
// Used by decoders whose root-reference record stores the role as a plain
// integer field rather than an ExGuid.
func RevisionRoleFromTag(tag uint32) (RevisionRole, error) {
	switch tag {
	case 1:
		return RevisionRoleDefaultContent, nil
	case 2:
		return RevisionRoleMetadata, nil
	case 3:
		return RevisionRoleEncryptionKey, nil
	case 4:
		return RevisionRoleVersionMetadata, nil
	default:
		return 0, fmt.Errorf("%w: root role tag %d is not one of 1-4", ErrMalformedFileData, tag)
	}
}

func (r RevisionRole) String() string {
	switch r {
	case RevisionRoleDefaultContent:
		return "DefaultContent"
	case RevisionRoleMetadata:
		return "Metadata"
	case RevisionRoleEncryptionKey:
		return "EncryptionKey"
	case RevisionRoleVersionMetadata:
		return "VersionMetadata"
	default:
		return fmt.Sprintf("RevisionRole(%d)", int(r))
	}
}

// VersionObjectSpaceGuid is the well-known context Guid of the "version
// object space" the top-level assembler skips when walking page series.
var VersionObjectSpaceGuid = MustParseGuidString("7111497F-1B6B-4209-9491-C98B04CF4C5A")

// IsVersionObjectSpace reports whether context identifies the well-known
// version object space (n == 1).
func IsVersionObjectSpace(context ExGuid) bool {
	return context.N == 1 && context.Guid.Equal(VersionObjectSpaceGuid)
}

// Store is the dialect-agnostic result of decoding a container: every
// object space keyed by its context ExGuid, the space holding the file's
// top-level root, and the root's per-role ExGuid map.
type Store struct {
	ObjectSpaces    map[ExGuid]ObjectSpace
	RootObjectSpace ExGuid
	RootRoleMap     map[RevisionRole]ExGuid
}

// RootFor returns the root ExGuid declared for role in the root object
// space, if any.
func (s *Store) RootFor(role RevisionRole) (ExGuid, bool) {
	id, ok := s.RootRoleMap[role]
	return id, ok
}

// RootSpace returns the ObjectSpace holding the file's top-level root.
func (s *Store) RootSpace() (ObjectSpace, bool) {
	sp, ok := s.ObjectSpaces[s.RootObjectSpace]
	return sp, ok
}
