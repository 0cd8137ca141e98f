package legacy

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// ObjectSpaceManifestRootFND declares which object space the file treats as
// its own root context (MS-ONESTORE 2.4.3's gosidRoot FND); it carries a
// single inline ExGuid and no chunk reference.
type ObjectSpaceManifestRootFND struct {
	Gosid onestore.ExGuid
}

// ParseObjectSpaceManifestRootFND decodes an ObjectSpaceManifestRootFND's
// inline payload.
func ParseObjectSpaceManifestRootFND(r *onefmt.ByteReader) (ObjectSpaceManifestRootFND, error) {
	g, err := onestore.ParseExGuid(r, nil)
	if err != nil {
		return ObjectSpaceManifestRootFND{}, fmt.Errorf("legacy: object space manifest root: gosid: %w", err)
	}
	return ObjectSpaceManifestRootFND{Gosid: g}, nil
}

// ObjectSpaceManifestListStartFND opens an Object Space Manifest List,
// declaring the gosid its RevisionManifestListReferenceFND children belong
// to.
type ObjectSpaceManifestListStartFND struct {
	Gosid onestore.ExGuid
}

// ParseObjectSpaceManifestListStartFND decodes an
// ObjectSpaceManifestListStartFND's inline payload.
func ParseObjectSpaceManifestListStartFND(r *onefmt.ByteReader) (ObjectSpaceManifestListStartFND, error) {
	g, err := onestore.ParseExGuid(r, nil)
	if err != nil {
		return ObjectSpaceManifestListStartFND{}, fmt.Errorf("legacy: object space manifest list start: gosid: %w", err)
	}
	return ObjectSpaceManifestListStartFND{Gosid: g}, nil
}
