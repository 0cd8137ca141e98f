package legacy

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// RootObjectReference2FNDX designates a revision's root object via a
// CompactId local to that revision's mapping context.
type RootObjectReference2FNDX struct {
	OidRoot  onestore.CompactId
	RootRole uint32
}

// ParseRootObjectReference2FNDX reads {oid_root: CompactId, root_role: u32}.
func ParseRootObjectReference2FNDX(r *onefmt.ByteReader) (RootObjectReference2FNDX, error) {
	oid, err := onestore.ParseCompactId(r)
	if err != nil {
		return RootObjectReference2FNDX{}, fmt.Errorf("legacy: root object reference2: oid: %w", err)
	}
	role, err := r.ReadU32()
	if err != nil {
		return RootObjectReference2FNDX{}, fmt.Errorf("legacy: root object reference2: role: %w", err)
	}
	return RootObjectReference2FNDX{OidRoot: oid, RootRole: role}, nil
}

// RootObjectReference3FND designates a revision's root object directly by
// ExGuid, bypassing mapping-table resolution.
type RootObjectReference3FND struct {
	OidRoot  onestore.ExGuid
	RootRole uint32
}

// ParseRootObjectReference3FND reads {oid_root: ExGuid, root_role: u32}.
func ParseRootObjectReference3FND(r *onefmt.ByteReader, table *onestore.GuidTable) (RootObjectReference3FND, error) {
	oid, err := onestore.ParseExGuid(r, table)
	if err != nil {
		return RootObjectReference3FND{}, fmt.Errorf("legacy: root object reference3: oid: %w", err)
	}
	role, err := r.ReadU32()
	if err != nil {
		return RootObjectReference3FND{}, fmt.Errorf("legacy: root object reference3: role: %w", err)
	}
	return RootObjectReference3FND{OidRoot: oid, RootRole: role}, nil
}
