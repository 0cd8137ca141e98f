package one

import (
	"fmt"

	"onenotestore/internal/onestore"
)

// requireRef resolves a required single-reference property through table,
// failing with ErrMalformedData if the property is absent and propagating
// ErrResolutionFailed if the compact id cannot be mapped.
func requireRef(ps onestore.PropertySet, id onestore.PropertyId, table onestore.MappingTable) (onestore.ExGuid, error) {
	v, ok := ps.Get(id)
	if !ok {
		return onestore.NilExGuid, fmt.Errorf("%w: missing required property %#x", onestore.ErrMalformedData, id.Id())
	}
	return v.RefSingle(table)
}

func optionalRef(ps onestore.PropertySet, id onestore.PropertyId, table onestore.MappingTable) (onestore.ExGuid, bool, error) {
	v, ok := ps.Get(id)
	if !ok {
		return onestore.NilExGuid, false, nil
	}
	ref, err := v.RefSingle(table)
	if err != nil {
		return onestore.NilExGuid, false, err
	}
	return ref, true, nil
}

// requireRefs resolves a required multi-reference property (ObjectIds,
// ObjectSpaceIds, or ContextIds) through table. A missing property yields
// an empty, non-error slice: child-node lists are frequently absent on
// leaf objects.
func requireRefs(ps onestore.PropertySet, id onestore.PropertyId, table onestore.MappingTable) ([]onestore.ExGuid, error) {
	v, ok := ps.Get(id)
	if !ok {
		return nil, nil
	}
	return v.RefMany(table)
}

// childObject resolves a single reference and looks it up in space,
// failing with ErrResolutionFailed if the referenced object does not
// exist.
func childObject(space onestore.ObjectSpace, ref onestore.ExGuid) (*onestore.Object, error) {
	obj, ok := space.GetObject(ref)
	if !ok {
		return nil, fmt.Errorf("%w: object %s not present in object space", onestore.ErrResolutionFailed, ref)
	}
	return obj, nil
}

// childObjects resolves a list of references in order, stopping at the
// first resolution failure.
func childObjects(space onestore.ObjectSpace, refs []onestore.ExGuid) ([]*onestore.Object, error) {
	out := make([]*onestore.Object, 0, len(refs))
	for _, ref := range refs {
		obj, err := childObject(space, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}
