package onenote

import (
	"fmt"

	"onenotestore/internal/onestore"
)

// childObject resolves ref within space, failing with ErrResolutionFailed
// if the object is not present.
func childObject(space onestore.ObjectSpace, ref onestore.ExGuid) (*onestore.Object, error) {
	obj, ok := space.GetObject(ref)
	if !ok {
		return nil, fmt.Errorf("%w: object %s not present in object space", onestore.ErrResolutionFailed, ref)
	}
	return obj, nil
}
