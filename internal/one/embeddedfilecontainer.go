package one

import (
	"fmt"

	"onenotestore/internal/onestore"
)

// EmbeddedFileContainer carries the raw bytes of an arbitrary file
// embedded in a page.
type EmbeddedFileContainer struct {
	Data []byte
}

// ParseEmbeddedFileContainer decodes an EmbeddedFileContainer object
// (MS-ONE 2.2.59).
func ParseEmbeddedFileContainer(obj *onestore.Object) (EmbeddedFileContainer, error) {
	if err := requireJcid(obj, PropertySetEmbeddedFileContainer); err != nil {
		return EmbeddedFileContainer{}, err
	}
	if obj.FileData == nil {
		return EmbeddedFileContainer{}, fmt.Errorf("%w: embedded file container has no data", onestore.ErrMalformedData)
	}
	return EmbeddedFileContainer{Data: obj.FileData.Bytes()}, nil
}
