// Package container selects between the legacy and packaged container
// dialects by sniffing the input buffer, and exposes both behind the
// single onestore.Store result shape the rest of the decoder consumes.
package container

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
	"onenotestore/internal/onestore/legacy"
	"onenotestore/internal/onestore/packaged"
)

// Decode sniffs data's dialect and decodes it into a dialect-neutral
// onestore.Store. A legacy-format file is recognized by a known file-type
// Guid in its first 16 bytes and a length of at least the header size; a packaged
// file is recognized by its outer stream-object header declaring
// ObjectTypeOneNotePackaging. Anything else fails with
// ErrUnknownFileFormat.
func Decode(data []byte, opts onefmt.Options) (*onestore.Store, error) {
	if looksLikePackaged(data) {
		return packaged.Decode(data, opts)
	}
	if looksLikeLegacy(data) {
		return legacy.Decode(data, opts)
	}
	return nil, fmt.Errorf("%w: container: neither legacy nor packaged dialect recognized", onestore.ErrUnknownFileFormat)
}

func looksLikeLegacy(data []byte) bool {
	if len(data) < legacy.HeaderSize {
		return false
	}
	_, err := legacy.Kind(data)
	return err == nil
}

func looksLikePackaged(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	r := onefmt.NewReader(data)
	hdr, err := packaged.ParseStreamObjectHeader(r)
	if err != nil {
		return false
	}
	return hdr.Type == packaged.ObjectTypeOneNotePackaging
}
