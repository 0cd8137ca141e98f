// Package legacy decodes the OneNote 2016 legacy container dialect
// (MS-ONESTORE 2.3/2.4): a 1024-byte header, file-node-list fragments
// reached through chunk-reference chains, and global ID tables, reduced to
// the same (ExGuid -> Object) object spaces the packaged dialect produces.
// The header's transaction-log reference is read, but the transaction log
// itself is not decoded or replayed.
package legacy

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// HeaderSize is the fixed size of the legacy container header
// (MS-ONESTORE 2.3.1).
const HeaderSize = 1024

// oneFileFormatGuid and tocFileFormatGuid are the well-known file-format
// GUIDs that select the .one vs .onetoc2 dialect variant.
var (
	oneFileFormatGuid = onestore.MustParseGuidString("7B5C52E4-D88C-4D45-9C3A-F636B76FF3B0")
	tocFileFormatGuid = onestore.MustParseGuidString("43FF2FA1-EFD9-4C76-9EE2-10EA5722765F")
)

// FileKind distinguishes the two legacy document kinds the header's
// format Guid can select.
type FileKind int

const (
	FileKindUnknown FileKind = iota
	FileKindSection
	FileKindNotebookToc
)

// Header is the decoded fixed-size legacy container header.
type Header struct {
	Kind FileKind

	RootFileNodeList onestore.FileChunkReference
	TransactionLog   onestore.FileChunkReference
	HashedChunkList  onestore.FileChunkReference
	FreeChunkList    onestore.FileChunkReference
}

// ParseHeader reads and validates the fixed-size legacy header from the
// start of r. r's cursor must be at offset 0.
func ParseHeader(r *onefmt.ByteReader) (Header, error) {
	if r.Remaining() < HeaderSize {
		return Header{}, fmt.Errorf("%w: legacy header: file shorter than header size", onestore.ErrMalformedFileData)
	}

	// Byte 0: guidFileType, the 16-byte GUID that actually selects the
	// dialect (MS-ONESTORE 2.3.1). This decoder has no grounding file for
	// the legacy header layout (see the package comment's disclosure in
	// DESIGN.md), so the field positions below are re-derived from the
	// public MS-ONESTORE 2.3.1 header table rather than ported from an
	// example; only the two well-known guidFileType values themselves
	// (oneFileFormatGuid/tocFileFormatGuid) are independently confirmed.
	formatGuid, err := onestore.ParseGuid(r)
	if err != nil {
		return Header{}, fmt.Errorf("legacy: header: file type guid: %w", err)
	}

	var kind FileKind
	switch {
	case formatGuid.Equal(oneFileFormatGuid):
		kind = FileKindSection
	case formatGuid.Equal(tocFileFormatGuid):
		kind = FileKindNotebookToc
	default:
		return Header{}, fmt.Errorf("%w: legacy: unrecognized format guid %s", onestore.ErrUnknownFileFormat, formatGuid)
	}

	// Bytes 16-63: guidFile, guidLegacyFileVersion, guidFileFormat (three
	// more 16-byte GUIDs; guidFileFormat is a fixed constant shared by
	// every legacy file, not a dialect selector). Bytes 64-147: the ffv*
	// code-version fields, the pre-2010 32-bit free-chunk-list/transaction-
	// log/file-node-list-root references and their counters, guidAncestor,
	// and crcName — none of which this decoder consumes. Skip straight to
	// the 64x32 chunk-reference block at offset 148.
	r.SetPosition(148)

	hashedChunks, err := onestore.ParseFileChunkReference64x32(r)
	if err != nil {
		return Header{}, fmt.Errorf("legacy: header: hashed chunk list ref: %w", err)
	}
	txLog, err := onestore.ParseFileChunkReference64x32(r)
	if err != nil {
		return Header{}, fmt.Errorf("legacy: header: transaction log ref: %w", err)
	}
	rootFNL, err := onestore.ParseFileChunkReference64x32(r)
	if err != nil {
		return Header{}, fmt.Errorf("legacy: header: root file node list ref: %w", err)
	}
	freeChunks, err := onestore.ParseFileChunkReference64x32(r)
	if err != nil {
		return Header{}, fmt.Errorf("legacy: header: free chunk list ref: %w", err)
	}

	r.SetPosition(HeaderSize)

	return Header{
		Kind:             kind,
		RootFileNodeList: rootFNL,
		TransactionLog:   txLog,
		HashedChunkList:  hashedChunks,
		FreeChunkList:    freeChunks,
	}, nil
}
