// Package onestore decodes a OneNote storage container (legacy or packaged
// dialect) into object spaces of (ExGuid -> Object), and decodes each
// object's property table into typed PropertyValues.
package onestore

import "errors"

// Sentinel errors form the taxonomy every decoder in this module and its
// legacy/packaged subpackages report through. Structural detail is added
// with fmt.Errorf("%w: ...", sentinel) at the call site rather than new
// error types, so callers can still errors.Is against the taxonomy.
var (
	// ErrUnknownFileFormat is returned when a container's header GUID does
	// not match any known dialect.
	ErrUnknownFileFormat = errors.New("onestore: unknown file format")

	// ErrMalformedFileData signals a structural container error: bad magic,
	// mismatched stream-object start/end, a declaration/object count
	// mismatch, a reference to a nonexistent chunk, a fragment-chain cycle,
	// or a transaction-log inconsistency.
	ErrMalformedFileData = errors.New("onestore: malformed container data")

	// ErrMalformedData signals a semantic error: a required property is
	// missing, a property has the wrong value kind, or an enumerant is
	// invalid.
	ErrMalformedData = errors.New("onestore: malformed object data")

	// ErrResolutionFailed is returned when a CompactId is resolved against
	// a mapping table lacking its guid_index entry.
	ErrResolutionFailed = errors.New("onestore: compact id resolution failed")

	// ErrUnexpectedObjectType is returned when a semantic parser is handed
	// an object whose jcid is not in its accepted set.
	ErrUnexpectedObjectType = errors.New("onestore: unexpected object type")
)
