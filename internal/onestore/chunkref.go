package onestore

import (
	"fmt"

	"onenotestore/internal/onefmt"
)

// FileChunkReference is an (offset, length) pair pointing at a byte range
// in the container file. Zero or max-bits-set in both fields both denote
// absence (fcrZero / fcrNil respectively); callers should check IsZero
// before dereferencing.
type FileChunkReference struct {
	Offset uint64
	Length uint64
}

// IsZero reports whether the reference is fcrZero (both fields zero) or
// fcrNil (all bits of both fields set) — the two sentinel spellings of
// "absent" used across the container formats.
func (c FileChunkReference) IsZero() bool {
	if c.Offset == 0 && c.Length == 0 {
		return true
	}
	allOnes64 := ^uint64(0)
	return c.Offset == allOnes64 && c.Length == allOnes64
}

// ParseFileChunkReference32 reads a 32-bit offset and a 32-bit length.
func ParseFileChunkReference32(r *onefmt.ByteReader) (FileChunkReference, error) {
	off, err := r.ReadU32()
	if err != nil {
		return FileChunkReference{}, fmt.Errorf("onestore: chunk ref32: offset: %w", err)
	}
	length, err := r.ReadU32()
	if err != nil {
		return FileChunkReference{}, fmt.Errorf("onestore: chunk ref32: length: %w", err)
	}
	return clampNil32(FileChunkReference{Offset: uint64(off), Length: uint64(length)}), nil
}

// ParseFileChunkReference64 reads a 64-bit offset and a 64-bit length.
func ParseFileChunkReference64(r *onefmt.ByteReader) (FileChunkReference, error) {
	off, err := r.ReadU64()
	if err != nil {
		return FileChunkReference{}, fmt.Errorf("onestore: chunk ref64: offset: %w", err)
	}
	length, err := r.ReadU64()
	if err != nil {
		return FileChunkReference{}, fmt.Errorf("onestore: chunk ref64: length: %w", err)
	}
	return FileChunkReference{Offset: off, Length: length}, nil
}

// ParseFileChunkReference64x32 reads a 64-bit offset and a 32-bit length.
func ParseFileChunkReference64x32(r *onefmt.ByteReader) (FileChunkReference, error) {
	off, err := r.ReadU64()
	if err != nil {
		return FileChunkReference{}, fmt.Errorf("onestore: chunk ref64x32: offset: %w", err)
	}
	length, err := r.ReadU32()
	if err != nil {
		return FileChunkReference{}, fmt.Errorf("onestore: chunk ref64x32: length: %w", err)
	}
	// fcrNil in this width is all ones in both the 64-bit and 32-bit fields.
	if off == ^uint64(0) && length == 0xFFFFFFFF {
		return FileChunkReference{Offset: ^uint64(0), Length: ^uint64(0)}, nil
	}
	return FileChunkReference{Offset: off, Length: uint64(length)}, nil
}

// clampNil32 recognizes the 32-bit-field spelling of fcrNil (0xFFFFFFFF in
// a field that is only 32 bits wide on the wire) and normalizes it to the
// canonical all-ones-in-both-fields form IsZero checks.
func clampNil32(c FileChunkReference) FileChunkReference {
	if c.Offset == 0xFFFFFFFF && c.Length == 0xFFFFFFFF {
		return FileChunkReference{Offset: ^uint64(0), Length: ^uint64(0)}
	}
	return c
}
