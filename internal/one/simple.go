package one

import (
	"fmt"
	"unicode/utf16"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// requireU32/requireU8/requireU64/requireBytes read a required scalar
// property, failing with ErrMalformedData when absent.
func requireU32(ps onestore.PropertySet, id onestore.PropertyId) (uint32, error) {
	v, ok := ps.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: missing required property %#x", onestore.ErrMalformedData, id.Id())
	}
	return uint32(v.U64()), nil
}

func optionalU32(ps onestore.PropertySet, id onestore.PropertyId) (uint32, bool) {
	v, ok := ps.Get(id)
	if !ok {
		return 0, false
	}
	return uint32(v.U64()), true
}

func requireU8(ps onestore.PropertySet, id onestore.PropertyId) (uint8, error) {
	v, ok := ps.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: missing required property %#x", onestore.ErrMalformedData, id.Id())
	}
	return uint8(v.U64()), nil
}

func requireU64(ps onestore.PropertySet, id onestore.PropertyId) (uint64, error) {
	v, ok := ps.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: missing required property %#x", onestore.ErrMalformedData, id.Id())
	}
	return v.U64(), nil
}

func optionalU64(ps onestore.PropertySet, id onestore.PropertyId) (uint64, bool) {
	v, ok := ps.Get(id)
	if !ok {
		return 0, false
	}
	return v.U64(), true
}

func requireBytes(ps onestore.PropertySet, id onestore.PropertyId) ([]byte, error) {
	v, ok := ps.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: missing required property %#x", onestore.ErrMalformedData, id.Id())
	}
	return v.Bytes(), nil
}

func optionalBytes(ps onestore.PropertySet, id onestore.PropertyId) ([]byte, bool) {
	v, ok := ps.Get(id)
	if !ok {
		return nil, false
	}
	return v.Bytes(), true
}

func optionalBool(ps onestore.PropertySet, id onestore.PropertyId) bool {
	v, ok := ps.Get(id)
	if !ok {
		return false
	}
	return v.Bool()
}

// requireUTF16String reads a required UTF-16LE byte property and converts
// it to a Go string.
func requireUTF16String(ps onestore.PropertySet, id onestore.PropertyId) (string, error) {
	b, err := requireBytes(ps, id)
	if err != nil {
		return "", err
	}
	return utf16BytesToString(b), nil
}

func optionalUTF16String(ps onestore.PropertySet, id onestore.PropertyId) (string, bool) {
	b, ok := optionalBytes(ps, id)
	if !ok {
		return "", false
	}
	return utf16BytesToString(b), true
}

// utf16BytesToString decodes a little-endian UTF-16 byte string, stripping
// a single trailing NUL code unit if present (MS-ONE pads unicode
// properties with a terminator that is not part of the text).
func utf16BytesToString(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	if n := len(units); n > 0 && units[n-1] == 0 {
		units = units[:n-1]
	}
	return string(utf16.Decode(units))
}

// parseInlineGuid decodes a 16-byte property value carrying a raw Guid
// (e.g. NotebookManagementEntityGuid), which the format stores as a
// PropertyTypeBytes payload rather than a reference.
func parseInlineGuid(b []byte) (onestore.Guid, error) {
	r := onefmt.NewReader(b)
	g, err := onestore.ParseGuid(r)
	if err != nil {
		return onestore.Guid{}, fmt.Errorf("%w: inline guid: %v", onestore.ErrMalformedData, err)
	}
	return g, nil
}
