package onestore

import (
	"fmt"

	"onenotestore/internal/onefmt"
)

// CellId identifies a cell (a logical slot inside a storage index) as a
// pair of ExGuids.
type CellId struct {
	First, Second ExGuid
}

// ParseCellId reads two ExGuids in sequence.
func ParseCellId(r *onefmt.ByteReader, table *GuidTable) (CellId, error) {
	first, err := ParseExGuid(r, table)
	if err != nil {
		return CellId{}, fmt.Errorf("onestore: cell id: first: %w", err)
	}
	second, err := ParseExGuid(r, table)
	if err != nil {
		return CellId{}, fmt.Errorf("onestore: cell id: second: %w", err)
	}
	return CellId{First: first, Second: second}, nil
}

// ParseCellIdArray reads a CompactU64 count followed by that many CellIds.
func ParseCellIdArray(r *onefmt.ByteReader, table *GuidTable) ([]CellId, error) {
	count, err := ParseCompactU64(r)
	if err != nil {
		return nil, fmt.Errorf("onestore: cell id array: count: %w", err)
	}
	out := make([]CellId, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := ParseCellId(r, table)
		if err != nil {
			return nil, fmt.Errorf("onestore: cell id array[%d]: %w", i, err)
		}
		out = append(out, id)
	}
	return out, nil
}

// SerialNumber is a Guid plus a 64-bit serial counter, used to version
// storage-index cells. A leading zero type byte denotes the nil serial
// number (nil guid, serial 0).
type SerialNumber struct {
	Guid   Guid
	Serial uint64
}

// ParseSerialNumber reads a 1-byte type tag; zero means nil, any other
// value is followed by a Guid and a little-endian u64 serial.
func ParseSerialNumber(r *onefmt.ByteReader) (SerialNumber, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return SerialNumber{}, fmt.Errorf("onestore: serial number: %w", err)
	}
	if tag == 0 {
		return SerialNumber{}, nil
	}
	g, err := ParseGuid(r)
	if err != nil {
		return SerialNumber{}, fmt.Errorf("onestore: serial number: guid: %w", err)
	}
	serial, err := r.ReadU64()
	if err != nil {
		return SerialNumber{}, fmt.Errorf("onestore: serial number: serial: %w", err)
	}
	return SerialNumber{Guid: g, Serial: serial}, nil
}

// BinaryItem is a length-prefixed (CompactU64) raw byte blob.
type BinaryItem []byte

// ParseBinaryItem reads a CompactU64 size followed by that many raw bytes.
func ParseBinaryItem(r *onefmt.ByteReader) (BinaryItem, error) {
	size, err := ParseCompactU64(r)
	if err != nil {
		return nil, fmt.Errorf("onestore: binary item: size: %w", err)
	}
	data, err := r.ReadBytes(int(size))
	if err != nil {
		return nil, fmt.Errorf("onestore: binary item: data: %w", err)
	}
	return BinaryItem(data), nil
}
