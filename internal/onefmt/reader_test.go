package onefmt

import "testing"

func TestReadU16LE(t *testing.T) {
	tests := []struct {
		in   []byte
		want uint16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x01, 0x00}, 1},
		{[]byte{0xff, 0xff}, 0xffff},
		{[]byte{0x34, 0x12}, 0x1234},
	}
	for _, tt := range tests {
		r := NewReader(tt.in)
		got, err := r.ReadU16()
		if err != nil {
			t.Fatalf("ReadU16(%v): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ReadU16(%v) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestReadU32LE(t *testing.T) {
	r := NewReader([]byte{0x78, 0x56, 0x34, 0x12})
	got, err := r.ReadU32()
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x12345678 {
		t.Errorf("ReadU32() = %#x, want %#x", got, 0x12345678)
	}
}

func TestReadU64LE(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	got, err := r.ReadU64()
	if err != nil {
		t.Fatal(err)
	}
	want := uint64(0x0807060504030201)
	if got != want {
		t.Errorf("ReadU64() = %#x, want %#x", got, want)
	}
}

func TestReadEOF(t *testing.T) {
	r := NewReader([]byte{1, 2})
	if _, err := r.ReadBytes(3); err != ErrEOF {
		t.Fatalf("ReadBytes(3) error = %v, want ErrEOF", err)
	}
}

func TestAdvanceAndRemaining(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	if r.Remaining() != 4 {
		t.Fatalf("Remaining() = %d, want 4", r.Remaining())
	}
	if err := r.Advance(2); err != nil {
		t.Fatal(err)
	}
	if r.Remaining() != 2 {
		t.Errorf("Remaining() after Advance(2) = %d, want 2", r.Remaining())
	}
	if err := r.Advance(10); err != ErrEOF {
		t.Fatalf("Advance(10) error = %v, want ErrEOF", err)
	}
}

func TestSubReaderIndependentCursor(t *testing.T) {
	r := NewReader([]byte{0, 1, 2, 3, 4, 5})
	sub, err := r.SubReader(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := sub.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 2 {
		t.Errorf("sub.ReadByte() = %d, want 2", b)
	}
	if r.Position() != 0 {
		t.Errorf("parent reader cursor moved: Position() = %d, want 0", r.Position())
	}
	if _, err := r.SubReader(4, 10); err != ErrEOF {
		t.Errorf("SubReader out of range error = %v, want ErrEOF", err)
	}
}

func TestAlign(t *testing.T) {
	r := NewReader(make([]byte, 16))
	r.Advance(3)
	r.Align(4)
	if r.Position() != 4 {
		t.Errorf("Position() after Align(4) = %d, want 4", r.Position())
	}
	r.Align(4)
	if r.Position() != 4 {
		t.Errorf("Align(4) on already-aligned cursor moved it to %d, want 4", r.Position())
	}
}

func TestReadUTF16UnitsNullTerminated(t *testing.T) {
	// "AB" in UTF-16LE, null-terminated, plus trailing garbage that must
	// not be consumed.
	data := []byte{'A', 0, 'B', 0, 0, 0, 0xff, 0xff}
	r := NewReader(data)
	units, err := r.ReadUTF16Units(0)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{'A', 'B'}
	if len(units) != len(want) || units[0] != want[0] || units[1] != want[1] {
		t.Errorf("ReadUTF16Units() = %v, want %v", units, want)
	}
	if r.Remaining() != 2 {
		t.Errorf("Remaining() after terminator = %d, want 2", r.Remaining())
	}
}
