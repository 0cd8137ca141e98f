package onestore

import (
	"testing"

	"onenotestore/internal/onefmt"
)

func TestParseGuidMixedEndian(t *testing.T) {
	// 4A3717F8-1C14-49E7-9526-81D942DE1741, encoded on the wire as the
	// first three fields little-endian and the last two big-endian.
	wire := []byte{
		0xF8, 0x17, 0x37, 0x4A, // data1 LE
		0x14, 0x1C, // data2 LE
		0xE7, 0x49, // data3 LE
		0x95, 0x26, 0x81, 0xD9, 0x42, 0xDE, 0x17, 0x41, // data4 BE
	}
	r := onefmt.NewReader(wire)
	g, err := ParseGuid(r)
	if err != nil {
		t.Fatal(err)
	}
	want := "4a3717f8-1c14-49e7-9526-81d942de1741"
	if g.String() != want {
		t.Errorf("ParseGuid() = %s, want %s", g.String(), want)
	}
}

func TestParseGuidNil(t *testing.T) {
	r := onefmt.NewReader(make([]byte, 16))
	g, err := ParseGuid(r)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsNil() {
		t.Errorf("ParseGuid(zeroes).IsNil() = false, want true")
	}
	if !g.Equal(NilGuid) {
		t.Errorf("ParseGuid(zeroes) != NilGuid")
	}
}

func TestParseGuidEOF(t *testing.T) {
	r := onefmt.NewReader([]byte{1, 2, 3})
	if _, err := ParseGuid(r); err == nil {
		t.Fatal("ParseGuid on short buffer: want error, got nil")
	}
}
