package onestore

import (
	"testing"

	"onenotestore/internal/onefmt"
)

func TestParseCompactId(t *testing.T) {
	// n = 0x00123456 truncated to 24 bits, guid_index = 0x78.
	r := onefmt.NewReader([]byte{0x56, 0x34, 0x12, 0x78})
	c, err := ParseCompactId(r)
	if err != nil {
		t.Fatal(err)
	}
	if c.N != 0x123456 {
		t.Errorf("N = %#x, want %#x", c.N, 0x123456)
	}
	if c.GuidIndex != 0x78 {
		t.Errorf("GuidIndex = %#x, want %#x", c.GuidIndex, 0x78)
	}
}

func TestCompactU64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 63, 64, 1000, 1<<14 - 1, 1 << 14, 1<<30 - 1, 1 << 30, 1<<64 - 1}
	for _, v := range values {
		wire := EncodeCompactU64(v)
		r := onefmt.NewReader(wire)
		got, err := ParseCompactU64(r)
		if err != nil {
			t.Fatalf("ParseCompactU64(encode(%d)): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %v -> %d", v, wire, got)
		}
	}
}

func TestCompactU64ChoosesNarrowestWidth(t *testing.T) {
	if len(EncodeCompactU64(5)) != 1 {
		t.Errorf("EncodeCompactU64(5) width = %d, want 1", len(EncodeCompactU64(5)))
	}
	if len(EncodeCompactU64(1000)) != 2 {
		t.Errorf("EncodeCompactU64(1000) width = %d, want 2", len(EncodeCompactU64(1000)))
	}
	if len(EncodeCompactU64(1<<20)) != 4 {
		t.Errorf("EncodeCompactU64(2^20) width = %d, want 4", len(EncodeCompactU64(1<<20)))
	}
	if len(EncodeCompactU64(1<<40)) != 9 {
		t.Errorf("EncodeCompactU64(2^40) width = %d, want 9", len(EncodeCompactU64(1<<40)))
	}
}
