package onestore

import (
	"testing"

	"onenotestore/internal/onefmt"
)

func TestParseExGuidNull(t *testing.T) {
	r := onefmt.NewReader([]byte{exGuidBranchNull})
	g, err := ParseExGuid(r, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsNil() {
		t.Errorf("ParseExGuid(null tag) = %v, want nil", g)
	}
}

func TestParseExGuidInlineRoundTrip(t *testing.T) {
	want := ExGuid{Guid: MustParseGuidString("4a3717f8-1c14-49e7-9526-81d942de1741"), N: 7}
	wire := EncodeExGuidInline(want)
	r := onefmt.NewReader(wire)
	got, err := ParseExGuid(r, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestParseExGuidSharedTable(t *testing.T) {
	table := NewGuidTable()
	g := MustParseGuidString("7111497f-1b6b-4209-9491-c98b04cf4c5a")
	table.Put(3, g)

	// Branch 1 (n5, 1-byte n), guid index 3, n = 9.
	wire := []byte{exGuidBranchN5, 3, 9}
	r := onefmt.NewReader(wire)
	got, err := ParseExGuid(r, table)
	if err != nil {
		t.Fatal(err)
	}
	want := ExGuid{Guid: g, N: 9}
	if !got.Equal(want) {
		t.Errorf("ParseExGuid() = %v, want %v", got, want)
	}
}

func TestParseExGuidSharedTableMissingIndex(t *testing.T) {
	table := NewGuidTable()
	wire := []byte{exGuidBranchN5, 5, 1}
	r := onefmt.NewReader(wire)
	if _, err := ParseExGuid(r, table); err == nil {
		t.Fatal("ParseExGuid with unknown guid index: want error, got nil")
	}
}
