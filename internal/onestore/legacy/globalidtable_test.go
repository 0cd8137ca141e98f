package legacy

import (
	"testing"

	"onenotestore/internal/onestore"
)

func TestIdMappingAddAndResolve(t *testing.T) {
	m := NewIdMapping()
	g := onestore.MustParseGuidString("4a3717f8-1c14-49e7-9526-81d942de1741")
	m.Add(GlobalIdTableEntryFNDX{Index: 3, Guid: g})

	got, err := m.Resolve(onestore.CompactId{N: 42, GuidIndex: 3})
	if err != nil {
		t.Fatal(err)
	}
	want := onestore.ExGuid{Guid: g, N: 42}
	if !got.Equal(want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestIdMappingRemapAndCopyRun(t *testing.T) {
	m := NewIdMapping()
	g1 := onestore.MustParseGuidString("4a3717f8-1c14-49e7-9526-81d942de1741")
	g2 := onestore.MustParseGuidString("7111497f-1b6b-4209-9491-c98b04cf4c5a")
	m.Add(GlobalIdTableEntryFNDX{Index: 1, Guid: g1})
	m.Add(GlobalIdTableEntryFNDX{Index: 2, Guid: g2})

	m.Remap(GlobalIdTableEntry2FNDX{MapFrom: 1, MapTo: 10})
	if _, err := m.Resolve(onestore.CompactId{GuidIndex: 10}); err != nil {
		t.Fatalf("Resolve(10) after remap: %v", err)
	}

	m.CopyRun(GlobalIdTableEntry3FNDX{CopyFromStart: 1, Count: 2, CopyToStart: 20})
	r1, err := m.Resolve(onestore.CompactId{GuidIndex: 20})
	if err != nil {
		t.Fatal(err)
	}
	if !r1.Guid.Equal(g1) {
		t.Errorf("Resolve(20) guid = %v, want %v", r1.Guid, g1)
	}
	r2, err := m.Resolve(onestore.CompactId{GuidIndex: 21})
	if err != nil {
		t.Fatal(err)
	}
	if !r2.Guid.Equal(g2) {
		t.Errorf("Resolve(21) guid = %v, want %v", r2.Guid, g2)
	}
}

func TestIdMappingResolveMissing(t *testing.T) {
	m := NewIdMapping()
	if _, err := m.Resolve(onestore.CompactId{GuidIndex: 99}); err == nil {
		t.Fatal("Resolve(missing): want error, got nil")
	}
}
