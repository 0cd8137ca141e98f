package onestore

import (
	"testing"

	"onenotestore/internal/onefmt"
)

func TestFileChunkReference32(t *testing.T) {
	r := onefmt.NewReader([]byte{0x10, 0, 0, 0, 0x20, 0, 0, 0})
	c, err := ParseFileChunkReference32(r)
	if err != nil {
		t.Fatal(err)
	}
	if c.Offset != 0x10 || c.Length != 0x20 {
		t.Errorf("ParseFileChunkReference32() = %+v", c)
	}
	if c.IsZero() {
		t.Error("non-zero reference reported IsZero()")
	}
}

func TestFileChunkReferenceZero(t *testing.T) {
	r := onefmt.NewReader(make([]byte, 8))
	c, err := ParseFileChunkReference32(r)
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsZero() {
		t.Error("fcrZero not detected")
	}
}

func TestFileChunkReferenceNil32(t *testing.T) {
	wire := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	r := onefmt.NewReader(wire)
	c, err := ParseFileChunkReference32(r)
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsZero() {
		t.Error("fcrNil (32-bit fields) not detected")
	}
}

func TestFileChunkReference64x32(t *testing.T) {
	wire := []byte{1, 0, 0, 0, 0, 0, 0, 0, 5, 0, 0, 0}
	r := onefmt.NewReader(wire)
	c, err := ParseFileChunkReference64x32(r)
	if err != nil {
		t.Fatal(err)
	}
	if c.Offset != 1 || c.Length != 5 {
		t.Errorf("ParseFileChunkReference64x32() = %+v", c)
	}
}
