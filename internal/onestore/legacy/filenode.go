package legacy

import (
	"fmt"

	"onenotestore/internal/onefmt"
	"onenotestore/internal/onestore"
)

// FileNode base types (MS-ONESTORE 2.4.3): what kind of payload follows
// the node header.
const (
	BaseTypeNoData         = 0
	BaseTypeDataInline     = 1
	BaseTypeDataReferenced = 2
	BaseTypeChildList      = 3
)

// FileNode is one decoded entry from a file-node-list fragment.
type FileNode struct {
	ID       uint16 // file_node_id, 10 bits on the wire
	BaseType int
	Inline   []byte                      // BaseTypeDataInline
	DataRef  onestore.FileChunkReference // BaseTypeDataReferenced / BaseTypeChildList
}

// fileNodeHeader unpacks the packed header word: 10-bit id, 13-bit size,
// 2-bit stp_format, 2-bit cb_format, 4-bit base_type, 1 reserved bit.
type fileNodeHeader struct {
	id        uint16
	size      uint32
	stpFormat uint8
	cbFormat  uint8
	baseType  uint8
}

func parseFileNodeHeader(v uint32) fileNodeHeader {
	return fileNodeHeader{
		id:        uint16(v & 0x3FF),
		size:      (v >> 10) & 0x1FFF,
		stpFormat: uint8((v >> 23) & 0x3),
		cbFormat:  uint8((v >> 25) & 0x3),
		baseType:  uint8((v >> 27) & 0xF),
	}
}

// endOfFileNodeListMarker is a reserved all-ones header word terminating a
// fragment's live node run before its trailing padding/footer.
const endOfFileNodeListMarker = 0xFFFFFFFF

// parseFileNodeChunkRef reads a chunk reference whose field widths are
// selected by stpFormat/cbFormat (0 => 4 bytes, 1 => 8 bytes; any other
// format reads no bytes and leaves that field zero).
func parseFileNodeChunkRef(r *onefmt.ByteReader, stpFormat, cbFormat uint8) (onestore.FileChunkReference, error) {
	widthOf := func(format uint8) int {
		switch format {
		case 0:
			return 4
		case 1:
			return 8
		default:
			return 0
		}
	}
	offWidth := widthOf(stpFormat)
	lenWidth := widthOf(cbFormat)

	var offset, length uint64
	if offWidth > 0 {
		b, err := r.ReadBytes(offWidth)
		if err != nil {
			return onestore.FileChunkReference{}, err
		}
		for i, by := range b {
			offset |= uint64(by) << (8 * i)
		}
	}
	if lenWidth > 0 {
		b, err := r.ReadBytes(lenWidth)
		if err != nil {
			return onestore.FileChunkReference{}, err
		}
		for i, by := range b {
			length |= uint64(by) << (8 * i)
		}
	}
	return onestore.FileChunkReference{Offset: offset, Length: length}, nil
}

// FileNodeListFragment is one physical fragment of a file-node list: a run
// of file nodes plus a chunk reference to the next fragment (fcrZero/fcrNil
// terminates the chain).
type FileNodeListFragment struct {
	Nodes        []FileNode
	NextFragment onestore.FileChunkReference
}

// ParseFileNodeListFragment decodes one fragment starting at r's current
// position and ending at endOffset (the fragment's declared length).
func ParseFileNodeListFragment(r *onefmt.ByteReader, endOffset int) (FileNodeListFragment, error) {
	var frag FileNodeListFragment

	for r.Position() < endOffset {
		headerWord, err := r.ReadU32()
		if err != nil {
			return frag, fmt.Errorf("legacy: file node list fragment: header: %w", err)
		}
		if headerWord == endOfFileNodeListMarker {
			break
		}
		h := parseFileNodeHeader(headerWord)

		node := FileNode{ID: h.id, BaseType: int(h.baseType)}
		switch h.baseType {
		case BaseTypeNoData:
			// nothing follows
		case BaseTypeDataInline:
			b, err := r.ReadBytes(int(h.size))
			if err != nil {
				return frag, fmt.Errorf("legacy: file node list fragment: inline data: %w", err)
			}
			node.Inline = b
		case BaseTypeDataReferenced, BaseTypeChildList:
			ref, err := parseFileNodeChunkRef(r, h.stpFormat, h.cbFormat)
			if err != nil {
				return frag, fmt.Errorf("legacy: file node list fragment: chunk ref: %w", err)
			}
			node.DataRef = ref
		default:
			return frag, fmt.Errorf("%w: legacy: unrecognized file node base type %d", onestore.ErrMalformedFileData, h.baseType)
		}
		frag.Nodes = append(frag.Nodes, node)
	}

	// Fragment footer: next-fragment chunk reference (64x32) followed by a
	// CRC/signature the decoder does not need.
	r.SetPosition(endOffset - 20)
	next, err := onestore.ParseFileChunkReference64x32(r)
	if err != nil {
		return frag, fmt.Errorf("legacy: file node list fragment: next fragment ref: %w", err)
	}
	frag.NextFragment = next
	r.SetPosition(endOffset)
	return frag, nil
}

// WalkFileNodeList follows a fragment chain starting at first, calling
// visit for every node encountered in file order. maxSteps bounds the
// number of fragments visited, turning a cyclic chain into a typed error
// instead of an infinite loop.
func WalkFileNodeList(file *onefmt.ByteReader, first onestore.FileChunkReference, maxSteps int, visit func(FileNode) error) error {
	ref := first
	steps := 0
	for !ref.IsZero() {
		steps++
		if steps > maxSteps {
			return fmt.Errorf("%w: legacy: file node list fragment chain exceeded %d steps (likely cyclic)", onestore.ErrMalformedFileData, maxSteps)
		}

		sub, err := file.SubReader(int(ref.Offset), int(ref.Length))
		if err != nil {
			return fmt.Errorf("legacy: file node list: fragment at %d: %w", ref.Offset, err)
		}
		frag, err := ParseFileNodeListFragment(sub, int(ref.Length))
		if err != nil {
			return err
		}
		for _, n := range frag.Nodes {
			if err := visit(n); err != nil {
				return err
			}
		}
		ref = frag.NextFragment
	}
	return nil
}
