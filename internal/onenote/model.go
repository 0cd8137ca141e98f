// Package onenote assembles the typed property-set objects decoded by
// package one into the document tree a caller actually wants: a notebook's
// table of contents, or a section's page series, pages, and content.
package onenote

import "onenotestore/internal/one"

// Document is the result of decoding a single container file: exactly one
// of Notebook or Section is set, depending on whether the root object was
// a TOCContainer (.onetoc2) or a SectionNode (.one).
type Document struct {
	Notebook *Notebook
	Section  *Section
}

// Notebook is a table of contents: the ordered list of sections and
// sub-folders it names. Sibling files are not loaded — only what this one
// container's object graph carries.
type Notebook struct {
	Entries []TOCEntry
}

// TOCEntry is one child named by a notebook's table of contents.
type TOCEntry struct {
	Name          string
	HasName       bool
	OrderingID    uint32
	HasOrderingID bool
	Children      []TOCEntry
}

// Section is a single .one file's decoded content.
type Section struct {
	EntityGuid  string
	DisplayName string
	HasName     bool
	Color       *one.Color
	CreatedAt   one.Timestamp
	PageSeries  []PageSeries
}

// PageSeries is one revision lineage of pages (a section usually has one;
// version history produces more, and the well-known version object space
// itself is always skipped).
type PageSeries struct {
	Pages []Page
}

// Page is a single page's content tree.
type Page struct {
	Elements []Element
}

// Element is a tagged union over the content types a page, outline, or
// table cell can hold. Exactly one field is set.
type Element struct {
	Paragraph    *Paragraph
	Outline      *Outline
	Table        *Table
	Image        *Image
	EmbeddedFile *EmbeddedFile
	IFrame       *IFrame
	Ink          *Ink
}

// Outline is a nested group of elements sharing an indent level.
type Outline struct {
	ChildLevel uint8
	Elements   []Element
}

// Paragraph is one run of rich text.
type Paragraph struct {
	Text      string
	Alignment one.ParagraphAlignment
	List      *one.ListFormat
	NoteTag   *one.NoteTagState
}

// Table is a grid of rows and cells.
type Table struct {
	ColumnCount uint32
	Rows        []TableRow
}

// TableRow is one row of a table.
type TableRow struct {
	Cells []TableCell
}

// TableCell is one cell of a table row.
type TableCell struct {
	Elements []Element
}

// Image is a raster or XPS image embedded in a page.
type Image struct {
	Data      []byte
	Extension string
	HasExt    bool
	Width     float32
	HasWidth  bool
	Height    float32
	HasHeight bool
}

// EmbeddedFile is an arbitrary attachment embedded in a page.
type EmbeddedFile struct {
	Data     []byte
	Filename string
	HasName  bool
}

// IFrame is an embedded web frame.
type IFrame struct {
	SourceURL string
	EmbedType uint32
	HasType   bool
}

// Ink is a freeform ink drawing; its strokes are resolved as opaque object
// references since stroke geometry decoding is out of scope.
type Ink struct {
	StrokeCount    int
	BoundingBox    [4]uint32
	HasBoundingBox bool
}
