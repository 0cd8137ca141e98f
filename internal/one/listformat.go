package one

import "onenotestore/internal/onestore"

// ListFormat carries a paragraph's bullet/number list formatting: font,
// restart value, weight/style, and color. Attached to Paragraph at the
// assembler layer; the format itself has no object identity of its own.
type ListFormat struct {
	ListFont    string
	HasListFont bool

	ListRestart    int32
	HasListRestart bool

	// Format is the raw per-level bullet/number format string (one
	// rune per outline level); the numbering glyph table it indexes is
	// locale-specific and not resolved here.
	Format string

	Bold   bool
	Italic bool

	Font     string
	HasFont  bool
	FontSize uint16
	HasSize  bool

	FontColor    ColorRef
	HasFontColor bool

	// LanguageCode is the raw LCID; no pack example carries a locale-name
	// table to resolve it further.
	LanguageCode uint16
	HasLanguage  bool
}

func parseListFormat(ps onestore.PropertySet) (ListFormat, error) {
	var lf ListFormat

	if s, ok := optionalUTF16String(ps, PropNumberListFont); ok {
		lf.ListFont, lf.HasListFont = s, true
	}
	if v, ok := optionalU32(ps, PropListRestart); ok {
		lf.ListRestart, lf.HasListRestart = int32(v), true
	}
	if b, ok := optionalBytes(ps, PropListFormat); ok {
		lf.Format = string(b)
	}
	lf.Bold = optionalBool(ps, PropBold)
	lf.Italic = optionalBool(ps, PropItalic)

	if s, ok := optionalUTF16String(ps, PropFont); ok {
		lf.Font, lf.HasFont = s, true
	}
	if v, ok := optionalU16Type(ps, PropFontSize); ok {
		lf.FontSize, lf.HasSize = v, true
	}
	color, ok, err := parseColorRef(ps, PropFontColor)
	if err != nil {
		return ListFormat{}, err
	}
	if ok {
		lf.FontColor, lf.HasFontColor = color, true
	}
	if v, ok := optionalU16Type(ps, PropLanguageCode); ok {
		lf.LanguageCode, lf.HasLanguage = v, true
	}

	return lf, nil
}
