package guard

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Mode defines how text is normalized before matching.
type Mode int

// enum of normalization modes
const (
	CaseOnly  Mode = iota // lowercase only, keeps punctuation and spacing
	AlnumOnly             // lowercase, keeps [a-z0-9] only
	AlphaOnly             // lowercase, keeps [a-z] only
)

func (m Mode) String() string {
	switch m {
	case CaseOnly:
		return "case-only"
	case AlnumOnly:
		return "alnum-only"
	case AlphaOnly:
		return "alpha-only"
	default:
		return "unknown"
	}
}

// invisibleRanges are stripped in every mode. These runes render as nothing and are used to split
// words without a visible gap, e.g. a zero-width space inside a bank name or a soft hyphen inside a TLD.
var invisibleRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00AD, Hi: 0x00AD, Stride: 1}, // soft hyphen
		{Lo: 0x200B, Hi: 0x200F, Stride: 1}, // zero-width space through RTL mark
		{Lo: 0x202A, Hi: 0x202E, Stride: 1}, // bidi embedding controls
		{Lo: 0x2060, Hi: 0x206F, Stride: 1}, // word joiner, invisible operators, bidi isolates
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}, // variation selectors
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1}, // BOM
	},
}

// Normalize lowercases text and, depending on mode, drops everything outside of the allowed character set.
// Invisible and format characters are removed and compatibility forms (fullwidth letters, ligatures) folded
// to their plain equivalents in every mode. Empty input always gives empty output.
func Normalize(text string, mode Mode) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(norm.NFKC.String(cleanText(text)))

	var keep func(r rune) bool
	switch mode {
	case AlnumOnly:
		keep = func(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') }
	case AlphaOnly:
		keep = func(r rune) bool { return r >= 'a' && r <= 'z' }
	default:
		return text
	}

	var res strings.Builder
	res.Grow(len(text))
	for _, r := range text {
		if keep(r) {
			res.WriteRune(r)
		}
	}
	return res.String()
}

// cleanText removes control, format and invisible characters. Whitespace is kept as is,
// word boundaries of the case-only checks depend on it.
func cleanText(text string) string {
	var res strings.Builder
	res.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			res.WriteRune(r)
			continue
		}
		if unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r) || unicode.Is(invisibleRanges, r) {
			continue
		}
		res.WriteRune(r)
	}
	return res.String()
}
