package transform

import (
	"unicode"
	"unicode/utf8"
)

// Pictographic is the documented emoji rule set for the printable variant.
//
// It covers the conventional pictographic blocks plus the joiners that only
// occur inside emoji sequences: Miscellaneous Symbols (U+2600–U+26FF),
// Dingbats (U+2700–U+27BF), Regional Indicators (U+1F1E6–U+1F1FF),
// Miscellaneous Symbols and Pictographs (U+1F300–U+1F5FF), Emoticons
// (U+1F600–U+1F64F), Transport and Map Symbols (U+1F680–U+1F6FF),
// Supplemental Symbols and Pictographs (U+1F900–U+1F9FF), Symbols and
// Pictographs Extended-A (U+1FA70–U+1FAFF), Variation Selector-16
// (U+FE0F) and Zero Width Joiner (U+200D).
var Pictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1},
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1},
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1},
		{Lo: 0xFE0F, Hi: 0xFE0F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1},
	},
}

// EmojiRule removes pictographic runes from the body. Whitespace around a
// removed rune is left untouched, so "Hello 🚀" becomes "Hello " with the
// trailing space preserved.
type EmojiRule struct{}

// Name implements Rule.
func (EmojiRule) Name() string { return "strip-emoji" }

// Apply implements Rule.
func (EmojiRule) Apply(body []byte) []byte {
	if !ContainsEmoji(body) {
		return body
	}

	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRune(body[i:])
		if !unicode.Is(Pictographic, r) {
			out = append(out, body[i:i+size]...)
		}
		i += size
	}
	return out
}

// ContainsEmoji reports whether the body contains any rune from the
// Pictographic rule set.
func ContainsEmoji(body []byte) bool {
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRune(body[i:])
		if unicode.Is(Pictographic, r) {
			return true
		}
		i += size
	}
	return false
}

// StripEmoji is a convenience wrapper around EmojiRule for callers outside
// the assembly pipeline (lint --fix).
func StripEmoji(body []byte) []byte {
	return EmojiRule{}.Apply(body)
}
