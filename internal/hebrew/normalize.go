// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hebrew canonicalizes Hebrew news text and holds the shared
// orthography tables used by the matching layers.
// See docs/ARCHITECTURE § Text Normalization.
package hebrew

import "strings"

// doubleQuoteGlyphs are the glyphs folded to the canonical `"`. The set
// includes the Hebrew gershayim, which feeds use interchangeably with
// typographic quotes inside nicknames and abbreviations.
const doubleQuoteGlyphs = "“”„‟«»״＂"

// singleQuoteGlyphs are the glyphs folded to the canonical `'`,
// including the Hebrew geresh.
const singleQuoteGlyphs = "‘’‚‛׳´`"

// Normalize canonicalizes quote glyphs, strips residual HTML tags and
// bare URLs left over from upstream extraction, and collapses runs of
// whitespace to a single space. Normalize is idempotent; empty input
// returns the empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = stripTags(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case strings.ContainsRune(doubleQuoteGlyphs, r):
			b.WriteRune('"')
		case strings.ContainsRune(singleQuoteGlyphs, r):
			b.WriteRune('\'')
		default:
			b.WriteRune(r)
		}
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, f := range fields {
		if isURL(f) {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// stripTags removes <...> markup spans. An unclosed "<" is kept as-is
// so plain less-than signs in body text survive.
func stripTags(text string) string {
	if !strings.ContainsRune(text, '<') {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for {
		open := strings.IndexByte(text, '<')
		if open < 0 {
			b.WriteString(text)
			break
		}
		end := strings.IndexByte(text[open:], '>')
		if end < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:open])
		// Tags act as separators; keep the break between words.
		b.WriteByte(' ')
		text = text[open+end+1:]
	}
	return b.String()
}

// isURL reports whether a whitespace-delimited token is a bare URL
// remnant.
func isURL(token string) bool {
	return strings.HasPrefix(token, "http://") ||
		strings.HasPrefix(token, "https://") ||
		strings.HasPrefix(token, "www.")
}
