// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hebrew

import (
	"strings"
	"unicode"
)

// BoundPrefixes are the one-letter function words (ו, ב, ל, מ, ה, ש, כ)
// that Hebrew orthography attaches directly to the following word with
// no separating space. The matcher searches each prefix+term variant in
// addition to the bare term.
func BoundPrefixes() []rune {
	return []rune{'ו', 'ב', 'ל', 'מ', 'ה', 'ש', 'כ'}
}

// boundaryPunct is the punctuation accepted as a word boundary, after
// quote glyphs have been normalized. The maqaf (־) is the Hebrew hyphen.
const boundaryPunct = ".,:;!?()[]{}\"'-–—־/\\|…" + " "

// IsBoundary reports whether r may legally flank a whole-word match.
func IsBoundary(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(boundaryPunct, r)
}
