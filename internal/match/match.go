// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match locates exact, word-bounded occurrences of a term in
// Hebrew text. Word boundaries cannot rely on spaces alone: one-letter
// function words attach directly to the following word, and quoted
// spans carry irregular punctuation spacing.
// See docs/ARCHITECTURE § Boundary Matching.
package match

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gilshw/politifeed/internal/hebrew"
	"github.com/gilshw/politifeed/pkg/types"
)

// Match is one accepted occurrence. Index and Length are byte offsets
// into the searched text; Length covers the bound prefix when the
// occurrence was found through a prefix variant.
type Match struct {
	Index  int
	Length int
}

// Matcher scans text for bounded occurrences of registered terms. The
// orthography tables are injected at construction so tests can run with
// reduced sets.
type Matcher struct {
	prefixes   []rune
	isBoundary func(rune) bool
}

// New returns a Matcher with the production Hebrew tables.
func New() *Matcher {
	return &Matcher{
		prefixes:   hebrew.BoundPrefixes(),
		isBoundary: hebrew.IsBoundary,
	}
}

// NewWithTables returns a Matcher with caller-supplied tables. A nil
// isBoundary falls back to the production boundary set.
func NewWithTables(prefixes []rune, isBoundary func(rune) bool) *Matcher {
	if isBoundary == nil {
		isBoundary = hebrew.IsBoundary
	}
	return &Matcher{prefixes: prefixes, isBoundary: isBoundary}
}

// FindBoundedMatches returns every occurrence of term, or of a bound
// prefix followed by term, whose flanking characters are in the
// boundary set. Occurrences that fail the strict flank check but sit
// inside a quoted span are re-checked leniently: one clean flank is
// enough there, recovering titles and quotes with irregular spacing.
// Matching is literal; callers normalize text first.
func (m *Matcher) FindBoundedMatches(text, term string) []Match {
	if text == "" || term == "" {
		return nil
	}

	variants := make([]string, 0, len(m.prefixes)+1)
	variants = append(variants, term)
	for _, p := range m.prefixes {
		variants = append(variants, string(p)+term)
	}

	var out []Match
	for _, v := range variants {
		for i := indexFrom(text, v, 0); i >= 0; i = indexFrom(text, v, i+1) {
			if m.bounded(text, i, len(v)) {
				out = append(out, Match{Index: i, Length: len(v)})
			}
		}
	}

	return dedupe(out)
}

// indexFrom is strings.Index starting at offset from.
func indexFrom(text, sub string, from int) int {
	if from >= len(text) {
		return -1
	}
	i := strings.Index(text[from:], sub)
	if i < 0 {
		return -1
	}
	return from + i
}

// bounded applies the strict flank check, then the quoted-span
// fallback.
func (m *Matcher) bounded(text string, idx, length int) bool {
	prevOK := idx == 0
	if !prevOK {
		r, _ := utf8.DecodeLastRuneInString(text[:idx])
		prevOK = m.isBoundary(r)
	}
	nextOK := idx+length >= len(text)
	if !nextOK {
		r, _ := utf8.DecodeRuneInString(text[idx+length:])
		nextOK = m.isBoundary(r)
	}
	if prevOK && nextOK {
		return true
	}
	if insideQuotes(text, idx) {
		return prevOK || nextOK
	}
	return false
}

// insideQuotes reports whether idx falls inside a quoted span, i.e. an
// odd number of canonical double quotes precede it.
func insideQuotes(text string, idx int) bool {
	return strings.Count(text[:idx], `"`)%2 == 1
}

// dedupe drops matches whose span is contained in another accepted
// match. A bare-term hit inside a prefixed hit of the same word would
// otherwise be counted twice.
func dedupe(matches []Match) []Match {
	if len(matches) < 2 {
		return matches
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Index != matches[j].Index {
			return matches[i].Index < matches[j].Index
		}
		return matches[i].Length > matches[j].Length
	})
	out := make([]Match, 1, len(matches))
	out[0] = matches[0]
	for _, c := range matches[1:] {
		last := out[len(out)-1]
		if c.Index >= last.Index && c.Index+c.Length <= last.Index+last.Length {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Window returns the substring spanning n runes before idx and n runes
// after idx+length. Offsets are clamped to the text.
func Window(text string, idx, length, n int) string {
	return text[windowStart(text, idx, n):windowEnd(text, idx+length, n)]
}

// WindowBefore returns the n runes preceding idx.
func WindowBefore(text string, idx, n int) string {
	return text[windowStart(text, idx, n):clamp(idx, len(text))]
}

// WindowAfter returns the n runes following idx.
func WindowAfter(text string, idx, n int) string {
	return text[clamp(idx, len(text)):windowEnd(text, idx, n)]
}

func windowStart(text string, idx, n int) int {
	start := clamp(idx, len(text))
	for i := 0; i < n && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	return start
}

func windowEnd(text string, idx, n int) int {
	end := clamp(idx, len(text))
	for i := 0; i < n && end < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return end
}

func clamp(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

// HasContext reports whether a candidate match for e at
// [idx, idx+length) is confirmed by a disambiguation cue inside the
// context window. Entities that need no disambiguation always pass.
// The nearby-other-entity fallback lives in the pipeline, which has the
// full registry in hand.
func (m *Matcher) HasContext(text string, e types.Entity, idx, length, window int) bool {
	if !e.RequiresDisambiguation {
		return true
	}
	win := Window(text, idx, length, window)
	for _, cue := range e.DisambiguationCues {
		if cue != "" && strings.Contains(win, cue) {
			return true
		}
	}
	return false
}
