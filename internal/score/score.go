// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score turns raw mention counts into a relevance decision.
// The decision tree favors headline and standfirst presence, then
// body-zone signals (density, early placement, quotes, reaction verbs),
// and classifies everything else as background noise.
// See docs/ARCHITECTURE § Relevance Scoring.
package score

import (
	"sort"
	"strings"

	"github.com/gilshw/politifeed/internal/match"
	"github.com/gilshw/politifeed/pkg/types"
)

// Weights of the decision-tree branches.
const (
	titleWeight       = 10
	descriptionWeight = 5
	earlyBodyBonus    = 3
	quoteWeight       = 2
	reactionWeight    = 3
	backgroundScore   = 1
)

// earlyBodyCap limits the early-body region to its first 500 runes
// even in long articles; in short ones the region is 20% of the body.
const earlyBodyCap = 500

// Vocab is the scoring vocabulary, injected so tests can use reduced
// sets.
type Vocab struct {
	// ReactionVerbs are the verbs whose proximity marks an occurrence
	// as part of a statement or reaction.
	ReactionVerbs []string

	// QuoteWindow is the rune distance from a `"` inside which an
	// occurrence counts as near-quote.
	QuoteWindow int

	// ReactionWindow is the rune distance from a reaction verb inside
	// which an occurrence counts as reaction context.
	ReactionWindow int
}

// DefaultVocab returns the production reaction vocabulary.
func DefaultVocab() Vocab {
	return Vocab{
		ReactionVerbs: []string{
			"אמר", "אמרה", "הגיב", "הגיבה", "טען", "טענה", "מסר", "מסרה",
			"ציין", "ציינה", "הוסיף", "הוסיפה", "תקף", "תקפה", "הבהיר",
			"הבהירה", "הזהיר", "הזהירה", "דרש", "דרשה", "קרא", "קראה",
			"אישר", "אישרה", "הודיע", "הודיעה", "האשים", "האשימה", "ביקר",
		},
		QuoteWindow:    60,
		ReactionWindow: 60,
	}
}

// Scorer computes zone-aware relevance scores.
type Scorer struct {
	matcher *match.Matcher
	vocab   Vocab
}

// New builds a Scorer. Non-positive windows in vocab fall back to the
// defaults.
func New(m *match.Matcher, vocab Vocab) *Scorer {
	d := DefaultVocab()
	if vocab.QuoteWindow <= 0 {
		vocab.QuoteWindow = d.QuoteWindow
	}
	if vocab.ReactionWindow <= 0 {
		vocab.ReactionWindow = d.ReactionWindow
	}
	if vocab.ReactionVerbs == nil {
		vocab.ReactionVerbs = d.ReactionVerbs
	}
	return &Scorer{matcher: m, vocab: vocab}
}

// Score evaluates each candidate entity against the normalized zone
// texts and returns mentions sorted by descending score. Entities with
// no occurrence in any zone are omitted.
func (s *Scorer) Score(title, description, body string, entities []types.Entity) []types.Mention {
	var out []types.Mention
	for _, e := range entities {
		m, ok := s.scoreEntity(title, description, body, e)
		if ok {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].EntityID < out[j].EntityID
	})
	return out
}

func (s *Scorer) scoreEntity(title, description, body string, e types.Entity) (types.Mention, bool) {
	// The last name counts as a surface form: Hebrew news prose refers
	// to figures by last name far more often than by full name.
	terms := append([]string{e.CanonicalName}, e.Aliases...)
	if f := strings.Fields(e.CanonicalName); len(f) > 1 {
		terms = append(terms, f[len(f)-1])
	}

	bodyMatches := s.findAll(body, terms)
	counts := types.ZoneCounts{
		Title:       len(s.findAll(title, terms)),
		Description: len(s.findAll(description, terms)),
		Body:        len(bodyMatches),
		EarlyBody:   countEarly(body, bodyMatches),
	}

	nearQuote := s.countNearQuote(body, bodyMatches)
	reaction := s.countNearReaction(body, bodyMatches)

	m := types.Mention{
		EntityID:     e.ID,
		Counts:       counts,
		NearQuote:    nearQuote > 0,
		NearReaction: reaction > 0,
	}

	switch {
	case counts.Title > 0 || counts.Description > 0:
		m.Relevant = true
		m.Score = titleWeight*counts.Title + descriptionWeight*counts.Description
		if counts.Title > 0 {
			m.Reasons = append(m.Reasons, "title")
		}
		if counts.Description > 0 {
			m.Reasons = append(m.Reasons, "description")
		}

	case counts.Body > 0:
		if counts.Body > 1 {
			m.Relevant = true
			m.Score += counts.Body
			m.Reasons = append(m.Reasons, "repeated-body")
		}
		if counts.EarlyBody > 0 {
			m.Relevant = true
			m.Score += earlyBodyBonus
			m.Reasons = append(m.Reasons, "early-body")
		}
		if nearQuote > 0 {
			m.Relevant = true
			m.Score += quoteWeight * nearQuote
			m.Reasons = append(m.Reasons, "near-quote")
		}
		if reaction > 0 {
			m.Relevant = true
			m.Score += reactionWeight * reaction
			m.Reasons = append(m.Reasons, "reaction-context")
		}
		if !m.Relevant {
			// Single unadorned body occurrence: background noise, kept
			// at score 1 for tie-breaking.
			m.Score = backgroundScore
			m.Reasons = append(m.Reasons, "background")
		}

	default:
		return types.Mention{}, false
	}

	return m, true
}

// findAll collects bounded matches of every term, merging overlaps so
// an alias contained in the canonical name is not counted twice.
func (s *Scorer) findAll(text string, terms []string) []match.Match {
	var all []match.Match
	for _, term := range terms {
		if term == "" {
			continue
		}
		all = append(all, s.matcher.FindBoundedMatches(text, term)...)
	}
	return mergeOverlaps(all)
}

func mergeOverlaps(matches []match.Match) []match.Match {
	if len(matches) < 2 {
		return matches
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Index != matches[j].Index {
			return matches[i].Index < matches[j].Index
		}
		return matches[i].Length > matches[j].Length
	})
	out := make([]match.Match, 1, len(matches))
	out[0] = matches[0]
	for _, c := range matches[1:] {
		last := out[len(out)-1]
		if c.Index < last.Index+last.Length {
			continue
		}
		out = append(out, c)
	}
	return out
}

// countEarly counts matches inside the early-body region:
// min(500, 20% of body length) runes.
func countEarly(body string, matches []match.Match) int {
	if len(matches) == 0 {
		return 0
	}
	runes := len([]rune(body))
	limit := runes / 5
	if limit > earlyBodyCap {
		limit = earlyBodyCap
	}
	byteLimit := runeOffset(body, limit)
	n := 0
	for _, m := range matches {
		if m.Index < byteLimit {
			n++
		}
	}
	return n
}

// runeOffset returns the byte offset of the n-th rune of s, or len(s).
func runeOffset(s string, n int) int {
	i := 0
	for off := range s {
		if i == n {
			return off
		}
		i++
	}
	return len(s)
}

// countNearQuote counts matches with a quotation mark inside the
// window around them. The quote is a raw character scan; it flanks
// words directly and has no bounded form.
func (s *Scorer) countNearQuote(text string, matches []match.Match) int {
	n := 0
	for _, m := range matches {
		win := match.Window(text, m.Index, m.Length, s.vocab.QuoteWindow)
		if strings.Contains(win, `"`) {
			n++
		}
	}
	return n
}

// countNearReaction counts matches with a reaction verb inside the
// window around them. Verbs must stand as bounded words: a substring
// scan would fire on longer words that merely contain one ("תאמר",
// "במאמר").
func (s *Scorer) countNearReaction(text string, matches []match.Match) int {
	n := 0
	for _, m := range matches {
		win := match.Window(text, m.Index, m.Length, s.vocab.ReactionWindow)
		for _, verb := range s.vocab.ReactionVerbs {
			if len(s.matcher.FindBoundedMatches(win, verb)) > 0 {
				n++
				break
			}
		}
	}
	return n
}
