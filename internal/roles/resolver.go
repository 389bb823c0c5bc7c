// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roles maps role-title phrases to their current holders.
// A title occurrence only produces a candidate after modified usages
// (past, future, hypothetical, foreign, third-party) are ruled out and
// a partial name of the holder corroborates the mention nearby.
// See docs/ARCHITECTURE § Role Resolution.
package roles

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gilshw/politifeed/internal/match"
	"github.com/gilshw/politifeed/internal/registry"
	"github.com/gilshw/politifeed/pkg/types"
)

const (
	defaultWindow = 120

	// qualifierWindow covers the token right after a role phrase.
	qualifierWindow = 30

	// conditionalWindow covers the framing right before a role phrase.
	conditionalWindow = 25

	// demonymWindow is deliberately tight: a demonym near the phrase
	// marks a foreign office, one further away usually belongs to
	// another clause.
	demonymWindow = 40
)

// Resolver turns role-title occurrences into entity candidates.
type Resolver struct {
	reg     *registry.Registry
	table   Table
	matcher *match.Matcher
	window  int
}

// NewResolver builds a Resolver. A window of 0 or less selects the
// default corroboration window (120 runes each side).
func NewResolver(reg *registry.Registry, table Table, m *match.Matcher, window int) *Resolver {
	if window <= 0 {
		window = defaultWindow
	}
	return &Resolver{reg: reg, table: table, matcher: m, window: window}
}

// Resolve scans text for every known role phrase and returns a
// candidate per occurrence that survives the modified-usage rules and
// is corroborated by a partial name of the current holder.
func (r *Resolver) Resolve(text string, zone types.Zone) []types.Candidate {
	var out []types.Candidate
	for phrase, role := range r.table.Aliases {
		holder, ok := r.reg.HolderOf(role)
		if !ok {
			continue
		}
		for _, m := range r.matcher.FindBoundedMatches(text, phrase) {
			if r.modified(text, m) {
				continue
			}
			if !r.corroborated(text, m, holder) {
				continue
			}
			out = append(out, types.Candidate{
				EntityID: holder.ID,
				Term:     phrase,
				Zone:     zone,
				Index:    m.Index,
				Via:      types.ViaRole,
			})
		}
	}
	return out
}

// modified reports whether the occurrence does not denote the current
// holder.
func (r *Resolver) modified(text string, m match.Match) bool {
	end := m.Index + m.Length

	after := strings.Fields(match.WindowAfter(text, end, qualifierWindow))
	if len(after) > 0 {
		next := after[0]
		for _, q := range r.table.Retrospective {
			if next == q {
				return true
			}
		}
		for _, q := range r.table.Prospective {
			if next == q {
				return true
			}
		}
		// "<role> של <someone>" names a different holder outright.
		if next == "של" {
			return true
		}
	}

	before := strings.TrimRight(match.WindowBefore(text, m.Index, conditionalWindow), " ")
	for _, c := range r.table.Conditional {
		if strings.HasSuffix(before, c) {
			return true
		}
	}

	win := match.Window(text, m.Index, m.Length, r.window)
	for _, e := range r.table.Era {
		if strings.Contains(win, e) {
			return true
		}
	}
	if numberedGovernment(win) {
		return true
	}

	near := match.Window(text, m.Index, m.Length, demonymWindow)
	for _, d := range r.table.Demonyms {
		if len(r.matcher.FindBoundedMatches(near, d)) > 0 {
			return true
		}
	}

	return false
}

// numberedGovernment reports a "הממשלה ה-<N>" reference in the window.
func numberedGovernment(win string) bool {
	const marker = "הממשלה ה-"
	for i := 0; ; {
		j := strings.Index(win[i:], marker)
		if j < 0 {
			return false
		}
		rest := win[i+j+len(marker):]
		r, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsDigit(r) {
			return true
		}
		i += j + len(marker)
	}
}

// corroborated reports whether a partial-name indicator of the holder
// (last name, or an alias shorter than the full name) appears as a
// standalone bounded word inside the corroboration window. Bare role
// mentions with no name fragment nearby over-trigger badly without
// this.
func (r *Resolver) corroborated(text string, m match.Match, holder types.Entity) bool {
	win := match.Window(text, m.Index, m.Length, r.window)
	for _, partial := range partialNames(holder) {
		if len(r.matcher.FindBoundedMatches(win, partial)) > 0 {
			return true
		}
	}
	return false
}

// partialNames returns the holder's last name and every alias shorter
// than the canonical name.
func partialNames(e types.Entity) []string {
	var out []string
	fields := strings.Fields(e.CanonicalName)
	if len(fields) > 0 {
		out = append(out, fields[len(fields)-1])
	}
	full := utf8.RuneCountInString(e.CanonicalName)
	for _, a := range e.Aliases {
		if utf8.RuneCountInString(a) < full {
			out = append(out, a)
		}
	}
	return out
}
