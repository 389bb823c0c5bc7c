// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect orchestrates mention detection for one article:
// normalize zones, backfill a short body through the optional full-text
// collaborator, gather name/alias and role candidates, score, and admit
// the relevant subset. The pipeline is synchronous and stateless across
// calls; batch concurrency is the caller's choice.
// See docs/ARCHITECTURE § Detection Pipeline.
package detect

import (
	"context"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/gilshw/politifeed/internal/hebrew"
	"github.com/gilshw/politifeed/internal/match"
	"github.com/gilshw/politifeed/internal/registry"
	"github.com/gilshw/politifeed/internal/roles"
	"github.com/gilshw/politifeed/internal/score"
	"github.com/gilshw/politifeed/pkg/types"
)

// FetchFunc backfills body text from the article URL. Errors are
// treated as "no additional text available", never as a pipeline
// failure. The pipeline imposes no timeout of its own; cancel through
// ctx.
type FetchFunc func(ctx context.Context, url string) (string, error)

// PersistFunc records one admitted mention. Called once per admitted
// entity; errors are reported and swallowed. The engine knows nothing
// about the storage shape behind it.
type PersistFunc func(ctx context.Context, articleID string, m types.Mention) error

// Pipeline runs detection over articles with a fixed registry and rule
// tables.
type Pipeline struct {
	reg      *registry.Registry
	matcher  *match.Matcher
	resolver *roles.Resolver
	scorer   *score.Scorer
	cfg      types.EngineConfig

	// Fetch, when set, backfills short article bodies.
	Fetch FetchFunc

	// Persist, when set, records admitted mentions.
	Persist PersistFunc
}

// New builds a Pipeline with production tables. It panics on negative
// config values: those are caller bugs, not data conditions.
func New(reg *registry.Registry, cfg types.EngineConfig) *Pipeline {
	if cfg.ContextWindow < 0 || cfg.RoleWindow < 0 || cfg.QuoteWindow < 0 ||
		cfg.ReactionWindow < 0 || cfg.MinBodyRunes < 0 ||
		cfg.MinScore < 0 || cfg.LowMinScore < 0 || cfg.MaxResults < 0 {
		panic("detect: negative engine config value")
	}
	if cfg.ContextWindow == 0 {
		cfg.ContextWindow = 200
	}
	if cfg.RoleWindow == 0 {
		cfg.RoleWindow = 120
	}
	if cfg.QuoteWindow == 0 {
		cfg.QuoteWindow = 60
	}
	if cfg.ReactionWindow == 0 {
		cfg.ReactionWindow = 60
	}
	if cfg.MinBodyRunes == 0 {
		cfg.MinBodyRunes = 300
	}
	if cfg.MinScore == 0 {
		cfg.MinScore = 2
	}
	if cfg.LowMinScore == 0 {
		cfg.LowMinScore = 1
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = 10
	}

	m := match.New()
	return &Pipeline{
		reg:      reg,
		matcher:  m,
		resolver: roles.NewResolver(reg, roles.DefaultTable(), m, cfg.RoleWindow),
		scorer: score.New(m, score.Vocab{
			ReactionVerbs:  score.DefaultVocab().ReactionVerbs,
			QuoteWindow:    cfg.QuoteWindow,
			ReactionWindow: cfg.ReactionWindow,
		}),
		cfg: cfg,
	}
}

// Detect runs the full pipeline over one article and returns the
// admitted mentions ordered by descending score. An empty result is a
// valid outcome, not an error. Progress and degraded-input notes go to
// w; pass nil to discard them.
func (p *Pipeline) Detect(ctx context.Context, article types.Article, w io.Writer) ([]types.Mention, error) {
	if article.ID == "" {
		return nil, fmt.Errorf("article has no ID")
	}
	if w == nil {
		w = io.Discard
	}

	title := hebrew.Normalize(article.Title)
	description := hebrew.Normalize(article.Description)
	body := hebrew.Normalize(article.Body)

	if utf8.RuneCountInString(body) < p.cfg.MinBodyRunes && p.Fetch != nil && article.URL != "" {
		fetched, err := p.Fetch(ctx, article.URL)
		if err != nil {
			fmt.Fprintf(w, "%s: full-text fetch failed, continuing with short body: %v\n", article.ID, err)
		} else if n := hebrew.Normalize(fetched); utf8.RuneCountInString(n) > utf8.RuneCountInString(body) {
			body = n
		}
	}

	candidates := p.gather(title, description, body)
	if len(candidates) == 0 {
		return nil, nil
	}

	entities := p.candidateEntities(candidates)
	scored := p.scorer.Score(title, description, body, entities)

	admitted := p.admit(scored)

	if p.Persist != nil {
		for _, m := range admitted {
			if err := p.Persist(ctx, article.ID, m); err != nil {
				fmt.Fprintf(w, "%s: persisting mention of %s: %v\n", article.ID, m.EntityID, err)
			}
		}
	}

	return admitted, nil
}

// zoneText pairs a zone with its normalized text.
type zoneText struct {
	zone types.Zone
	text string
}

// gather collects name/alias and role candidates over all zones,
// deduplicated to at most one candidate per entity and zone. A direct
// name or alias match is authoritative over a role-derived candidate
// for the same entity in the same zone.
func (p *Pipeline) gather(title, description, body string) []types.Candidate {
	zones := []zoneText{
		{types.ZoneTitle, title},
		{types.ZoneDescription, description},
		{types.ZoneBody, body},
	}

	type key struct {
		entity string
		zone   types.Zone
	}
	direct := make(map[key]types.Candidate)
	roleBased := make(map[key]types.Candidate)

	for _, z := range zones {
		if z.text == "" {
			continue
		}
		for _, e := range p.reg.Entities() {
			if c, ok := p.directCandidate(z.text, z.zone, e); ok {
				k := key{e.ID, z.zone}
				if _, seen := direct[k]; !seen {
					direct[k] = c
				}
			}
		}
		for _, c := range p.resolver.Resolve(z.text, z.zone) {
			k := key{c.EntityID, z.zone}
			if _, seen := roleBased[k]; !seen {
				roleBased[k] = c
			}
		}
	}

	var out []types.Candidate
	for _, c := range direct {
		out = append(out, c)
	}
	for k, c := range roleBased {
		if _, shadowed := direct[k]; shadowed {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntityID != out[j].EntityID {
			return out[i].EntityID < out[j].EntityID
		}
		return out[i].Zone < out[j].Zone
	})
	return out
}

// directCandidate returns the first confirmed name or alias occurrence
// of e in the zone text.
func (p *Pipeline) directCandidate(text string, zone types.Zone, e types.Entity) (types.Candidate, bool) {
	terms := []struct {
		term string
		via  types.Via
	}{{e.CanonicalName, types.ViaName}}
	for _, a := range e.Aliases {
		terms = append(terms, struct {
			term string
			via  types.Via
		}{a, types.ViaAlias})
	}

	for _, t := range terms {
		for _, m := range p.matcher.FindBoundedMatches(text, t.term) {
			if !p.confirmed(text, e, m) {
				continue
			}
			return types.Candidate{
				EntityID: e.ID,
				Term:     t.term,
				Zone:     zone,
				Index:    m.Index,
				Via:      t.via,
			}, true
		}
	}
	return types.Candidate{}, false
}

// confirmed applies disambiguation: the cue list first, then the
// nearby-other-entity fallback (an ambiguous name alongside another
// registered figure is presumed to be the political figure).
func (p *Pipeline) confirmed(text string, e types.Entity, m match.Match) bool {
	if p.matcher.HasContext(text, e, m.Index, m.Length, p.cfg.ContextWindow) {
		return true
	}
	win := match.Window(text, m.Index, m.Length, p.cfg.ContextWindow)
	for _, other := range p.reg.Entities() {
		if other.ID == e.ID {
			continue
		}
		if len(p.matcher.FindBoundedMatches(win, other.CanonicalName)) > 0 {
			return true
		}
		for _, a := range other.Aliases {
			if len(p.matcher.FindBoundedMatches(win, a)) > 0 {
				return true
			}
		}
	}
	return false
}

// candidateEntities maps the deduplicated candidates back to their
// entity records, preserving registry order for deterministic scoring.
func (p *Pipeline) candidateEntities(candidates []types.Candidate) []types.Entity {
	with := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		with[c.EntityID] = true
	}
	var out []types.Entity
	for _, e := range p.reg.Entities() {
		if with[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// admit applies the per-entity threshold, caps the output, and falls
// back to the top-scored entity when everything misses the threshold.
func (p *Pipeline) admit(scored []types.Mention) []types.Mention {
	var out []types.Mention
	for _, m := range scored {
		threshold := p.cfg.MinScore
		if e, ok := p.reg.ByID(m.EntityID); ok && e.LowThreshold {
			threshold = p.cfg.LowMinScore
		}
		if m.Score >= threshold {
			out = append(out, m)
		}
	}

	// A clear-but-low-scoring mention must not vanish entirely.
	if len(out) == 0 && len(scored) > 0 {
		out = append(out, scored[0])
		if len(scored) > 1 && scored[1].Score == scored[0].Score {
			out = append(out, scored[1])
		}
	}

	if len(out) > p.cfg.MaxResults {
		out = out[:p.cfg.MaxResults]
	}
	return out
}
