// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ZoneCounts holds per-zone bounded-match counts for one entity.
type ZoneCounts struct {
	Title       int `json:"title"`
	Description int `json:"description"`
	Body        int `json:"body"`
	EarlyBody   int `json:"early_body"`
}

// Mention is the scored outcome for one entity in one article.
type Mention struct {
	// EntityID identifies the entity this mention belongs to.
	EntityID string `json:"entity_id"`

	// Score is the weighted relevance score.
	Score int `json:"score"`

	// Relevant reports whether the decision tree classified the entity
	// as genuinely discussed rather than a background mention.
	Relevant bool `json:"relevant"`

	// Reasons lists which decision-tree branches fired, for reporting.
	Reasons []string `json:"reasons,omitempty"`

	// Counts holds the per-zone occurrence counts behind the score.
	Counts ZoneCounts `json:"counts"`

	// NearQuote reports at least one body occurrence adjacent to a
	// quotation mark.
	NearQuote bool `json:"near_quote"`

	// NearReaction reports at least one body occurrence adjacent to a
	// reaction verb.
	NearReaction bool `json:"near_reaction"`
}
