// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entity is one registered public figure. The registry validates and
// normalizes these records at load time; after that they are immutable
// for the lifetime of a detection run.
type Entity struct {
	// ID is the stable identifier. Defaults to the canonical name when
	// the registry file does not set one.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// CanonicalName is the primary display and match form.
	CanonicalName string `json:"name" yaml:"name"`

	// Aliases are alternate surface forms (nicknames, short forms).
	// Aliases shorter than the registry minimum are dropped at load time.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	// Role is the standardized role label this entity currently holds
	// (e.g. "prime-minister"), or empty. At most one entity holds a
	// given role; the first registrant wins on conflict.
	Role string `json:"role,omitempty" yaml:"role,omitempty"`

	// RequiresDisambiguation marks names that are common words or
	// surnames and need a nearby cue before a match is accepted.
	RequiresDisambiguation bool `json:"requires_disambiguation,omitempty" yaml:"requires_disambiguation,omitempty"`

	// DisambiguationCues are terms that confirm an ambiguous match when
	// found inside the context window around it.
	DisambiguationCues []string `json:"disambiguation_cues,omitempty" yaml:"disambiguation_cues,omitempty"`

	// LowThreshold admits this entity at the reduced relevance
	// threshold. Used for prominent foreign figures that appear with
	// low local mention density.
	LowThreshold bool `json:"low_threshold,omitempty" yaml:"low_threshold,omitempty"`
}

// Candidate is one raw match attempt, produced per occurrence before
// scoring. Candidates live only for the duration of a single detection
// call.
type Candidate struct {
	EntityID string
	Term     string
	Zone     Zone
	Index    int
	Via      Via
}

// Via records how a candidate was produced.
type Via string

const (
	ViaName  Via = "name"
	ViaAlias Via = "alias"
	ViaRole  Via = "role"
)
