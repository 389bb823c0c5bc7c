// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "politifeed/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EngineConfig holds the detection engine settings. The zero value is
// not usable; detect.New applies defaults and rejects negative values.
type EngineConfig struct {
	// ContextWindow is the rune width on each side of a match inside
	// which disambiguation cues and nearby entities are searched
	// (default 200).
	ContextWindow int `json:"context_window" yaml:"context_window"`

	// RoleWindow is the rune width on each side of a role-phrase match
	// inside which qualifiers, demonyms, and the corroborating partial
	// name are searched (default 120).
	RoleWindow int `json:"role_window" yaml:"role_window"`

	// QuoteWindow is the rune distance from a quotation mark within
	// which a body occurrence counts as near-quote (default 60).
	QuoteWindow int `json:"quote_window" yaml:"quote_window"`

	// ReactionWindow is the rune distance from a reaction verb within
	// which a body occurrence counts as reaction context (default 60).
	ReactionWindow int `json:"reaction_window" yaml:"reaction_window"`

	// MinBodyRunes is the body length below which the pipeline asks the
	// full-text collaborator for a backfill (default 300).
	MinBodyRunes int `json:"min_body_runes" yaml:"min_body_runes"`

	// MinScore is the admission threshold for ordinary entities
	// (default 2).
	MinScore int `json:"min_score" yaml:"min_score"`

	// LowMinScore is the admission threshold for entities marked
	// LowThreshold (default 1).
	LowMinScore int `json:"low_min_score" yaml:"low_min_score"`

	// MaxResults caps the number of entities returned per article
	// (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Feed names one RSS/Atom source to poll.
type Feed struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// IngestConfig holds settings for feed polling.
type IngestConfig struct {
	HTTPConfig `yaml:",inline"`

	// Feeds lists the sources polled by the poll command.
	Feeds []Feed `json:"feeds" yaml:"feeds"`
}

// StoreConfig holds settings for the article/mention store.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "data/politifeed.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config groups all stage configurations.
type Config struct {
	// RegistryPath is the politicians registry file (JSON or YAML).
	RegistryPath string `json:"registry" yaml:"registry"`

	Engine EngineConfig `json:"engine" yaml:"engine"`
	Ingest IngestConfig `json:"ingest" yaml:"ingest"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}
