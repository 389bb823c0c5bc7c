// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Zone identifies which part of an article a match was found in.
type Zone string

const (
	ZoneTitle       Zone = "title"
	ZoneDescription Zone = "description"
	ZoneBody        Zone = "body"
)

// Article holds one ingested news item. The engine never mutates it.
type Article struct {
	// ID is a stable identifier derived from the feed GUID or URL.
	ID string `json:"id" yaml:"id"`

	// Title is the headline text.
	Title string `json:"title" yaml:"title"`

	// Description is the feed summary or standfirst.
	Description string `json:"description" yaml:"description"`

	// Body is the article body text, possibly empty until backfilled.
	Body string `json:"body" yaml:"body"`

	// URL is the canonical article link, used for full-text backfill.
	URL string `json:"url" yaml:"url"`

	// Source names the feed the article came from.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Published is the publication time reported by the feed.
	Published time.Time `json:"published" yaml:"published"`
}
