// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest polls RSS/Atom feeds and converts their items into
// articles for detection. IDs are derived deterministically so repeated
// polls of the same feed dedupe cleanly.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/gilshw/politifeed/pkg/types"
)

const defaultTimeout = 30 * time.Second

// Poller fetches items from configured feed sources.
type Poller struct {
	client    *http.Client
	userAgent string
}

// NewPoller builds a Poller from the ingest config. A zero timeout
// selects the default (30s).
func NewPoller(cfg types.IngestConfig) *Poller {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = "politifeed/0.1"
	}
	return &Poller{
		client:    &http.Client{Timeout: timeout},
		userAgent: ua,
	}
}

// FetchFeed retrieves and parses one feed, returning its items as
// articles. It does not store anything; the caller decides what to do
// with the result.
func (p *Poller) FetchFeed(ctx context.Context, feed types.Feed) ([]types.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", feed.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching feed %s: HTTP %d", feed.URL, resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", feed.URL, err)
	}

	now := time.Now()
	articles := make([]types.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		articles = append(articles, convertItem(item, feed, now))
	}
	return articles, nil
}

// convertItem maps one feed item to an Article.
func convertItem(item *gofeed.Item, feed types.Feed, fetchTime time.Time) types.Article {
	published := fetchTime
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	return types.Article{
		ID:          articleID(item),
		Title:       item.Title,
		Description: item.Description,
		Body:        item.Content,
		URL:         item.Link,
		Source:      feed.Name,
		Published:   published,
	}
}

// articleID derives a stable identifier from the item GUID, falling
// back to the link, then to title plus published time.
func articleID(item *gofeed.Item) string {
	key := item.GUID
	if key == "" {
		key = item.Link
	}
	if key == "" {
		key = item.Title
		if item.PublishedParsed != nil {
			key += item.PublishedParsed.String()
		}
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
