// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves article pages and extracts their body text.
// It backs the detection pipeline's full-text collaborator: feeds often
// carry only a headline and a one-line summary, too little for body
// scoring.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/gilshw/politifeed/internal/httputil"
)

const defaultTimeout = 20 * time.Second

// Client fetches article pages over HTTP.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient builds a Client. A zero timeout selects the default (20s);
// the pipeline additionally bounds each call through its context.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = "politifeed/0.1"
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FetchFullText downloads the page at url and returns its readable
// body text. The signature matches detect.FetchFunc.
func (c *Client) FetchFullText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", url, err)
	}

	return ExtractBody(doc), nil
}

// ExtractBody pulls paragraph text out of a parsed page. It prefers
// paragraphs inside an <article> container and falls back to all
// paragraphs; boilerplate containers are removed first.
func ExtractBody(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer, aside, form").Remove()

	sel := doc.Find("article p")
	if sel.Length() == 0 {
		sel = doc.Find("p")
	}

	var parts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}
