// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilshw/politifeed/pkg/types"
)

const rssPayload = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>חדשות</title>
<item>
<title>נתניהו יוצא לוושינגטון</title>
<link>https://example.co.il/item1</link>
<guid>item-1</guid>
<description>ראש הממשלה ימריא הערב</description>
<pubDate>Mon, 24 Aug 2026 06:00:00 GMT</pubDate>
</item>
<item>
<title>מזג האוויר</title>
<link>https://example.co.il/item2</link>
<description>נאה עד מעונן חלקית</description>
</item>
</channel>
</rss>`

func testFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssPayload))
	}))
}

func TestFetchFeed(t *testing.T) {
	ts := testFeedServer(t)
	defer ts.Close()

	p := NewPoller(types.IngestConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "politifeed/test"},
	})
	got, err := p.FetchFeed(context.Background(), types.Feed{Name: "חדשות", URL: ts.URL})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "נתניהו יוצא לוושינגטון", got[0].Title)
	assert.Equal(t, "ראש הממשלה ימריא הערב", got[0].Description)
	assert.Equal(t, "https://example.co.il/item1", got[0].URL)
	assert.Equal(t, "חדשות", got[0].Source)
	assert.Equal(t, 2026, got[0].Published.Year())
}

func TestFetchFeedStableIDs(t *testing.T) {
	ts := testFeedServer(t)
	defer ts.Close()

	p := NewPoller(types.IngestConfig{})
	first, err := p.FetchFeed(context.Background(), types.Feed{Name: "a", URL: ts.URL})
	require.NoError(t, err)
	second, err := p.FetchFeed(context.Background(), types.Feed{Name: "a", URL: ts.URL})
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)
	assert.Len(t, first[0].ID, 16)
}

func TestFetchFeedHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	p := NewPoller(types.IngestConfig{})
	_, err := p.FetchFeed(context.Background(), types.Feed{URL: ts.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestFetchFeedParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not a feed"))
	}))
	defer ts.Close()

	p := NewPoller(types.IngestConfig{})
	_, err := p.FetchFeed(context.Background(), types.Feed{URL: ts.URL})
	require.Error(t, err)
}
