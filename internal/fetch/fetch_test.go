// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head><title>כותרת העמוד</title><script>var x = 1;</script></head>
<body>
<nav><p>תפריט ניווט</p></nav>
<article>
<p>נתניהו הודיע הערב על המהלך.</p>
<p>  </p>
<p>"נמשיך בתוכנית", אמר בישיבה.</p>
</article>
<footer><p>כל הזכויות שמורות</p></footer>
</body>
</html>`

func TestFetchFullText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "politifeed/test", r.Header.Get("User-Agent"))
		w.Write([]byte(page))
	}))
	defer ts.Close()

	c := NewClient(5*time.Second, "politifeed/test")
	got, err := c.FetchFullText(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Contains(t, got, "נתניהו הודיע הערב")
	assert.Contains(t, got, "נמשיך בתוכנית")
	assert.NotContains(t, got, "תפריט ניווט")
	assert.NotContains(t, got, "כל הזכויות")
	assert.NotContains(t, got, "var x")
}

func TestFetchFullTextFallsBackToAllParagraphs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><div><p>פסקה ראשונה.</p><p>פסקה שנייה.</p></div></body></html>`))
	}))
	defer ts.Close()

	c := NewClient(5*time.Second, "")
	got, err := c.FetchFullText(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "פסקה ראשונה. פסקה שנייה.", got)
}

func TestFetchFullTextHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(5*time.Second, "")
	_, err := c.FetchFullText(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchFullTextContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(page))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient(5*time.Second, "")
	_, err := c.FetchFullText(ctx, ts.URL)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "context deadline exceeded") ||
		strings.Contains(err.Error(), "Client.Timeout"))
}
