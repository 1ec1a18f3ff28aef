package importer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/llmstxt/pkg/domain"
	"github.com/umputun/llmstxt/pkg/importer/mocks"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Feed</title>
	<link>http://example.com</link>
	<description>Test Description</description>
	<item>
		<title>First Post</title>
		<link>http://example.com/blog/first-post/</link>
		<description>First &lt;b&gt;post&lt;/b&gt;</description>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<guid>first</guid>
	</item>
	<item>
		<title>No Link</title>
		<description>skipped</description>
	</item>
	<item>
		<title>Root Item</title>
		<link>http://example.com/</link>
	</item>
</channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Atom Feed</title>
	<link href="http://example.org/"/>
	<updated>2024-12-13T18:30:02Z</updated>
	<entry>
		<title>Atom Entry</title>
		<link href="http://example.org/notes/atom-entry"/>
		<id>urn:uuid:1</id>
		<updated>2024-12-13T18:30:02Z</updated>
		<summary>Some text.</summary>
	</entry>
</feed>`

func newPageWriter() *mocks.PageWriterMock {
	return &mocks.PageWriterMock{
		UpsertFunc: func(_ context.Context, page domain.Page) (domain.Page, error) { return page, nil },
	}
}

func fastImporter(pages PageWriter, site SiteWriter) *Importer {
	im := New(pages, site, Opts{Concurrency: 2, Timeout: time.Second})
	im.parser.retries = 1
	im.parser.delay = time.Millisecond
	return im
}

func TestParser_Parse(t *testing.T) {
	var agent atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent.Store(r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed))
	}))
	defer ts.Close()

	parser := NewParser(5*time.Second, "test-agent")
	feed, err := parser.Parse(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "test-agent", agent.Load())

	assert.Equal(t, "Test Feed", feed.Title)
	require.Len(t, feed.Items, 3)
	assert.Equal(t, "first", feed.Items[0].GUID)
	assert.Equal(t, time.Date(2006, 1, 2, 22, 4, 5, 0, time.UTC), feed.Items[0].Published)

	pages := feed.Pages()
	require.Len(t, pages, 2)
	assert.Equal(t, domain.Page{
		ID: "blog/first-post", URI: "blog/first-post", Template: "article", Title: "First Post",
		Description: "First <b>post</b>", URL: "http://example.com/blog/first-post/",
		Modified: time.Date(2006, 1, 2, 22, 4, 5, 0, time.UTC), Listed: true,
	}, pages[0])
	assert.Equal(t, "root-item", pages[1].ID, "slug from title for root link")
}

func TestParser_ParseErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/bad" {
			_, _ = w.Write([]byte("not a feed"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	parser := NewParser(time.Second, "test")
	parser.delay = time.Millisecond

	_, err := parser.Parse(context.Background(), ts.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
	assert.Greater(t, calls.Load(), int32(1), "retried")

	_, err = parser.Parse(context.Background(), ts.URL+"/bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed")
}

func TestImporter_ImportFeeds(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rss":
			_, _ = w.Write([]byte(rssFeed))
		case "/atom":
			_, _ = w.Write([]byte(atomFeed))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	pages := newPageWriter()
	im := fastImporter(pages, &mocks.SiteWriterMock{})

	stats, err := im.ImportFeeds(context.Background(), []string{ts.URL + "/atom", ts.URL + "/broken", ts.URL + "/rss"})
	require.NoError(t, err)
	assert.Equal(t, Stats{Pages: 3, FailedFeeds: 1}, stats)

	calls := pages.UpsertCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "notes/atom-entry", calls[0].Page.ID, "pages stored in feed order")
	assert.Equal(t, "blog/first-post", calls[1].Page.ID)
	assert.Equal(t, "root-item", calls[2].Page.ID)
}

func TestImporter_ImportFeedsStoreError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(rssFeed))
	}))
	defer ts.Close()

	pages := &mocks.PageWriterMock{
		UpsertFunc: func(context.Context, domain.Page) (domain.Page, error) { return domain.Page{}, errors.New("locked") },
	}
	_, err := fastImporter(pages, &mocks.SiteWriterMock{}).ImportFeeds(context.Background(), []string{ts.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `store page "blog/first-post"`)
}

func TestImporter_ImportYAML(t *testing.T) {
	seed := `
site:
  title: Kozmoz
  url: https://x.io/
  description: Design studio
pages:
  - id: about
    title: About
    description: Who we are
    modified: 2025-01-02T03:04:05Z
  - id: team/jane
    template: member
    title: Jane
    listed: false
  - id: legacy
    uri: /old/legacy/
    title: Legacy
    url: https://old.x.io/legacy
`
	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	pages := newPageWriter()
	site := &mocks.SiteWriterMock{UpdateFunc: func(context.Context, domain.Site) error { return nil }}

	stats, err := fastImporter(pages, site).ImportYAML(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, Stats{Pages: 3, SiteUpdated: true}, stats)

	require.Len(t, site.UpdateCalls(), 1)
	assert.Equal(t, domain.Site{Title: "Kozmoz", URL: "https://x.io/", Description: "Design studio"}, site.UpdateCalls()[0].Site)

	calls := pages.UpsertCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, domain.Page{
		ID: "about", URI: "about", Template: "default", Title: "About", Description: "Who we are",
		URL: "https://x.io/about", Modified: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), Listed: true, Position: 1,
	}, calls[0].Page)
	assert.False(t, calls[1].Page.Listed)
	assert.Equal(t, "member", calls[1].Page.Template)
	assert.Equal(t, "https://x.io/team/jane", calls[1].Page.URL)
	assert.Equal(t, "old/legacy", calls[2].Page.URI)
	assert.Equal(t, "https://old.x.io/legacy", calls[2].Page.URL)
}

func TestImporter_ImportYAMLErrors(t *testing.T) {
	tests := []struct {
		name   string
		seed   string
		errMsg string
	}{
		{name: "bad yaml", seed: "pages: [", errMsg: "parse seed file"},
		{name: "missing id", seed: "pages:\n  - title: x\n    url: u\n", errMsg: "page #1: id is required"},
		{name: "missing title", seed: "pages:\n  - id: a\n    url: u\n", errMsg: `page "a": title is required`},
		{name: "duplicate id", seed: "pages:\n  - {id: a, title: A, url: u}\n  - {id: a, title: B, url: u}\n", errMsg: "duplicate id"},
		{name: "no url", seed: "pages:\n  - id: a\n    title: A\n", errMsg: "url is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "content.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.seed), 0o600))
			pages := newPageWriter()
			_, err := fastImporter(pages, &mocks.SiteWriterMock{}).ImportYAML(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, pages.UpsertCalls())
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := fastImporter(newPageWriter(), &mocks.SiteWriterMock{}).ImportYAML(context.Background(), "/no/such/file.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read seed file")
	})
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello, World!":    "hello-world",
		"  Multiple   gap": "multiple-gap",
		"Ünïcode Tëxt 42":  "ünïcode-tëxt-42",
		"!!!":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, slugify(in), in)
	}
}
