package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/go-pkgz/repeater/v2"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/llmstxt/pkg/domain"
)

// feedTemplate is the template assigned to pages imported from feeds
const feedTemplate = "article"

// ParsedFeed represents a fetched and parsed feed
type ParsedFeed struct {
	Title string
	Link  string
	Items []FeedItem
}

// FeedItem is a single feed entry
type FeedItem struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Published   time.Time
}

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
	retries   int
	delay     time.Duration
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		retries:   3,
		delay:     500 * time.Millisecond,
	}
}

// Parse fetches and parses a feed from the given URL, fetch is retried with backoff
func (p *Parser) Parse(ctx context.Context, feedURL string) (*ParsedFeed, error) {
	var feed *gofeed.Feed
	retrier := repeater.NewBackoff(p.retries, p.delay, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		body, err := p.fetch(ctx, feedURL)
		if err != nil {
			return err
		}
		defer body.Close()

		f, err := gofeed.NewParser().Parse(body)
		if err != nil {
			return fmt.Errorf("parse feed: %w", err)
		}
		feed = f
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", feedURL, err)
	}

	result := &ParsedFeed{
		Title: feed.Title,
		Link:  feed.Link,
		Items: make([]FeedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		fi := FeedItem{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Description: item.Description,
			GUID:        item.GUID,
		}
		if fi.GUID == "" {
			fi.GUID = fi.Link
		}

		// set published time
		if item.PublishedParsed != nil {
			fi.Published = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			fi.Published = item.UpdatedParsed.UTC()
		}

		result.Items = append(result.Items, fi)
	}

	return result, nil
}

// Pages converts feed items to content pages. Items without link or title are skipped.
func (f *ParsedFeed) Pages() []domain.Page {
	res := make([]domain.Page, 0, len(f.Items))
	for _, item := range f.Items {
		if item.Link == "" || item.Title == "" {
			continue
		}
		uri := linkURI(item.Link)
		if uri == "" {
			uri = slugify(item.Title)
		}
		if uri == "" {
			continue
		}
		res = append(res, domain.Page{
			ID:          uri,
			URI:         uri,
			Template:    feedTemplate,
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			Modified:    item.Published,
			Listed:      true,
		})
	}
	return res
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// linkURI returns path of the link without surrounding slashes
func linkURI(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.Trim(u.Path, "/")
}

// slugify makes lowercase dash-separated slug from letters and digits
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
