// Package render produces llms.txt and sitemap.xml bodies from selected pages.
package render

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/llmstxt/pkg/domain"
	"github.com/umputun/llmstxt/pkg/settings"
)

const (
	generatedLayout = "2006-01-02 15:04:05"
	lastModLayout   = "2006-01-02T15:04:05+00:00"
)

// Generator renders artifacts, timestamps come from the injected clock
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a generator, nil clock means time.Now
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// LLMsText renders the llms.txt body for already selected pages
func (g *Generator) LLMsText(site domain.Site, pages []domain.Page, s settings.Settings) string {
	var b strings.Builder
	b.WriteString("# " + site.Title + "\n\n")

	if desc := CleanText(site.SummaryDescription()); desc != "" {
		b.WriteString("> " + desc + "\n\n")
	}

	b.WriteString("Generated on: " + g.now().UTC().Format(generatedLayout) + "\n\n")
	b.WriteString("## Docs\n\n")

	for _, p := range pages {
		fmt.Fprintf(&b, "- [%s](%s)", p.Title, normalizeURL(p.URL, s.AddTrailingSlash))
		if desc := CleanText(p.Description); desc != "" {
			b.WriteString(" - " + desc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Sitemap renders sitemap.xml for already selected pages
func (g *Generator) Sitemap(site domain.Site, pages []domain.Page, s settings.Settings) (string, error) {
	urls := make([]SitemapURL, 0, len(pages)+1)

	if s.SitemapHomepage {
		urls = append(urls, SitemapURL{
			Loc:        normalizeURL(site.URL, s.AddTrailingSlash),
			LastMod:    g.now().UTC().Format(lastModLayout),
			ChangeFreq: "daily",
			Priority:   "1.0",
		})
	}

	for _, p := range pages {
		depth := Depth(p.URI)
		urls = append(urls, SitemapURL{
			Loc:        normalizeURL(p.URL, s.AddTrailingSlash),
			LastMod:    p.Modified.UTC().Format(lastModLayout),
			ChangeFreq: ChangeFreq(depth),
			Priority:   Priority(depth),
		})
	}

	output, err := xml.MarshalIndent(URLSet{Xmlns: SitemapNS, URLs: urls}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sitemap: %w", err)
	}
	return xml.Header + string(output), nil
}

// Depth counts non-empty segments of the uri
func Depth(uri string) int {
	depth := 0
	for _, seg := range strings.Split(strings.Trim(uri, "/"), "/") {
		if seg != "" {
			depth++
		}
	}
	return depth
}

// ChangeFreq is weekly for top-level pages and monthly below
func ChangeFreq(depth int) string {
	if depth <= 1 {
		return "weekly"
	}
	return "monthly"
}

// Priority is 1.0 minus 0.2 per level, never below 0.1
func Priority(depth int) string {
	tenths := max(10-2*depth, 1)
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}
